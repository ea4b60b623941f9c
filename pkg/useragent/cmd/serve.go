package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uakit/pkg/factsapi"
	"github.com/dmitrymomot/uakit/pkg/httpserver"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		cacheSize int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve user-agent facts over HTTP",
		Long: "Serve user-agent facts over HTTP.\n" +
			"Server timeouts are read from HTTP_* and assumptions from UA_ASSUME_* environment variables.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := httpserver.LoadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			assume, err := useragent.LoadAssumptions()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			log := slog.Default()
			router := factsapi.NewRouter(
				factsapi.WithAssumptions(assume),
				factsapi.WithRegistry(reg),
				factsapi.WithLogger(log),
				factsapi.WithMiddlewareOptions(useragent.WithCacheSize(cacheSize)),
			)

			return httpserver.NewFromConfig(cfg, httpserver.WithLogger(log)).Run(cmd.Context(), router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	cmd.Flags().IntVar(&cacheSize, "cache-size", useragent.DefaultCacheSize, "Number of agents whose facts are cached, 0 disables")

	return cmd
}
