package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uakit/pkg/factsapi"
	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("uafacts failed", logger.Err(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		format    string
		logLevel  string
		logFormat string
		platform  string
	)

	cmd := &cobra.Command{
		Use:           "uafacts [user-agent...]",
		Short:         "Print browser, engine and platform facts of user-agent strings",
		Long:          "Print browser, engine and platform facts of user-agent strings.\nWithout arguments one agent per line is read from stdin.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			lf, err := logger.ParseFormat(logFormat)
			if err != nil {
				return err
			}
			slog.SetDefault(logger.New(
				logger.WithLevel(level),
				logger.WithFormat(lf),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(useragent.LoggerExtractor(), factsapi.RequestIDExtractor()),
			))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := newEncoder(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			assume, err := useragent.LoadAssumptions()
			if err != nil {
				return err
			}

			agents := args
			if len(agents) == 0 {
				if agents, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			for _, ua := range agents {
				d := useragent.New(
					useragent.WithNavigator(useragent.StaticNavigator{
						Agent:       ua,
						PlatformStr: platform,
						AppVer:      strings.TrimPrefix(ua, "Mozilla/"),
					}),
					useragent.WithAssumptions(assume),
					useragent.WithLogger(slog.Default()),
				)
				facts := d.Snapshot()
				slog.DebugContext(useragent.WithContext(cmd.Context(), facts), "detected user agent",
					slog.Int("tuples", len(facts.Tuples)),
					slog.String("version", facts.Version),
				)
				if err := enc.Encode(facts); err != nil {
					return fmt.Errorf("encode facts: %w", err)
				}
			}
			return enc.Close()
		},
	}

	cmd.AddCommand(newServeCmd())

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml, json")
	cmd.Flags().StringVar(&platform, "platform", "", "Navigator platform reported by the host, e.g. Win32")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", string(logger.FormatPretty), "Log format: pretty, text, json")

	return cmd
}

type factsEncoder interface {
	Encode(v any) error
	Close() error
}

type jsonEncoder struct{ *json.Encoder }

func (jsonEncoder) Close() error { return nil }

// newEncoder returns the encoder for format. YAML output holds one
// document per agent.
func newEncoder(format string, w io.Writer) (factsEncoder, error) {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc, nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return jsonEncoder{enc}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: must be yaml or json", format)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read agents: %w", err)
	}
	return lines, nil
}
