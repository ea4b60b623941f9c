// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run listens on the configured address, reports the bound address through
// Addr once listening (useful with ":0" in tests) and blocks until the
// context is cancelled, an interrupt or TERM signal arrives, or the listener
// fails. Shutdown drains in-flight requests within the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Err(err))
//	}
//
// Errors are wrapped with ErrStart or ErrShutdown. HealthCheckHandler serves
// liveness and readiness probes.
package httpserver
