// Package logger builds *slog.Logger values for the uakit tools.
//
// New selects a handler by Format (colourised tint output for terminals,
// plain text or JSON) and wraps it with a decorator that runs the
// registered ContextExtractor callbacks on every record. Extractors pull
// request-scoped values out of the context, for example the detected agent
// facts stored by the useragent middleware:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatPretty),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextExtractors(useragent.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "request handled")
//
// ParseFormat and ParseLevel validate user-provided flag values.
package logger
