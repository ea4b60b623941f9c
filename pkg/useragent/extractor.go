package useragent

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor adding a "user_agent" group
// with the browser, platform and device of the request to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		f, ok := FromContext(ctx)
		if !ok || f.UserAgent == "" {
			return slog.Attr{}, false
		}
		return slog.Group("user_agent",
			slog.String("browser", string(f.Browser)),
			slog.String("browser_version", f.BrowserVersion),
			slog.String("platform", string(f.Platform)),
			slog.String("device", string(f.Device)),
		), true
	}
}
