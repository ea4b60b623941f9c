package useragent

import "context"

type contextKey struct{}

// WithContext stores facts in the context.
func WithContext(ctx context.Context, f Facts) context.Context {
	return context.WithValue(ctx, contextKey{}, f)
}

// FromContext retrieves facts stored by WithContext or Middleware.
func FromContext(ctx context.Context) (Facts, bool) {
	if ctx == nil {
		return Facts{}, false
	}
	f, ok := ctx.Value(contextKey{}).(Facts)
	return f, ok
}
