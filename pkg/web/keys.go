package web

import "context"

type requestIDKey struct{}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and a boolean indicating whether it was found.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// RequestID returns the request ID stored in ctx or "unknown".
func RequestID(ctx context.Context) string {
	if id, ok := GetRequestID(ctx); ok && id != "" {
		return id
	}
	return "unknown"
}
