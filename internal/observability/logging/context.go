package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

var requestIDKey = contextKey{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ValidateAndExtractRequestID returns the given request ID if usable,
// otherwise a freshly generated one. Overlong values are discarded rather
// than truncated so downstream systems never see partial identifiers.
func ValidateAndExtractRequestID(requestID string) string {
	if requestID == "" || len(requestID) > 128 {
		return uuid.NewString()
	}
	return requestID
}
