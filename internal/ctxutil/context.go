// Package ctxutil provides type-safe context value management.
// Private key types prevent collisions with other packages.
package ctxutil

import "context"

type contextKey string

const (
	chatIDKey    contextKey = "ctxutil.chatID"
	requestIDKey contextKey = "ctxutil.requestID"
)

// WithChatID adds the LINE chat ID (user, group or room) to the context.
func WithChatID(ctx context.Context, chatID string) context.Context {
	return context.WithValue(ctx, chatIDKey, chatID)
}

// GetChatID retrieves the chat ID, or "" when absent.
func GetChatID(ctx context.Context) string {
	if v, ok := ctx.Value(chatIDKey).(string); ok {
		return v
	}
	return ""
}

// WithRequestID adds a request/event ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID, or "" when absent.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
