package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const interactionIDKey ctxKey = "interactionID"

// GenerateInteractionID creates a new UUID for tracing player interactions.
func GenerateInteractionID() string {
	return uuid.NewString()
}

// WithInteractionID returns a new context containing the interaction ID.
func WithInteractionID(ctx context.Context, interactionID string) context.Context {
	return context.WithValue(ctx, interactionIDKey, interactionID)
}

// InteractionIDFromContext extracts the interaction ID from the context, if present.
func InteractionIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(interactionIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the interaction_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := InteractionIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyInteractionID, id)
	}
	return slog.Default()
}

// Package-level helpers for code paths that have no context to hand.

// Info logs at info level on the default logger.
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Warn logs at warn level on the default logger.
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

// Error logs at error level on the default logger.
func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
