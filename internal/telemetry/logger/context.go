// Package logger provides structured logging for CarFlow.
package logger

import "context"

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	// loggerKey is the context key for the logger.
	loggerKey contextKey = "carflow.logger"
	// cycleIDKey is the context key for the aggregate cycle ID.
	cycleIDKey contextKey = "carflow.cycle_id"
	// sessionIDKey is the context key for the feed session ID.
	sessionIDKey contextKey = "carflow.session_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithCycleID adds an aggregate cycle ID to the context.
func WithCycleID(ctx context.Context, cycleID string) context.Context {
	return context.WithValue(ctx, cycleIDKey, cycleID)
}

// CycleIDFromContext extracts the cycle ID from context.
func CycleIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(cycleIDKey).(string); ok {
		return id
	}
	return ""
}

// WithSessionID adds a feed session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext extracts the session ID from context.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// L is a shorthand for FromContext that also enriches the logger
// with the cycle ID and session ID from the context.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)

	if cycleID := CycleIDFromContext(ctx); cycleID != "" {
		l = l.With("cycle_id", cycleID)
	}
	if sessionID := SessionIDFromContext(ctx); sessionID != "" {
		l = l.With("session_id", sessionID)
	}

	return l
}
