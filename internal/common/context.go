package common

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for storing values in context
type contextKey string

const (
	// ContextKeySessionID carries the session being processed. Components
	// always take the session id as an explicit argument; the context copy
	// exists only for log correlation.
	ContextKeySessionID contextKey = "session_id"
)

// WithSessionID adds a session ID to the context
func WithSessionID(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// SessionIDFromContext extracts the session ID from context
func SessionIDFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(ContextKeySessionID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
