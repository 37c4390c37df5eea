package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sourceIDKey ctxKey = "source_id"
	runIDKey    ctxKey = "run_id"
)

// WithSourceID stores the input source ID in the context.
func WithSourceID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sourceIDKey, id)
}

// SourceIDFromCtx extracts the source ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func SourceIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sourceIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRunID stores the mining-run ID in the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the mining-run ID from the context.
// Returns an empty string if absent.
func RunIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}
