// Package cycle tags each probe cycle with a correlation ID so every log
// line belonging to one cycle (probe, transition, device calls) can be
// grouped together.
package cycle

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

func WithID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(ctxKey{}).(string); ok {
		return ctx
	}

	id, _ := uuid.NewV7()

	return context.WithValue(ctx, ctxKey{}, id.String())
}

func ID(ctx context.Context) string {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok {
		return ""
	}

	return id
}
