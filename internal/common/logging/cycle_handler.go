package logging

import (
	"context"
	"log/slog"

	"github.com/filterwatch/filterwatch/internal/common/cycle"
)

var _ slog.Handler = (*CycleHandler)(nil)

// CycleHandler adds the probe-cycle ID from the context to every record.
type CycleHandler struct {
	w slog.Handler
}

func NewCycleHandler(handler slog.Handler) *CycleHandler {
	return &CycleHandler{w: handler}
}

func (h *CycleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.w.Enabled(ctx, level)
}

func (h *CycleHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := cycle.ID(ctx); id != "" {
		r.Add(slog.String("cycle_id", id))
	}

	return h.w.Handle(ctx, r)
}

func (h *CycleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CycleHandler{w: h.w.WithAttrs(attrs)}
}

func (h *CycleHandler) WithGroup(name string) slog.Handler {
	return &CycleHandler{w: h.w.WithGroup(name)}
}
