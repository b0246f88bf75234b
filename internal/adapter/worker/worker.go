// Package worker drives the probe loop: one task execution per interval,
// starting immediately, until shutdown.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/filterwatch/filterwatch/internal/common/cycle"
	"github.com/filterwatch/filterwatch/internal/common/logging"
)

type Task interface {
	Execute(ctx context.Context) error
}

type Worker struct {
	logger *slog.Logger

	interval time.Duration
	task     Task

	ctx    context.Context
	cancel context.CancelFunc

	mu sync.Mutex
}

func NewWorker(logger *slog.Logger, interval time.Duration, task Task) *Worker {
	return &Worker{
		logger:   logger,
		interval: interval,
		task:     task,
	}
}

// Start blocks, running the task once per interval (and once right away)
// until Shutdown. Task errors are logged and never stop the loop: the
// monitor keeps probing through any single bad cycle.
func (w *Worker) Start() error {
	locked := w.mu.TryLock()
	if !locked {
		return fmt.Errorf("worker is already running")
	}

	defer w.mu.Unlock()

	w.ctx, w.cancel = context.WithCancel(context.Background())
	defer w.cancel()

	ticker := newImmediateTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return nil
		case <-ticker.C:
			err := w.task.Execute(cycle.WithID(w.ctx))
			if err != nil && !errors.Is(err, context.Canceled) {
				w.logger.ErrorContext(w.ctx, "Probe cycle failed", logging.Error(err))
			}
		}
	}
}

func (w *Worker) Shutdown(_ context.Context) error {
	if w.cancel != nil {
		w.cancel()
	}

	return nil
}

// newImmediateTicker wraps time.Ticker so the first tick fires right away
// instead of one interval in.
func newImmediateTicker(repeat time.Duration) *time.Ticker {
	ticker := time.NewTicker(repeat)
	oc := ticker.C
	nc := make(chan time.Time, 1)
	go func() {
		nc <- time.Now()
		for tm := range oc {
			nc <- tm
		}
	}()
	ticker.C = nc
	return ticker
}
