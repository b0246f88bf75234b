package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/filterwatch/filterwatch/internal/common/logging"
	"github.com/filterwatch/filterwatch/internal/liveness"
	"github.com/filterwatch/filterwatch/internal/ports"
)

// FilterReconciler drives the device filter object toward the given verdict.
type FilterReconciler interface {
	Ensure(ctx context.Context, target liveness.Target, verdict liveness.Verdict) error
}

// CheckHostUseCase runs one probe cycle: probe the target, debounce the
// outcome, reconcile the device filter when it may disagree with the
// verdict, and publish the resulting status.
//
// Reconciliation is pending on the first cycle (a previous run may have left
// a stale entry behind) and stays pending after a transient backend failure,
// so the device converges on the verdict even when a write on the transition
// edge itself fails. Steady-state cycles with nothing pending touch the
// device not at all.
type CheckHostUseCase struct {
	logger     *slog.Logger
	prober     ports.Prober
	reconciler FilterReconciler
	publisher  ports.StatePublisher

	target  liveness.Target
	tracker *liveness.Tracker
	timeout time.Duration

	syncPending bool
	// syncFailed records a device rejection: the reconcile is not retried,
	// but the filter must not be reported as synced until the next
	// transition gives it a fresh chance.
	syncFailed bool

	mu   sync.Mutex
	last ports.HostStatus
}

type Config struct {
	Timeout       time.Duration
	DownThreshold int
	UpThreshold   int
}

func NewCheckHostUseCase(
	logger *slog.Logger,
	prober ports.Prober,
	reconciler FilterReconciler,
	publisher ports.StatePublisher,
	target liveness.Target,
	cfg Config,
) *CheckHostUseCase {
	return &CheckHostUseCase{
		logger:      logger,
		prober:      prober,
		reconciler:  reconciler,
		publisher:   publisher,
		target:      target,
		tracker:     liveness.NewTracker(cfg.DownThreshold, cfg.UpThreshold),
		timeout:     cfg.Timeout,
		syncPending: true,
		// Belief starts optimistic; reflect that before the first cycle runs.
		last: ports.HostStatus{Up: true},
	}
}

func (u *CheckHostUseCase) Execute(ctx context.Context) error {
	start := time.Now()

	state, err := u.prober.Probe(ctx, u.target.Addr, u.timeout)
	duration := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		// A broken probe transport proves nothing about the target, but
		// the original detection logic cannot tell either: count it as a
		// failed probe.
		u.logger.WarnContext(ctx, "Probe error, counting as failure",
			slog.String("target", u.target.String()),
			logging.Error(err))
	}

	success := err == nil && state == ports.HostUp

	transition, changed := u.tracker.Observe(success)
	if changed {
		u.syncPending = true
		u.syncFailed = false
		u.logTransition(ctx, transition)
	} else {
		u.logger.DebugContext(ctx, "Probe result",
			slog.String("target", u.target.String()),
			slog.Bool("alive", success),
			slog.Int("consecutive_failures", u.tracker.ConsecutiveFailures()),
			slog.Duration("duration", duration))
	}

	if u.syncPending {
		u.reconcilePending(ctx)
	}

	status := ports.HostStatus{
		Up:                  u.tracker.Verdict() == liveness.Up,
		ConsecutiveFailures: u.tracker.ConsecutiveFailures(),
		FilterSynced:        !u.syncPending && !u.syncFailed,
		ProbeDuration:       duration,
	}
	if changed {
		status.Transition = transition.To.String()
	}

	u.mu.Lock()
	u.last = status
	u.mu.Unlock()

	if err := u.publisher.Publish(ctx, status); err != nil {
		return fmt.Errorf("failed to publish host status: %w", err)
	}

	return nil
}

// Status returns the outcome of the most recent cycle. Safe to call
// concurrently with Execute.
func (u *CheckHostUseCase) Status() ports.HostStatus {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.last
}

func (u *CheckHostUseCase) reconcilePending(ctx context.Context) {
	verdict := u.tracker.Verdict()

	err := u.reconciler.Ensure(ctx, u.target, verdict)

	switch {
	case err == nil:
		u.syncPending = false
		u.syncFailed = false
	case errors.Is(err, ports.ErrRejected):
		// Non-transient: the device refused the update. Repeating it every
		// cycle cannot converge, so surface it and wait for the next edge.
		u.syncPending = false
		u.syncFailed = true
		u.logger.ErrorContext(ctx, "Device rejected filter update",
			slog.String("target", u.target.String()),
			slog.String("verdict", verdict.String()),
			logging.Error(err))
	default:
		u.logger.WarnContext(ctx, "Filter reconciliation failed, will retry next cycle",
			slog.String("target", u.target.String()),
			slog.String("verdict", verdict.String()),
			logging.Error(err))
	}
}

func (u *CheckHostUseCase) logTransition(ctx context.Context, transition liveness.Transition) {
	if transition.To == liveness.Down {
		u.logger.ErrorContext(ctx, "Target is dead",
			slog.String("target", u.target.String()),
			slog.String("network", u.target.Network.String()))

		return
	}

	u.logger.InfoContext(ctx, "Target resurrected",
		slog.String("target", u.target.String()),
		slog.String("network", u.target.Network.String()))
}
