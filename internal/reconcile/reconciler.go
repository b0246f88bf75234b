// Package reconcile drives the device filter object toward the state implied
// by the current liveness verdict: the target's network is present in the
// list exactly while the target is considered down.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/filterwatch/filterwatch/internal/liveness"
	"github.com/filterwatch/filterwatch/internal/ports"
)

type Reconciler struct {
	logger  *slog.Logger
	backend ports.FilterBackend
	list    string
}

func New(logger *slog.Logger, backend ports.FilterBackend, list string) *Reconciler {
	return &Reconciler{
		logger:  logger,
		backend: backend,
		list:    list,
	}
}

// Ensure makes the filter object agree with verdict. It always reads device
// state first: the device may already reflect the desired state from a
// previous run, or may have been edited out-of-band. At most one write is
// issued per call, and repeating a call is a no-op.
func (r *Reconciler) Ensure(ctx context.Context, target liveness.Target, verdict liveness.Verdict) error {
	entries, exists, err := r.backend.ListEntries(ctx, r.list)
	if err != nil {
		return fmt.Errorf("failed to list entries of %s: %w", r.list, err)
	}

	found, seq := findNetwork(entries, target)

	if verdict == liveness.Down {
		return r.ensurePresent(ctx, target, entries, exists, found)
	}

	return r.ensureAbsent(ctx, target, found, seq)
}

func (r *Reconciler) ensurePresent(ctx context.Context, target liveness.Target, entries []ports.FilterEntry, exists, found bool) error {
	if found {
		r.logger.DebugContext(ctx, "Filter entry already present",
			slog.String("list", r.list),
			slog.String("network", target.Network.String()))

		return nil
	}

	if !exists {
		r.logger.DebugContext(ctx, "Filter object missing, creating", slog.String("list", r.list))

		if err := r.backend.EnsureList(ctx, r.list); err != nil {
			return fmt.Errorf("failed to create filter object %s: %w", r.list, err)
		}
	}

	seq := target.Sequence()
	for _, e := range entries {
		if e.Sequence == seq {
			// Never replace an entry some other actor put in our slot.
			return fmt.Errorf("sequence %d in %s is occupied by %s: %w",
				seq, r.list, e.Prefix, ports.ErrRejected)
		}
	}

	if err := r.backend.AddEntry(ctx, r.list, seq, target.Network); err != nil {
		return fmt.Errorf("failed to add %s to %s: %w", target.Network, r.list, err)
	}

	r.logger.InfoContext(ctx, "Added filter entry",
		slog.String("list", r.list),
		slog.String("network", target.Network.String()),
		slog.Uint64("seq", uint64(seq)))

	return nil
}

func (r *Reconciler) ensureAbsent(ctx context.Context, target liveness.Target, found bool, seq uint32) error {
	if !found {
		r.logger.DebugContext(ctx, "Filter entry already absent",
			slog.String("list", r.list),
			slog.String("network", target.Network.String()))

		return nil
	}

	// Remove by the sequence the device reported, not the derived one: the
	// entry may predate this run and carry a different number.
	if err := r.backend.RemoveEntry(ctx, r.list, seq); err != nil {
		return fmt.Errorf("failed to remove %s from %s: %w", target.Network, r.list, err)
	}

	r.logger.InfoContext(ctx, "Removed filter entry",
		slog.String("list", r.list),
		slog.String("network", target.Network.String()),
		slog.Uint64("seq", uint64(seq)))

	return nil
}

func findNetwork(entries []ports.FilterEntry, target liveness.Target) (bool, uint32) {
	for _, e := range entries {
		if e.Prefix == target.Network {
			return true, e.Sequence
		}
	}

	return false, 0
}
