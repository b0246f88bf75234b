package ports

import (
	"context"
	"time"
)

// HostStatus is the outcome of one probe cycle.
type HostStatus struct {
	Up                  bool
	ConsecutiveFailures int
	// FilterSynced is false while the device filter object is not yet known
	// to match the current verdict (pending or failed reconciliation).
	FilterSynced  bool
	ProbeDuration time.Duration
	// Transition is "up" or "down" when this cycle flipped the verdict,
	// empty otherwise.
	Transition string
}

type StatePublisher interface {
	Publish(ctx context.Context, status HostStatus) error
}
