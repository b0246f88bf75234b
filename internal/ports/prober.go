package ports

import (
	"context"
	"net/netip"
	"time"
)

type HostState int

const (
	HostUnknown HostState = iota
	HostUp
	HostDown
)

// Prober sends a single reachability check to addr. A probe that times out
// reports HostDown with a nil error; transport-level failures report
// HostUnknown with the error.
type Prober interface {
	Probe(ctx context.Context, addr netip.Addr, timeout time.Duration) (HostState, error)
}
