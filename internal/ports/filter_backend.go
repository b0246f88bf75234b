package ports

import (
	"context"
	"errors"
	"net/netip"
)

// ErrRejected marks a device-side rejection of an update (malformed command,
// denied by the device). Rejections are non-transient: retrying the same
// update will not succeed. Errors without this mark are treated as transient
// communication failures.
var ErrRejected = errors.New("rejected by device")

// FilterEntry is one line of a prefix filter object on the device.
type FilterEntry struct {
	Sequence uint32
	Prefix   netip.Prefix
}

// FilterBackend manipulates a named prefix filter object on a network
// device. All calls are synchronous; the device is the source of truth and
// may be modified out-of-band between calls.
type FilterBackend interface {
	// ListEntries returns the entries of the named filter object. The bool
	// reports whether the object exists on the device at all.
	ListEntries(ctx context.Context, list string) ([]FilterEntry, bool, error)
	AddEntry(ctx context.Context, list string, seq uint32, prefix netip.Prefix) error
	RemoveEntry(ctx context.Context, list string, seq uint32) error
	EnsureList(ctx context.Context, list string) error
}
