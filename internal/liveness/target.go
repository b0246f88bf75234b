package liveness

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// DefaultNetworkWidth is the prefix length of the network derived from the
// target address. /31 matches point-to-point host links; other widths are
// configuration, not a code change.
const DefaultNetworkWidth = 31

// Target identifies the monitored host. Network is computed once from Addr
// and never changes for the lifetime of the process.
type Target struct {
	Addr    netip.Addr
	Network netip.Prefix
}

func NewTarget(addr netip.Addr, width int) (Target, error) {
	if !addr.Is4() {
		return Target{}, fmt.Errorf("liveness: target %s is not an IPv4 address", addr)
	}

	network, err := addr.Prefix(width)
	if err != nil {
		return Target{}, fmt.Errorf("liveness: invalid network width %d: %w", width, err)
	}

	return Target{Addr: addr, Network: network}, nil
}

// maxSequence is the top of the EOS prefix-list sequence range
// (1..4294967294).
const maxSequence = 1<<32 - 2

// Sequence returns the filter-object sequence slot for this target: the
// index of its network within the IPv4 space at the configured width, plus
// one so the slot is never zero. Distinct networks map to distinct slots, so
// independent monitor instances sharing one filter object never collide.
// Computed in 64 bits and clamped to maxSequence, so the top of the /32
// space cannot wrap the slot back to zero.
func (t Target) Sequence() uint32 {
	a4 := t.Network.Addr().As4()
	idx := uint64(binary.BigEndian.Uint32(a4[:]) >> uint(32-t.Network.Bits()))

	seq := idx + 1
	if seq > maxSequence {
		seq = maxSequence
	}

	return uint32(seq)
}

func (t Target) String() string {
	return t.Addr.String()
}
