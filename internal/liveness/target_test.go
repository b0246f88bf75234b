package liveness

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTarget_DerivesSlash31(t *testing.T) {
	tests := []struct {
		addr    string
		network string
	}{
		{"10.2.3.201", "10.2.3.200/31"},
		{"10.2.3.200", "10.2.3.200/31"},
		{"192.0.2.1", "192.0.2.0/31"},
		{"192.0.2.254", "192.0.2.254/31"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			target, err := NewTarget(netip.MustParseAddr(tt.addr), DefaultNetworkWidth)
			require.NoError(t, err)
			require.Equal(t, netip.MustParsePrefix(tt.network), target.Network)
		})
	}
}

func TestNewTarget_DerivationIsStable(t *testing.T) {
	addr := netip.MustParseAddr("10.2.3.201")

	first, err := NewTarget(addr, DefaultNetworkWidth)
	require.NoError(t, err)

	second, err := NewTarget(addr, DefaultNetworkWidth)
	require.NoError(t, err)

	require.Equal(t, first.Network, second.Network)
	require.Equal(t, first.Sequence(), second.Sequence())
}

func TestNewTarget_ConfigurableWidth(t *testing.T) {
	target, err := NewTarget(netip.MustParseAddr("10.2.3.201"), 24)
	require.NoError(t, err)
	require.Equal(t, netip.MustParsePrefix("10.2.3.0/24"), target.Network)
}

func TestNewTarget_RejectsIPv6(t *testing.T) {
	_, err := NewTarget(netip.MustParseAddr("2001:db8::1"), DefaultNetworkWidth)
	require.Error(t, err)
}

func TestNewTarget_RejectsInvalidWidth(t *testing.T) {
	_, err := NewTarget(netip.MustParseAddr("10.2.3.201"), 33)
	require.Error(t, err)
}

func TestTarget_SequenceDistinctPerNetwork(t *testing.T) {
	a, err := NewTarget(netip.MustParseAddr("10.2.3.201"), DefaultNetworkWidth)
	require.NoError(t, err)

	b, err := NewTarget(netip.MustParseAddr("10.2.3.203"), DefaultNetworkWidth)
	require.NoError(t, err)

	require.NotEqual(t, a.Sequence(), b.Sequence())

	// Both halves of one /31 share the slot.
	c, err := NewTarget(netip.MustParseAddr("10.2.3.200"), DefaultNetworkWidth)
	require.NoError(t, err)
	require.Equal(t, a.Sequence(), c.Sequence())
}

func TestTarget_SequenceNeverZero(t *testing.T) {
	target, err := NewTarget(netip.MustParseAddr("0.0.0.1"), DefaultNetworkWidth)
	require.NoError(t, err)
	require.NotZero(t, target.Sequence())
}

func TestTarget_SequenceClampedAtTopOfSpace(t *testing.T) {
	// At width 32 the last address would wrap idx+1 back to zero in 32-bit
	// arithmetic; it must clamp to the device maximum instead.
	target, err := NewTarget(netip.MustParseAddr("255.255.255.255"), 32)
	require.NoError(t, err)
	require.NotZero(t, target.Sequence())
	require.Equal(t, uint32(4294967294), target.Sequence())
}
