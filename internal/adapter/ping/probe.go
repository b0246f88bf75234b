package ping

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"

	"github.com/filterwatch/filterwatch/internal/ports"
)

const protocolICMP = 1

type Probe struct {
	client *Client
}

func NewProbe(client *Client) *Probe {
	return &Probe{client: client}
}

// Probe sends one echo request and waits up to timeout for the matching
// reply. A quiet wire, a time-exceeded or an unreachable answer all mean the
// host is down; only socket-level failures are reported as errors.
func (p *Probe) Probe(ctx context.Context, addr netip.Addr, timeout time.Duration) (ports.HostState, error) {
	c := p.client

	c.seq++
	seq := int(c.seq)

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   c.id,
			Seq:  seq,
			Data: []byte("filterwatch"),
		},
	}

	wire, err := msg.Marshal(nil)
	if err != nil {
		return ports.HostUnknown, fmt.Errorf("ping: failed to marshal echo request: %w", err)
	}

	dst := &net.UDPAddr{IP: addr.AsSlice()}

	if _, err := c.conn.WriteTo(wire, dst); err != nil {
		return ports.HostUnknown, fmt.Errorf("ping: failed to send echo request to %s: %w", addr, err)
	}

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return ports.HostUnknown, fmt.Errorf("ping: failed to set read deadline: %w", err)
	}

	buf := make([]byte, 1500)

	for {
		if err := ctx.Err(); err != nil {
			return ports.HostUnknown, err
		}

		n, peer, err := c.conn.ReadFrom(buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				c.logger.DebugContext(ctx, "Echo request timed out",
					slog.String("target", addr.String()),
					slog.Int("seq", seq))

				return ports.HostDown, nil
			}

			return ports.HostUnknown, fmt.Errorf("ping: failed to read reply: %w", err)
		}

		reply, err := icmp.ParseMessage(protocolICMP, buf[:n])
		if err != nil {
			c.logger.DebugContext(ctx, "Discarding unparsable ICMP packet", slog.Any("error", err))
			continue
		}

		switch body := reply.Body.(type) {
		case *icmp.Echo:
			if reply.Type == ipv4.ICMPTypeEchoReply && body.Seq == seq && fromPeer(peer, addr) {
				return ports.HostUp, nil
			}
		case *icmp.TimeExceeded, *icmp.DstUnreach:
			// Negative answer about our probe, typically from the TTL=1
			// constraint or a local router.
			return ports.HostDown, nil
		}

		// A reply for some other probe or host; keep reading until the
		// deadline.
	}
}

func fromPeer(peer net.Addr, addr netip.Addr) bool {
	udp, ok := peer.(*net.UDPAddr)
	if !ok {
		return false
	}

	peerAddr, ok := netip.AddrFromSlice(udp.IP)
	if !ok {
		return false
	}

	return peerAddr.Unmap() == addr
}
