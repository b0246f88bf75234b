// Package ping probes hosts with ICMP echo requests over an unprivileged
// datagram socket. The socket TTL defaults to 1: only directly-connected
// hosts are probed, anything behind a router reports unreachable.
package ping

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/net/icmp"
)

const DefaultTTL = 1

type Client struct {
	logger *slog.Logger
	conn   *icmp.PacketConn
	id     int
	seq    uint16
}

// New opens the ICMP socket. source optionally pins the source address of
// outgoing probes (empty binds the wildcard address).
func New(logger *slog.Logger, source string, ttl int) (*Client, error) {
	if ttl < 1 || ttl > 255 {
		return nil, fmt.Errorf("ping: ttl must be within 1..255, got %d", ttl)
	}

	listen := "0.0.0.0"
	if source != "" {
		listen = source
	}

	conn, err := icmp.ListenPacket("udp4", listen)
	if err != nil {
		return nil, fmt.Errorf("ping: failed to open ICMP socket on %s: %w", listen, err)
	}

	if err := conn.IPv4PacketConn().SetTTL(ttl); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping: failed to set TTL %d: %w", ttl, err)
	}

	return &Client{
		logger: logger,
		conn:   conn,
		// The kernel rewrites the echo ID on datagram sockets; keep one
		// anyway for the privileged-socket case and for debug output.
		id: os.Getpid() & 0xffff,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
