package eapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/netip"

	"github.com/filterwatch/filterwatch/internal/ports"
)

// Backend implements ports.FilterBackend on top of EOS prefix-lists.
type Backend struct {
	logger *slog.Logger
	client *Client
}

func NewBackend(logger *slog.Logger, client *Client) *Backend {
	return &Backend{
		logger: logger,
		client: client,
	}
}

type showPrefixListResult struct {
	IPPrefixLists map[string]struct {
		IPPrefixEntries []struct {
			Prefix string `json:"prefix"`
			SeqNo  uint32 `json:"seqno"`
		} `json:"ipPrefixEntries"`
	} `json:"ipPrefixLists"`
}

func (b *Backend) ListEntries(ctx context.Context, list string) ([]ports.FilterEntry, bool, error) {
	res, err := b.client.RunCmds(ctx, []string{"show ip prefix-list " + list}, "json")
	if err != nil {
		return nil, false, err
	}

	if len(res) != 1 {
		return nil, false, fmt.Errorf("eapi: expected 1 result, got %d", len(res))
	}

	var decoded showPrefixListResult
	if err := json.Unmarshal(res[0], &decoded); err != nil {
		return nil, false, fmt.Errorf("eapi: failed to decode prefix-list %s: %w", list, err)
	}

	pl, ok := decoded.IPPrefixLists[list]
	if !ok {
		return nil, false, nil
	}

	entries := make([]ports.FilterEntry, 0, len(pl.IPPrefixEntries))

	for _, e := range pl.IPPrefixEntries {
		prefix, err := netip.ParsePrefix(e.Prefix)
		if err != nil {
			b.logger.DebugContext(ctx, "Skipping unparsable prefix-list entry",
				slog.String("list", list),
				slog.String("prefix", e.Prefix))
			continue
		}

		entries = append(entries, ports.FilterEntry{Sequence: e.SeqNo, Prefix: prefix})
	}

	return entries, true, nil
}

func (b *Backend) AddEntry(ctx context.Context, list string, seq uint32, prefix netip.Prefix) error {
	return b.configure(ctx, fmt.Sprintf("ip prefix-list %s seq %d permit %s", list, seq, prefix))
}

func (b *Backend) RemoveEntry(ctx context.Context, list string, seq uint32) error {
	return b.configure(ctx, fmt.Sprintf("no ip prefix-list %s seq %d", list, seq))
}

func (b *Backend) EnsureList(ctx context.Context, list string) error {
	return b.configure(ctx, "ip prefix-list "+list)
}

func (b *Backend) configure(ctx context.Context, cmd string) error {
	_, err := b.client.RunCmds(ctx, []string{"enable", "configure", cmd, "end"}, "json")
	return err
}
