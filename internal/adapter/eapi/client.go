// Package eapi talks to the Arista EOS command API (JSON-RPC 2.0 runCmds),
// either over the local unix socket exposed by "management api http-commands
// / protocol unix-socket" or over an HTTP(S) endpoint.
package eapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/filterwatch/filterwatch/internal/ports"
)

const DefaultSocket = "/var/run/command-api.sock"

type Client struct {
	logger *slog.Logger
	httpc  *http.Client
	url    string
}

// New builds a client for the given HTTP(S) endpoint, or for the unix socket
// when endpoint is empty. An endpoint without a path gets the standard
// /command-api appended.
func New(logger *slog.Logger, socket, endpoint string) (*Client, error) {
	if endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("eapi: invalid endpoint %q: %w", endpoint, err)
		}

		if u.Path == "" {
			u.Path = "/command-api"
		}

		return &Client{
			logger: logger,
			httpc:  &http.Client{Timeout: 10 * time.Second},
			url:    u.String(),
		}, nil
	}

	if socket == "" {
		socket = DefaultSocket
	}

	transport := &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", socket)
		},
	}

	return &Client{
		logger: logger,
		httpc:  &http.Client{Transport: transport, Timeout: 10 * time.Second},
		// The host part is ignored when dialing a unix socket.
		url: "http://eos/command-api",
	}, nil
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      string    `json:"id"`
}

type rpcParams struct {
	Version int      `json:"version"`
	Cmds    []string `json:"cmds"`
	Format  string   `json:"format"`
}

type rpcResponse struct {
	Result []json.RawMessage `json:"result"`
	Error  *rpcError         `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RunCmds executes the command batch on the device and returns one result
// document per command. A JSON-RPC error response is a device rejection
// (ports.ErrRejected); transport-level failures are plain errors and treated
// as transient by callers.
func (c *Client) RunCmds(ctx context.Context, cmds []string, format string) ([]json.RawMessage, error) {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "runCmds",
		Params: rpcParams{
			Version: 1,
			Cmds:    cmds,
			Format:  format,
		},
		ID: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("eapi: failed to encode request: %w", err)
	}

	c.logger.DebugContext(ctx, "Running device commands", slog.Any("cmds", cmds))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("eapi: failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eapi: request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("eapi: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eapi: unexpected status %d", resp.StatusCode)
	}

	var decoded rpcResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("eapi: failed to decode response: %w", err)
	}

	if decoded.Error != nil {
		return nil, fmt.Errorf("eapi: command failed (code %d): %s: %w",
			decoded.Error.Code, decoded.Error.Message, ports.ErrRejected)
	}

	return decoded.Result, nil
}
