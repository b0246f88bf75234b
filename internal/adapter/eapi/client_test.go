package eapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_EndpointPathDefaultsToCommandAPI(t *testing.T) {
	ctx := context.Background()

	client, paths := newPathRecordingClient(t, "")

	_, err := client.RunCmds(ctx, []string{"show version"}, "json")
	require.NoError(t, err)
	require.Equal(t, "/command-api", <-paths)
}

func TestClient_EndpointPathPreserved(t *testing.T) {
	ctx := context.Background()

	client, paths := newPathRecordingClient(t, "/custom/api")

	_, err := client.RunCmds(ctx, []string{"show version"}, "json")
	require.NoError(t, err)
	require.Equal(t, "/custom/api", <-paths)
}

func newPathRecordingClient(t *testing.T, path string) (*Client, <-chan string) {
	t.Helper()

	paths := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":[{}]}`))
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := New(logger, "", srv.URL+path)
	require.NoError(t, err)

	return client, paths
}
