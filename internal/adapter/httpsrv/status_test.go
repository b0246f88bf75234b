package httpsrv

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusHandler_RendersSnapshot(t *testing.T) {
	handler := statusHandler(func() Status {
		return Status{
			Target:              "10.2.3.201",
			Network:             "10.2.3.200/31",
			Up:                  false,
			ConsecutiveFailures: 5,
			FilterSynced:        true,
			ProbeDurationMillis: 12.5,
		}
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "10.2.3.201", got.Target)
	require.Equal(t, "10.2.3.200/31", got.Network)
	require.False(t, got.Up)
	require.Equal(t, 5, got.ConsecutiveFailures)
}
