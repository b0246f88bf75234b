package httpsrv

import (
	"encoding/json"
	"net/http"
)

// Status is the JSON document served at /status.
type Status struct {
	Target              string  `json:"target"`
	Network             string  `json:"network"`
	Up                  bool    `json:"up"`
	ConsecutiveFailures int     `json:"consecutive_failures"`
	FilterSynced        bool    `json:"filter_synced"`
	ProbeDurationMillis float64 `json:"probe_duration_ms"`
}

func statusHandler(status func() Status) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status())
	}
}
