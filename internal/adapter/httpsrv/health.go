package httpsrv

import "net/http"

// healthHandler reports liveness of the monitor process itself; the state of
// the monitored target lives at /status.
func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
