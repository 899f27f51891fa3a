// Package health serves liveness and readiness endpoints.
package health

import (
	"encoding/json"
	"net/http"
)

func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// ReadinessReporter is implemented by components with external dependencies
// that must be connected before the binary can serve traffic.
type ReadinessReporter interface {
	Ready() bool
}

// ReadyFunc adapts a plain function to ReadinessReporter.
type ReadyFunc func() bool

func (f ReadyFunc) Ready() bool { return f() }

func Readiness(reporters ...ReadinessReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		type resp struct {
			Status string `json:"status"`
		}
		out := resp{Status: "ready"}
		code := http.StatusOK
		for _, r := range reporters {
			if r != nil && !r.Ready() {
				out.Status = "not_ready"
				code = http.StatusServiceUnavailable
				break
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(out)
	}
}
