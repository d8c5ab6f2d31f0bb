package rest

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
)

const probeTimeout = 3 * time.Second

// Pinger is any dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components map[string]Pinger
	version    string
	provider   string
	clock      clockwork.Clock
}

// NewHealthHandler creates a HealthHandler. Every component is pinged by the
// readiness and full health probes; provider names the configured text
// generator for the full report.
func NewHealthHandler(version, provider string, clock clockwork.Clock, components map[string]Pinger) *HealthHandler {
	return &HealthHandler{components: components, version: version, provider: provider, clock: clock}
}

// HealthResponse is the JSON response of the health endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Provider   string                `json:"provider,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Ready is the readiness probe: 200 when every component answers, else 503.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.probe(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: h.clock.Now()})
}

// Health is the full report with per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.probe(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Provider:   h.provider,
		Components: components,
		Timestamp:  h.clock.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)

	overall := "ok"
	out := make(map[string]CompStatus, len(names))
	for _, name := range names {
		start := h.clock.Now()
		if err := h.components[name].Ping(ctx); err != nil {
			out[name] = CompStatus{Status: "down"}
			overall = "down"
			continue
		}
		out[name] = CompStatus{Status: "ok", Latency: h.clock.Since(start).String()}
	}
	return overall, out
}

func httpStatus(health string) int {
	if health == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
