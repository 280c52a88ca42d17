package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fleetsense/fleetsense/internal/monitor"
)

// Handler is the HTTP handler for the read-only control-panel API.
type Handler struct {
	panel *monitor.Panel
	mux   *http.ServeMux
}

// New creates a Handler over the given panel and registers all routes,
// including the Prometheus exposition at /metrics.
func New(panel *monitor.Panel) http.Handler {
	h := &Handler{panel: panel, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/v1/health", h.health)
	h.mux.HandleFunc("/api/v1/status", h.status)
	h.mux.HandleFunc("/api/v1/sensors", h.sensors)
	h.mux.HandleFunc("/api/v1/alerts", h.alerts)
	h.mux.Handle("/metrics", promhttp.Handler())

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health — liveness plus system identity.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	st := h.panel.Status()
	jsonResp(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Name:    st.Name,
		Version: st.Version,
	})
}

// status returns GET /api/v1/status — the panel status including the last
// cycle summary.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.panel.Status())
}

// sensors returns GET /api/v1/sensors — registered sensors with their last
// readings, in polling order.
func (h *Handler) sensors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	regs := h.panel.Sensors()
	out := make([]SensorResponse, 0, len(regs))
	for _, s := range regs {
		resp := SensorResponse{
			ID:       s.ID(),
			Kind:     s.Kind(),
			Location: s.Location(),
		}
		if last, ok := s.LastReading(); ok {
			resp.LastValue = &last.Value
			resp.LastAt = last.TakenAt.Format(time.RFC3339)
		}
		out = append(out, resp)
	}
	jsonResp(w, http.StatusOK, out)
}

// alerts returns GET /api/v1/alerts — the most recent alert log entries,
// newest first. ?limit=N bounds the result (default 50).
func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			jsonErr(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	jsonResp(w, http.StatusOK, h.panel.RecentAlerts(limit))
}

// --- helpers ----------------------------------------------------------------

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
