package handlers

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 2 * time.Second

func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}

func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthCheck pings every registered dependency. Any failure marks the
// service degraded.
func (h *DashboardHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	body := map[string]string{"status": "ok"}
	code := http.StatusOK
	for _, c := range h.Checks {
		status := "ok"
		if err := c.Ping(ctx); err != nil {
			status = "error"
			body["status"] = "degraded"
			code = http.StatusServiceUnavailable
		}
		body[c.Name()] = status
	}

	writeJSON(w, code, body)
}
