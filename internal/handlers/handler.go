package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
	"github.com/MosaabBleik/pharmacy-service/internal/notify"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Pinger is a dependency reported by the health endpoint.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

type DashboardHandler struct {
	Store  *dashboard.Store
	Feed   *notify.Feed
	Checks []Pinger
	Logger *zap.Logger
}

// NewRouter registers every dashboard endpoint on a fresh mux router.
func NewRouter(h *DashboardHandler) *mux.Router {
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}

	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/api/ping", h.Ping).Methods("GET")
	r.HandleFunc("/api/health", h.HealthCheck).Methods("GET")

	r.HandleFunc("/api/dashboard", h.Dashboard).Methods("GET")

	r.HandleFunc("/api/inventory", h.ListInventory).Methods("GET")
	r.HandleFunc("/api/inventory/low-stock", h.LowStock).Methods("GET")
	r.HandleFunc("/api/inventory/most-demand", h.MostDemand).Methods("GET")
	r.HandleFunc("/api/inventory/{id}/restock", h.Restock).Methods("POST")

	r.HandleFunc("/api/requests", h.ListRequests).Methods("GET")
	r.HandleFunc("/api/requests", h.CreateRequest).Methods("POST")
	r.HandleFunc("/api/requests/pending", h.PendingRequests).Methods("GET")
	r.HandleFunc("/api/requests/{id}/accept", h.AcceptRequest).Methods("POST")
	r.HandleFunc("/api/requests/{id}/reject", h.RejectRequest).Methods("POST")

	r.HandleFunc("/api/handoffs", h.ListHandoffs).Methods("GET")
	r.HandleFunc("/api/handoffs/{id}/complete", h.CompleteHandoff).Methods("POST")

	r.HandleFunc("/api/sales", h.Sales).Methods("GET")
	r.HandleFunc("/api/recommendations", h.Recommendations).Methods("GET")

	r.HandleFunc("/api/mode", h.GetMode).Methods("GET")
	r.HandleFunc("/api/mode", h.SetMode).Methods("PUT")

	r.HandleFunc("/api/notices", h.Notices).Methods("GET")

	return r
}

func getPaginationParams(r *http.Request) (page int, limit int) {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")

	page = defaultPage
	limit = defaultLimit

	if pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			if l > 0 && l <= maxLimit {
				limit = l
			} else if l > maxLimit {
				limit = maxLimit
			}
		}
	}

	return page, limit
}

// paginate returns the window of s for page and limit, clamped to its bounds.
func paginate[T any](s []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(s) {
		return []T{}
	}
	end := min(start+limit, len(s))
	return s[start:end]
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

func statusFor(code dashboard.StatusCode) int {
	switch code {
	case dashboard.StatusInvalidArgument:
		return http.StatusBadRequest
	case dashboard.StatusNotFound:
		return http.StatusNotFound
	case dashboard.StatusFailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeActionResult answers a store action. Rejections carry their notice so
// the operator still sees why nothing changed. Guard refusals have none.
func (h *DashboardHandler) writeActionResult(w http.ResponseWriter, status int, n dashboard.Notice, err error, extra map[string]any) {
	if err != nil {
		if errors.Is(err, dashboard.ErrOffline) {
			writeError(w, http.StatusLocked, "Dashboard is offline; actions are disabled")
			return
		}
		var cmdErr *dashboard.CommandError
		if errors.As(err, &cmdErr) {
			body := map[string]any{
				"error": cmdErr.Message,
				"code":  cmdErr.Code.String(),
			}
			if n.Title != "" {
				body["notice"] = n
			}
			writeJSON(w, statusFor(cmdErr.Code), body)
			return
		}
		h.Logger.Error("action failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save dashboard state")
		return
	}

	body := map[string]any{"notice": n}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, status, body)
}
