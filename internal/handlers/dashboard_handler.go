package handlers

import (
	"net/http"
	"strconv"

	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.View())
}

func (h *DashboardHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items := h.Store.Snapshot().Inventory
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(items),
		"items": items,
	})
}

func (h *DashboardHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	alerts := dashboard.StockAlerts(h.Store.Snapshot().Inventory)
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(alerts),
		"items": alerts,
	})
}

func (h *DashboardHandler) MostDemand(w http.ResponseWriter, r *http.Request) {
	ranking := dashboard.DemandRanking(h.Store.Snapshot().Inventory)
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(ranking),
		"items": ranking,
	})
}

func (h *DashboardHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	page, limit := getPaginationParams(r)

	requests := h.Store.Snapshot().Requests
	if s := r.URL.Query().Get("status"); s != "" {
		status := models.RequestStatus(s)
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, "Unknown request status")
			return
		}
		filtered := make([]models.Request, 0, len(requests))
		for _, req := range requests {
			if req.Status == status {
				filtered = append(filtered, req)
			}
		}
		requests = filtered
	}

	window := paginate(requests, page, limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"page":     page,
		"limit":    limit,
		"total":    len(requests),
		"count":    len(window),
		"requests": window,
	})
}

func (h *DashboardHandler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	queue := dashboard.Queue(h.Store.Snapshot(), h.Store.PharmacyName())
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(queue),
		"requests": queue,
	})
}

func (h *DashboardHandler) ListHandoffs(w http.ResponseWriter, r *http.Request) {
	page, limit := getPaginationParams(r)

	handoffs := h.Store.Snapshot().Handoffs
	if r.URL.Query().Get("ready") == "true" {
		handoffs = dashboard.ReadyHandoffs(handoffs)
	}

	window := paginate(handoffs, page, limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"page":     page,
		"limit":    limit,
		"total":    len(handoffs),
		"count":    len(window),
		"handoffs": window,
	})
}

func (h *DashboardHandler) Sales(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	buckets := dashboard.SalesByDay(snap.Handoffs, snap.Inventory, h.Store.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"buckets": buckets,
		"total":   dashboard.TotalSales(buckets),
	})
}

func (h *DashboardHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dashboard.SeasonalFor(h.Store.Now()))
}

func (h *DashboardHandler) GetMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"offline": h.Store.Offline()})
}

func (h *DashboardHandler) Notices(w http.ResponseWriter, r *http.Request) {
	notices := []dashboard.Notice{}
	if h.Feed != nil {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		notices = h.Feed.Recent(limit)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(notices),
		"notices": notices,
	})
}
