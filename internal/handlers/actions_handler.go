package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

const msgInvalidBody = "Invalid request body"

func (h *DashboardHandler) Restock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount *int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	amount := dashboard.DefaultRestockAmount
	if body.Amount != nil {
		amount = *body.Amount
	}

	id := mux.Vars(r)["id"]
	n, err := h.Store.Restock(r.Context(), id, amount, dashboard.OnlineOnly)
	var extra map[string]any
	if item, ok := h.Store.Snapshot().Item(id); ok {
		extra = map[string]any{"item": item}
	}
	h.writeActionResult(w, http.StatusOK, n, err, extra)
}

func (h *DashboardHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	n, err := h.Store.AcceptRequest(r.Context(), id, dashboard.OnlineOnly, dashboard.NotAssignedElsewhere(id))
	h.writeActionResult(w, http.StatusOK, n, err, nil)
}

func (h *DashboardHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	n, err := h.Store.RejectRequest(r.Context(), id, dashboard.OnlineOnly, dashboard.NotAssignedElsewhere(id))
	h.writeActionResult(w, http.StatusOK, n, err, nil)
}

func (h *DashboardHandler) CompleteHandoff(w http.ResponseWriter, r *http.Request) {
	n, err := h.Store.CompleteHandoff(r.Context(), mux.Vars(r)["id"], dashboard.OnlineOnly)
	h.writeActionResult(w, http.StatusOK, n, err, nil)
}

func (h *DashboardHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Offline *bool `json:"offline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Offline == nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	n, err := h.Store.SetOffline(r.Context(), *body.Offline)
	h.writeActionResult(w, http.StatusOK, n, err, map[string]any{"offline": *body.Offline})
}

// CreateRequest takes a request from the SMS gateway feed. It is accepted
// regardless of the mode flag.
func (h *DashboardHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	stored, n, err := h.Store.IngestRequest(r.Context(), req)
	h.writeActionResult(w, http.StatusCreated, n, err, map[string]any{"request": stored})
}
