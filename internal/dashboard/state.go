package dashboard

import (
	"slices"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

// State is one snapshot of everything the dashboard knows. Actions never
// modify a State in place; they return a new one.
type State struct {
	Inventory []models.InventoryItem `json:"inventory"`
	Requests  []models.Request       `json:"requests"`
	Handoffs  []models.Handoff       `json:"handoffs"`
	Offline   bool                   `json:"offline"`
}

// Clone returns a copy that shares no slice backing arrays with s.
func (s State) Clone() State {
	handoffs := make([]models.Handoff, len(s.Handoffs))
	for i, h := range s.Handoffs {
		if h.HandedOffAt != nil {
			at := *h.HandedOffAt
			h.HandedOffAt = &at
		}
		handoffs[i] = h
	}
	return State{
		Inventory: slices.Clone(s.Inventory),
		Requests:  slices.Clone(s.Requests),
		Handoffs:  handoffs,
		Offline:   s.Offline,
	}
}

func (s State) itemIndex(id string) int {
	return slices.IndexFunc(s.Inventory, func(i models.InventoryItem) bool { return i.ID == id })
}

func (s State) requestIndex(id string) int {
	return slices.IndexFunc(s.Requests, func(r models.Request) bool { return r.ID == id })
}

func (s State) handoffIndex(id string) int {
	return slices.IndexFunc(s.Handoffs, func(h models.Handoff) bool { return h.ID == id })
}

// Item looks up an inventory item by ID.
func (s State) Item(id string) (models.InventoryItem, bool) {
	if i := s.itemIndex(id); i >= 0 {
		return s.Inventory[i], true
	}
	return models.InventoryItem{}, false
}

func (s State) Request(id string) (models.Request, bool) {
	if i := s.requestIndex(id); i >= 0 {
		return s.Requests[i], true
	}
	return models.Request{}, false
}

func (s State) Handoff(id string) (models.Handoff, bool) {
	if i := s.handoffIndex(id); i >= 0 {
		return s.Handoffs[i], true
	}
	return models.Handoff{}, false
}
