package dashboard

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

const (
	MostDemandLimit = 5
	NearestKm       = 1.0
	HighPriorityKm  = 3.0
)

const (
	LabelOutOfStock   = "Out of stock"
	LabelNearest      = "You are nearest"
	LabelHighPriority = "High priority"
	LabelNormal       = "Normal"
)

// OutOfStock lists items that are empty or below their minimum, lowest stock first.
func OutOfStock(items []models.InventoryItem) []models.InventoryItem {
	alerts := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.BelowMinimum() {
			alerts = append(alerts, item)
		}
	}
	slices.SortStableFunc(alerts, func(a, b models.InventoryItem) int {
		return cmp.Compare(a.Stock, b.Stock)
	})
	return alerts
}

// MostDemand returns the top items by cumulative demand.
func MostDemand(items []models.InventoryItem) []models.InventoryItem {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b models.InventoryItem) int {
		return cmp.Compare(b.DemandCount, a.DemandCount)
	})
	if len(ranked) > MostDemandLimit {
		ranked = ranked[:MostDemandLimit]
	}
	return ranked
}

// CanFulfill is true when the referenced medicine is stocked in at least the requested quantity.
func CanFulfill(req models.Request, items []models.InventoryItem) bool {
	for _, item := range items {
		if item.ID == req.MedicineID {
			return item.Stock >= req.Qty
		}
	}
	return false
}

// PriorityLabel picks the first matching rule; assignment to another pharmacy wins over everything.
func PriorityLabel(req models.Request, fulfillable bool, self string) string {
	switch {
	case req.AssignedElsewhere(self):
		return fmt.Sprintf("Assigned to %s", req.AssignedTo)
	case !fulfillable:
		return LabelOutOfStock
	case req.DistanceKm <= NearestKm:
		return LabelNearest
	case req.DistanceKm <= HighPriorityKm:
		return LabelHighPriority
	default:
		return LabelNormal
	}
}

// StockPercent is stock as a share of the minimum, clamped to [0, 100].
func StockPercent(item models.InventoryItem) float64 {
	if item.MinStock <= 0 {
		if item.Stock > 0 {
			return 100
		}
		return 0
	}
	pct := float64(item.Stock) / float64(item.MinStock) * 100
	return math.Max(0, math.Min(100, pct))
}

// TypicalDaily spreads cumulative demand over a month, never reporting less than one.
func TypicalDaily(item models.InventoryItem) int {
	return max(1, int(math.Round(float64(item.DemandCount)/30)))
}

// Pending returns pending requests, nearest first.
func Pending(requests []models.Request) []models.Request {
	pending := make([]models.Request, 0, len(requests))
	for _, r := range requests {
		if r.Status == models.RequestStatusPending {
			pending = append(pending, r)
		}
	}
	slices.SortStableFunc(pending, func(a, b models.Request) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
	return pending
}

// ReadyHandoffs are accepted packages still waiting for a CHW.
func ReadyHandoffs(handoffs []models.Handoff) []models.Handoff {
	ready := make([]models.Handoff, 0, len(handoffs))
	for _, h := range handoffs {
		if !h.Completed() {
			ready = append(ready, h)
		}
	}
	return ready
}

func CountByStatus(requests []models.Request, status models.RequestStatus) int {
	n := 0
	for _, r := range requests {
		if r.Status == status {
			n++
		}
	}
	return n
}

func CountCompleted(handoffs []models.Handoff) int {
	n := 0
	for _, h := range handoffs {
		if h.Completed() {
			n++
		}
	}
	return n
}
