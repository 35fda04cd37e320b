package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

type StockAlert struct {
	models.InventoryItem
	Badge   string  `json:"badge"`
	Percent float64 `json:"percent"`
}

type DemandEntry struct {
	models.InventoryItem
	TypicalDaily int `json:"typicalDaily"`
}

// QueuedRequest is a pending request annotated for the operator.
type QueuedRequest struct {
	models.Request
	Priority    string `json:"priority"`
	Fulfillable bool   `json:"fulfillable"`
	CanAccept   bool   `json:"canAccept"`
	CanReject   bool   `json:"canReject"`
}

type Stats struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	PendingRequests int             `json:"pendingRequests"`
	Accepted        int             `json:"accepted"`
	HandedOff       int             `json:"handedOff"`
}

type Seasonal struct {
	Season          Season           `json:"season"`
	Recommendations []Recommendation `json:"recommendations"`
}

// View is everything the dashboard page renders, derived from one State.
type View struct {
	Offline    bool             `json:"offline"`
	OutOfStock []StockAlert     `json:"outOfStock"`
	MostDemand []DemandEntry    `json:"mostDemand"`
	Seasonal   Seasonal         `json:"seasonal"`
	Requests   []QueuedRequest  `json:"requests"`
	Handoffs   []models.Handoff `json:"handoffs"`
	Sales      []SalesBucket    `json:"sales"`
	Stats      Stats            `json:"stats"`
}

func StockAlerts(items []models.InventoryItem) []StockAlert {
	low := OutOfStock(items)
	alerts := make([]StockAlert, len(low))
	for i, item := range low {
		badge := "Low"
		if item.OutOfStock() {
			badge = "Out"
		}
		alerts[i] = StockAlert{InventoryItem: item, Badge: badge, Percent: StockPercent(item)}
	}
	return alerts
}

func DemandRanking(items []models.InventoryItem) []DemandEntry {
	top := MostDemand(items)
	entries := make([]DemandEntry, len(top))
	for i, item := range top {
		entries[i] = DemandEntry{InventoryItem: item, TypicalDaily: TypicalDaily(item)}
	}
	return entries
}

// Queue annotates pending requests with priority and which buttons are live.
func Queue(s State, self string) []QueuedRequest {
	pending := Pending(s.Requests)
	queue := make([]QueuedRequest, len(pending))
	for i, r := range pending {
		fulfillable := CanFulfill(r, s.Inventory)
		locked := s.Offline || r.AssignedElsewhere(self)
		queue[i] = QueuedRequest{
			Request:     r,
			Priority:    PriorityLabel(r, fulfillable, self),
			Fulfillable: fulfillable,
			CanAccept:   !locked && fulfillable,
			CanReject:   !locked,
		}
	}
	return queue
}

func SeasonalFor(now time.Time) Seasonal {
	season := SeasonOf(now)
	return Seasonal{Season: season, Recommendations: Recommendations(season)}
}

// BuildView derives the whole dashboard. self is this pharmacy's name.
func BuildView(s State, now time.Time, self string) View {
	sales := SalesByDay(s.Handoffs, s.Inventory, now)
	return View{
		Offline:    s.Offline,
		OutOfStock: StockAlerts(s.Inventory),
		MostDemand: DemandRanking(s.Inventory),
		Seasonal:   SeasonalFor(now),
		Requests:   Queue(s, self),
		Handoffs:   ReadyHandoffs(s.Handoffs),
		Sales:      sales,
		Stats: Stats{
			TotalRevenue:    TotalSales(sales),
			PendingRequests: CountByStatus(s.Requests, models.RequestStatusPending),
			Accepted:        CountByStatus(s.Requests, models.RequestStatusAccepted),
			HandedOff:       CountCompleted(s.Handoffs),
		},
	}
}
