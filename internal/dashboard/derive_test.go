package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

const self = "Jeevanline Pharmacy"

func ids(items []models.InventoryItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestOutOfStock_seed(t *testing.T) {
	alerts := OutOfStock(SeedInventory())

	assert.Equal(t, []string{"amoxicillin", "acyclovir", "calamine", "saline", "paracetamol"}, ids(alerts))
	assert.NotContains(t, ids(alerts), "cetirizine")
}

func TestOutOfStock_stableTies(t *testing.T) {
	items := []models.InventoryItem{
		{ID: "b", Stock: 1, MinStock: 5},
		{ID: "a", Stock: 1, MinStock: 5},
		{ID: "c", Stock: 0, MinStock: 0},
		{ID: "ok", Stock: 5, MinStock: 5},
	}
	assert.Equal(t, []string{"c", "b", "a"}, ids(OutOfStock(items)))
}

func TestMostDemand(t *testing.T) {
	top := MostDemand(SeedInventory())

	assert.Equal(t, []string{"cetirizine", "paracetamol", "amoxicillin", "saline", "calamine"}, ids(top))
}

func TestMostDemand_stableTies(t *testing.T) {
	items := []models.InventoryItem{{ID: "x", DemandCount: 3}, {ID: "y", DemandCount: 3}, {ID: "z", DemandCount: 4}}
	assert.Equal(t, []string{"z", "x", "y"}, ids(MostDemand(items)))
}

func TestCanFulfill(t *testing.T) {
	items := SeedInventory()

	assert.True(t, CanFulfill(models.Request{MedicineID: "paracetamol", Qty: 6}, items))
	assert.False(t, CanFulfill(models.Request{MedicineID: "paracetamol", Qty: 7}, items))
	assert.False(t, CanFulfill(models.Request{MedicineID: "amoxicillin", Qty: 1}, items))
	assert.False(t, CanFulfill(models.Request{MedicineID: "insulin", Qty: 1}, items))
}

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		name        string
		req         models.Request
		fulfillable bool
		want        string
	}{
		{"assigned wins over stock", models.Request{AssignedTo: "Seva Medico", DistanceKm: 4.8}, false, "Assigned to Seva Medico"},
		{"assigned wins over distance", models.Request{AssignedTo: "Seva Medico", DistanceKm: 0.2}, true, "Assigned to Seva Medico"},
		{"assigned to self is ignored", models.Request{AssignedTo: self, DistanceKm: 0.2}, true, LabelNearest},
		{"out of stock", models.Request{DistanceKm: 0.5}, false, LabelOutOfStock},
		{"nearest boundary", models.Request{DistanceKm: 1}, true, LabelNearest},
		{"high priority", models.Request{DistanceKm: 2.1}, true, LabelHighPriority},
		{"high priority boundary", models.Request{DistanceKm: 3}, true, LabelHighPriority},
		{"normal", models.Request{DistanceKm: 3.1}, true, LabelNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityLabel(tt.req, tt.fulfillable, self))
		})
	}
}

func TestStockPercent(t *testing.T) {
	assert.Equal(t, 50.0, StockPercent(models.InventoryItem{Stock: 6, MinStock: 12}))
	assert.Equal(t, 100.0, StockPercent(models.InventoryItem{Stock: 28, MinStock: 20}))
	assert.Equal(t, 0.0, StockPercent(models.InventoryItem{Stock: 0, MinStock: 10}))
	assert.Equal(t, 0.0, StockPercent(models.InventoryItem{Stock: 0, MinStock: 0}))
}

func TestTypicalDaily(t *testing.T) {
	assert.Equal(t, 4, TypicalDaily(models.InventoryItem{DemandCount: 128}))
	assert.Equal(t, 7, TypicalDaily(models.InventoryItem{DemandCount: 211}))
	assert.Equal(t, 1, TypicalDaily(models.InventoryItem{DemandCount: 3}))
}

func TestPending_sortedByDistance(t *testing.T) {
	s := Seed(testNow)
	s.Requests[3].Status = models.RequestStatusRejected

	pending := Pending(s.Requests)
	got := make([]string, len(pending))
	for i, r := range pending {
		got[i] = r.ID
	}
	assert.Equal(t, []string{"r3", "r1", "r2"}, got)
}
