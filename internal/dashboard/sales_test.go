package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

func TestSalesByDay(t *testing.T) {
	items := SeedInventory()
	handoffs := []models.Handoff{
		{ID: "a", MedicineName: "Paracetamol 500mg", Qty: 2, CreatedAt: testNow.Add(-time.Hour)},
		{ID: "b", MedicineName: "Calamine Lotion", Qty: 1, CreatedAt: testNow.Add(-3 * 24 * time.Hour)},
		{ID: "c", MedicineName: "Cetirizine 10mg", Qty: 5, CreatedAt: testNow.Add(-8 * 24 * time.Hour)},
		{ID: "d", MedicineName: "Renamed Medicine", Qty: 4, CreatedAt: testNow},
	}

	buckets := SalesByDay(handoffs, items, testNow)
	require.Len(t, buckets, SalesWindowDays)

	assert.Equal(t, "2026-3-12", buckets[0].Key)
	assert.Equal(t, "Thu", buckets[0].Date)
	assert.Equal(t, "2026-3-18", buckets[6].Key)
	assert.Equal(t, "Wed", buckets[6].Date)

	assert.True(t, decimal.RequireFromString("3").Equal(buckets[6].Revenue), buckets[6].Revenue.String())
	assert.True(t, decimal.RequireFromString("3.1").Equal(buckets[3].Revenue), buckets[3].Revenue.String())
	for _, i := range []int{0, 1, 2, 4, 5} {
		assert.True(t, buckets[i].Revenue.IsZero(), buckets[i].Key)
	}

	assert.True(t, decimal.RequireFromString("6.1").Equal(TotalSales(buckets)))
}

func TestSalesByDay_usesCalendarDaysInLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, time.March, 18, 0, 30, 0, 0, loc)
	handoffs := []models.Handoff{
		// 19:05 UTC on the 17th is 00:35 on the 18th in IST.
		{MedicineName: "Paracetamol 500mg", Qty: 1, CreatedAt: time.Date(2026, time.March, 17, 19, 5, 0, 0, time.UTC)},
	}

	buckets := SalesByDay(handoffs, SeedInventory(), now)
	assert.True(t, decimal.RequireFromString("1.5").Equal(buckets[6].Revenue))
	assert.True(t, buckets[5].Revenue.IsZero())
}
