package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

const SalesWindowDays = 7

type SalesBucket struct {
	Key     string          `json:"key"`
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesByDay buckets handoff revenue into the seven calendar days ending on
// now's day, in now's location. Prices are matched by medicine display name,
// so a handoff whose name no longer matches any item earns nothing.
func SalesByDay(handoffs []models.Handoff, items []models.InventoryItem, now time.Time) []SalesBucket {
	prices := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		if _, seen := prices[item.Name]; !seen {
			prices[item.Name] = item.UnitPrice
		}
	}

	loc := now.Location()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	buckets := make([]SalesBucket, SalesWindowDays)
	for idx := range buckets {
		day := today.AddDate(0, 0, idx-(SalesWindowDays-1))
		revenue := decimal.Zero
		for _, h := range handoffs {
			if !sameDay(h.CreatedAt.In(loc), day) {
				continue
			}
			if price, ok := prices[h.MedicineName]; ok {
				revenue = revenue.Add(price.Mul(decimal.NewFromInt(int64(h.Qty))))
			}
		}
		buckets[idx] = SalesBucket{
			Key:     fmt.Sprintf("%d-%d-%d", day.Year(), int(day.Month()), day.Day()),
			Date:    day.Weekday().String()[:3],
			Revenue: revenue,
		}
	}
	return buckets
}

func TotalSales(buckets []SalesBucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Revenue)
	}
	return total
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
