package models

import (
	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	DemandCount int             `json:"demandCount"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OutOfStock reports a zero or negative count, as opposed to merely running low.
func (i InventoryItem) OutOfStock() bool {
	return i.Stock <= 0
}

func (i InventoryItem) BelowMinimum() bool {
	return i.Stock <= 0 || i.Stock < i.MinStock
}
