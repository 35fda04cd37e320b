package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

// SeedInventory is the stock list a fresh store starts with.
func SeedInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "paracetamol", Name: "Paracetamol 500mg", Stock: 6, MinStock: 12, DemandCount: 128, UnitPrice: decimal.RequireFromString("1.5")},
		{ID: "amoxicillin", Name: "Amoxicillin 250mg", Stock: 0, MinStock: 10, DemandCount: 96, UnitPrice: decimal.RequireFromString("2.2")},
		{ID: "cetirizine", Name: "Cetirizine 10mg", Stock: 28, MinStock: 20, DemandCount: 211, UnitPrice: decimal.RequireFromString("0.8")},
		{ID: "saline", Name: "Oral Rehydration Salts", Stock: 2, MinStock: 8, DemandCount: 75, UnitPrice: decimal.RequireFromString("0.6")},
		{ID: "calamine", Name: "Calamine Lotion", Stock: 1, MinStock: 6, DemandCount: 59, UnitPrice: decimal.RequireFromString("3.1")},
		{ID: "acyclovir", Name: "Acyclovir 400mg", Stock: 0, MinStock: 8, DemandCount: 43, UnitPrice: decimal.RequireFromString("2.8")},
	}
}

// SeedRequests returns the demo SMS requests, timestamped relative to now.
func SeedRequests(now time.Time) []models.Request {
	return []models.Request{
		{
			ID:           "r1",
			PatientName:  "Sita Devi",
			MedicineID:   "paracetamol",
			MedicineName: "Paracetamol 500mg",
			Qty:          2,
			DistanceKm:   1.2,
			CreatedAt:    now.Add(-10 * time.Minute),
			Status:       models.RequestStatusPending,
			Address:      "Ward 3, Near Panchayat Bhavan",
		},
		{
			ID:                  "r2",
			PatientName:         "Mohit Kumar",
			MedicineID:          "amoxicillin",
			MedicineName:        "Amoxicillin 250mg",
			Qty:                 1,
			DistanceKm:          4.8,
			NearestPharmacyName: "Seva Medico",
			AssignedTo:          "Seva Medico",
			CreatedAt:           now.Add(-25 * time.Minute),
			Status:              models.RequestStatusPending,
			Address:             "Kisan Colony, House 12",
		},
		{
			ID:           "r3",
			PatientName:  "Radha Patel",
			MedicineID:   "cetirizine",
			MedicineName: "Cetirizine 10mg",
			Qty:          1,
			DistanceKm:   0.5,
			CreatedAt:    now.Add(-5 * time.Minute),
			Status:       models.RequestStatusPending,
			Address:      "Maa Mandir Road, Opp. Primary School",
		},
		{
			ID:           "r4",
			PatientName:  "Ramu",
			MedicineID:   "acyclovir",
			MedicineName: "Acyclovir 400mg",
			Qty:          1,
			DistanceKm:   2.1,
			CreatedAt:    now.Add(-40 * time.Minute),
			Status:       models.RequestStatusPending,
			Address:      "Chowk Bazaar, Next to Tea Stall",
		},
	}
}

func SeedHandoffs() []models.Handoff {
	return []models.Handoff{}
}

// Seed builds the full default state.
func Seed(now time.Time) State {
	return State{
		Inventory: SeedInventory(),
		Requests:  SeedRequests(now),
		Handoffs:  SeedHandoffs(),
		Offline:   false,
	}
}
