package models

import (
	"time"
)

// Handoff shares its ID with the request it was created from.
type Handoff struct {
	ID           string     `json:"id"`
	PatientName  string     `json:"patientName"`
	Address      string     `json:"address"`
	MedicineName string     `json:"medicineName"`
	Qty          int        `json:"qty"`
	CreatedAt    time.Time  `json:"createdAt"`
	HandedOffAt  *time.Time `json:"handedOffAt,omitempty"`
}

func (h Handoff) Completed() bool {
	return h.HandedOffAt != nil
}
