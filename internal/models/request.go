package models

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusHandedOff RequestStatus = "handedoff"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected, RequestStatusHandedOff:
		return true
	}
	return false
}

// Request is a medicine request received through an SMS gateway.
type Request struct {
	ID                  string        `json:"id"`
	PatientName         string        `json:"patientName"`
	MedicineID          string        `json:"medicineId"`
	MedicineName        string        `json:"medicineName"`
	Qty                 int           `json:"qty"`
	DistanceKm          float64       `json:"distanceKm"`
	NearestPharmacyName string        `json:"nearestPharmacyName,omitempty"`
	AssignedTo          string        `json:"assignedTo,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	Status              RequestStatus `json:"status"`
	Address             string        `json:"address"`
}

// AssignedElsewhere is true when another pharmacy already took the request.
func (r Request) AssignedElsewhere(self string) bool {
	return r.AssignedTo != "" && r.AssignedTo != self
}
