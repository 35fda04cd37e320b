package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MosaabBleik/pharmacy-service/internal/models"
)

const DefaultRestockAmount = 10

var newRequestID = uuid.NewString

// Restock adds amount units to the item. An unknown item is a no-op that
// still produces a notice.
func Restock(s State, itemID string, amount int) (State, Notice, error) {
	if itemID == "" {
		return s, notice("Inventory unchanged", ErrMsgItemIDRequired), NewInvalidArgument(ErrMsgItemIDRequired)
	}
	if amount <= 0 {
		return s, notice("Inventory unchanged", ErrMsgAmountPositive), NewInvalidArgument(ErrMsgAmountPositive)
	}
	idx := s.itemIndex(itemID)
	if idx < 0 {
		return s, notice("Inventory unchanged", fmt.Sprintf("No medicine with id %q.", itemID)), nil
	}
	if amount > math.MaxInt-max(0, s.Inventory[idx].Stock) {
		return s, notice("Inventory unchanged", ErrMsgAmountTooLarge), NewInvalidArgument(ErrMsgAmountTooLarge)
	}

	next := s.Clone()
	next.Inventory[idx].Stock += amount
	return next, notice("Inventory updated", fmt.Sprintf("Added +%d units.", amount)), nil
}

// AcceptRequest takes stock for a pending request and queues it for handoff.
// The inventory decrement, the new handoff and the status change land in the
// returned state together, or not at all.
func AcceptRequest(s State, requestID string, now time.Time) (State, Notice, error) {
	ri := s.requestIndex(requestID)
	if ri < 0 {
		return s, notice(ErrMsgRequestNotFound, requestID), NewNotFound(ErrMsgRequestNotFound)
	}
	req := s.Requests[ri]
	if req.Status != models.RequestStatusPending {
		return s, notice(ErrMsgRequestNotPending, fmt.Sprintf("%s is %s.", req.ID, req.Status)),
			NewFailedPreconditionf("%s: %s", ErrMsgRequestNotPending, req.Status)
	}
	if !CanFulfill(req, s.Inventory) {
		return s, notice(ErrMsgInsufficientStock, fmt.Sprintf("Cannot fulfill %s.", req.MedicineName)),
			NewFailedPreconditionf("%s for %s", ErrMsgInsufficientStock, req.MedicineName)
	}

	next := s.Clone()
	ii := next.itemIndex(req.MedicineID)
	next.Inventory[ii].Stock = max(0, next.Inventory[ii].Stock-req.Qty)

	order := models.Handoff{
		ID:           req.ID,
		PatientName:  req.PatientName,
		Address:      req.Address,
		MedicineName: req.MedicineName,
		Qty:          req.Qty,
		CreatedAt:    now,
	}
	next.Handoffs = append([]models.Handoff{order}, next.Handoffs...)
	next.Requests[ri].Status = models.RequestStatusAccepted

	return next, notice("Request accepted", fmt.Sprintf("%s · %s", req.PatientName, req.MedicineName)), nil
}

// RejectRequest declines a pending request. Inventory and handoffs are untouched.
func RejectRequest(s State, requestID string) (State, Notice, error) {
	ri := s.requestIndex(requestID)
	if ri < 0 {
		return s, notice(ErrMsgRequestNotFound, requestID), NewNotFound(ErrMsgRequestNotFound)
	}
	req := s.Requests[ri]
	if req.Status != models.RequestStatusPending {
		return s, notice(ErrMsgRequestNotPending, fmt.Sprintf("%s is %s.", req.ID, req.Status)),
			NewFailedPreconditionf("%s: %s", ErrMsgRequestNotPending, req.Status)
	}

	next := s.Clone()
	next.Requests[ri].Status = models.RequestStatusRejected
	return next, notice("Request rejected", ""), nil
}

// CompleteHandoff stamps the handoff as given to the CHW. Completing an
// already completed handoff keeps the first timestamp and changes nothing.
func CompleteHandoff(s State, requestID string, now time.Time) (State, Notice, error) {
	hi := s.handoffIndex(requestID)
	if hi < 0 {
		return s, notice(ErrMsgHandoffNotFound, requestID), NewNotFound(ErrMsgHandoffNotFound)
	}
	if s.Handoffs[hi].Completed() {
		return s, notice("Handoff already completed", s.Handoffs[hi].HandedOffAt.Format(time.RFC3339)), nil
	}

	next := s.Clone()
	at := now
	next.Handoffs[hi].HandedOffAt = &at
	if ri := next.requestIndex(requestID); ri >= 0 {
		next.Requests[ri].Status = models.RequestStatusHandedOff
	}
	return next, notice("Handoff completed", "Medicine given to CHW partner."), nil
}

// SetOffline flips the mode flag that the HTTP layer uses to lock actions.
func SetOffline(s State, offline bool) (State, Notice, error) {
	next := s.Clone()
	next.Offline = offline
	if offline {
		return next, notice("Offline", "Actions are disabled until back online."), nil
	}
	return next, notice("Online", "Actions are enabled."), nil
}

// IngestRequest appends a request arriving from the SMS gateway. Incoming
// requests always start pending.
func IngestRequest(s State, req models.Request, now time.Time) (State, Notice, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.PatientName = strings.TrimSpace(req.PatientName)
	req.MedicineID = strings.TrimSpace(req.MedicineID)

	if req.PatientName == "" {
		return s, notice("Request ignored", ErrMsgPatientRequired), NewInvalidArgument(ErrMsgPatientRequired)
	}
	if req.MedicineID == "" {
		return s, notice("Request ignored", ErrMsgItemIDRequired), NewInvalidArgument(ErrMsgItemIDRequired)
	}
	if req.Qty <= 0 {
		return s, notice("Request ignored", ErrMsgQuantityPositive), NewInvalidArgument(ErrMsgQuantityPositive)
	}
	if req.DistanceKm < 0 {
		return s, notice("Request ignored", ErrMsgDistanceNegative), NewInvalidArgument(ErrMsgDistanceNegative)
	}
	if req.MedicineName == "" {
		item, ok := s.Item(req.MedicineID)
		if !ok {
			return s, notice("Request ignored", ErrMsgMedicineNameMissing), NewInvalidArgument(ErrMsgMedicineNameMissing)
		}
		req.MedicineName = item.Name
	}
	if req.ID == "" {
		req.ID = newRequestID()
	}
	if s.requestIndex(req.ID) >= 0 {
		return s, notice("Request ignored", ErrMsgRequestExists), NewFailedPreconditionf("%s: %s", ErrMsgRequestExists, req.ID)
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.Status = models.RequestStatusPending

	next := s.Clone()
	next.Requests = append(next.Requests, req)
	return next, notice("New SMS request", fmt.Sprintf("%s · %s", req.PatientName, req.MedicineName)), nil
}
