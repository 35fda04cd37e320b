package dashboard

import "fmt"

// Error message constants for dashboard actions.
const (
	ErrMsgItemIDRequired      = "Medicine ID is required"
	ErrMsgAmountPositive      = "Restock amount must be positive"
	ErrMsgAmountTooLarge      = "Restock amount is too large"
	ErrMsgRequestNotFound     = "Request not found"
	ErrMsgRequestNotPending   = "Request is no longer pending"
	ErrMsgInsufficientStock   = "Insufficient stock"
	ErrMsgHandoffNotFound     = "Handoff not found"
	ErrMsgPatientRequired     = "Patient name is required"
	ErrMsgQuantityPositive    = "Quantity must be positive"
	ErrMsgDistanceNegative    = "Distance cannot be negative"
	ErrMsgMedicineNameMissing = "Medicine name is required for unstocked medicine"
	ErrMsgRequestExists       = "Request already exists"
)

// StatusCode represents the category of an action rejection.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusNotFound
	StatusFailedPrecondition
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when an action is rejected. The state handed back
// alongside it is always the unchanged input state.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

func NewNotFound(message string) *CommandError {
	return &CommandError{Code: StatusNotFound, Message: message}
}

func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: message}
}

func NewFailedPreconditionf(format string, args ...any) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}
