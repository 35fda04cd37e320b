package dashboard

import "errors"

// ErrOffline is returned by actions guarded with OnlineOnly while the mode
// flag is set.
var ErrOffline = errors.New("dashboard is offline; actions are disabled")

// Guard vets the current state under the store lock, immediately before the
// action runs. A guard failure leaves state untouched and emits no notice.
type Guard func(s State, self string) error

func OnlineOnly(s State, _ string) error {
	if s.Offline {
		return ErrOffline
	}
	return nil
}

// NotAssignedElsewhere refuses operator decisions on a request another
// pharmacy owns.
func NotAssignedElsewhere(requestID string) Guard {
	return func(s State, self string) error {
		if req, ok := s.Request(requestID); ok && req.AssignedElsewhere(self) {
			return NewFailedPreconditionf("Request is assigned to %s", req.AssignedTo)
		}
		return nil
	}
}
