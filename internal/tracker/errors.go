package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrTransitionInFlight is returned when a check-in or check-out is
	// attempted while a previous request is still pending.
	ErrTransitionInFlight = errors.New("a check-in or check-out is already in progress")

	// ErrAlreadyOnDuty is returned by CheckIn while a session is open.
	ErrAlreadyOnDuty = errors.New("already checked in")

	// ErrNotOnDuty is returned by CheckOut with no open session.
	ErrNotOnDuty = errors.New("not checked in")
)

// LocationError wraps a geolocation acquisition failure. The transition is
// aborted before any network call is made.
type LocationError struct {
	Err error
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("failed to acquire location: %v", e.Err)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// RequestError wraps a non-2xx response from the attendance API.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("attendance request failed: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("attendance request failed with status %d", e.StatusCode)
}
