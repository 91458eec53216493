package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn     = errors.New("you have already checked in")
	ErrNotCheckedIn         = errors.New("you have not checked in yet")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed station radius")
	ErrInvalidAction        = errors.New("action must be checkin or checkout")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
