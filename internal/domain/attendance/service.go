package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// Mark processes a checkin or checkout action for the authenticated
	// staff member, validating the geofence before touching any record.
	Mark(ctx context.Context, req MarkRequest) (AttendanceResponse, error)

	// GetMyAttendance retrieves records for the authenticated staff member.
	GetMyAttendance(ctx context.Context, staffID string, filter ListFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records across all staff of an admin.
	ListAttendance(ctx context.Context, adminID string, filter ListFilter) (ListAttendanceResponse, error)

	// GetOpenSession returns the staff member's open record, or nil when
	// off duty. The tracker client resumes its state from this.
	GetOpenSession(ctx context.Context, staffID string) (*AttendanceResponse, error)

	// AutoCloseStale closes open sessions older than maxOpenHours and
	// returns how many were closed.
	AutoCloseStale(ctx context.Context, maxOpenHours int) (int, error)
}
