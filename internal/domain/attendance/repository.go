package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All read methods scope by adminID so one station's staff can never see
// another station's records.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string, adminID string) (Attendance, error)

	// GetOpenSession returns the staff member's current open record.
	// Used both to prevent double check-in and to close the session.
	GetOpenSession(ctx context.Context, staffID string) (*Attendance, error)

	Update(ctx context.Context, attendance Attendance) error

	List(ctx context.Context, filter ListFilter, adminID string) ([]Attendance, int64, error)

	ListByStaff(ctx context.Context, staffID string, filter ListFilter) ([]Attendance, int64, error)

	// ListStaleOpen returns open records whose check-in is older than the
	// cutoff. Consumed by the auto-close sweeper.
	ListStaleOpen(ctx context.Context, cutoff time.Time) ([]Attendance, error)
}
