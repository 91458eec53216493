package attendance

import (
	"time"
)

// Status of a single attendance record. A record is open from check-in
// until the matching check-out closes it.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
	// StatusAutoClosed marks records closed by the stale-session sweeper
	// rather than an explicit check-out.
	StatusAutoClosed = "auto_closed"
)

type Attendance struct {
	ID                string
	StaffID           string
	AdminID           string
	Date              time.Time
	CheckInAt         time.Time
	CheckOutAt        *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	Notes             *string
	Status            string
	WorkedMinutes     *int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	StaffName *string
}

// IsOpen reports whether the record still awaits a check-out.
func (a Attendance) IsOpen() bool {
	return a.Status == StatusOpen
}
