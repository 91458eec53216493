package attendance

import (
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
)

// TopicAttendance is the SSE topic dashboards subscribe to for live
// check-in and check-out events.
const TopicAttendance = "attendance"

// Mark actions accepted by the attendance endpoint.
const (
	ActionCheckIn  = "checkin"
	ActionCheckOut = "checkout"
)

type MarkRequest struct {
	StaffID   string  `json:"-"`
	Action    string  `json:"action"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Notes     string  `json:"notes,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != ActionCheckIn && r.Action != ActionCheckOut {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be checkin or checkout",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	StaffID  string `json:"staff_id"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Page     int    `json:"page"`
	PerPage  int    `json:"per_page"`
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
}

type AttendanceResponse struct {
	ID                string     `json:"id"`
	StaffID           string     `json:"staff_id"`
	StaffName         *string    `json:"staff_name,omitempty"`
	Date              string     `json:"date"`
	CheckInAt         time.Time  `json:"check_in_at"`
	CheckOutAt        *time.Time `json:"check_out_at,omitempty"`
	CheckInLatitude   *float64   `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64   `json:"check_in_longitude,omitempty"`
	CheckOutLatitude  *float64   `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64   `json:"check_out_longitude,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	Status            string     `json:"status"`
	WorkedMinutes     *int       `json:"worked_minutes,omitempty"`
}

// StreamTokenResponse carries a short-lived token for the SSE endpoint,
// which cannot send Authorization headers from EventSource.
type StreamTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
}

// ToResponse converts an entity into its API representation.
func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                a.ID,
		StaffID:           a.StaffID,
		StaffName:         a.StaffName,
		Date:              a.Date.Format("2006-01-02"),
		CheckInAt:         a.CheckInAt,
		CheckOutAt:        a.CheckOutAt,
		CheckInLatitude:   a.CheckInLatitude,
		CheckInLongitude:  a.CheckInLongitude,
		CheckOutLatitude:  a.CheckOutLatitude,
		CheckOutLongitude: a.CheckOutLongitude,
		Notes:             a.Notes,
		Status:            a.Status,
		WorkedMinutes:     a.WorkedMinutes,
	}
}
