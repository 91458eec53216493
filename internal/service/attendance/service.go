package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/attendance"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/sse"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendanceRepository attendance.AttendanceRepository
	userRepository       user.UserRepository
	hub                  *sse.Hub
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	hub *sse.Hub,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepository: attendanceRepository,
		userRepository:       userRepository,
		hub:                  hub,
	}
}

// validateGeofence rejects check-ins outside the station radius. Staff
// without a configured geofence (admin never set one) pass through.
func (s *AttendanceServiceImpl) validateGeofence(ctx context.Context, staff user.User, lat float64, lng float64) error {
	if staff.AdminID == nil {
		return nil
	}

	admin, err := s.userRepository.GetByID(ctx, *staff.AdminID)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	if !admin.HasGeofence() {
		return nil
	}

	distance := utils.HaversineDistance(lat, lng, *admin.Latitude, *admin.Longitude)
	if distance > float64(*admin.RadiusMeters) {
		return attendance.ErrOutsideAllowedRadius
	}

	return nil
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	staff, err := s.userRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up staff: %w", err)
	}

	if err := s.validateGeofence(ctx, staff, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	switch req.Action {
	case attendance.ActionCheckIn:
		return s.checkIn(ctx, staff, req)
	case attendance.ActionCheckOut:
		return s.checkOut(ctx, staff, req)
	default:
		return attendance.AttendanceResponse{}, attendance.ErrInvalidAction
	}
}

func (s *AttendanceServiceImpl) checkIn(ctx context.Context, staff user.User, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	open, err := s.attendanceRepository.GetOpenSession(ctx, staff.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if open != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	now := time.Now().UTC()
	adminID := staff.ID
	if staff.AdminID != nil {
		adminID = *staff.AdminID
	}

	record := attendance.Attendance{
		StaffID:          staff.ID,
		AdminID:          adminID,
		Date:             time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CheckInAt:        now,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
		Status:           attendance.StatusOpen,
	}
	if req.Notes != "" {
		record.Notes = &req.Notes
	}

	created, err := s.attendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := attendance.ToResponse(created)
	resp.StaffName = &staff.Username

	s.hub.Publish(attendance.TopicAttendance, sse.Event{
		Topic: attendance.TopicAttendance,
		Event: "checkin",
		Data:  resp,
	})

	return resp, nil
}

func (s *AttendanceServiceImpl) checkOut(ctx context.Context, staff user.User, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	open, err := s.attendanceRepository.GetOpenSession(ctx, staff.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if open == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	now := time.Now().UTC()
	worked := int(now.Sub(open.CheckInAt).Minutes())

	open.CheckOutAt = &now
	open.CheckOutLatitude = &req.Latitude
	open.CheckOutLongitude = &req.Longitude
	open.Status = attendance.StatusClosed
	open.WorkedMinutes = &worked

	if err := s.attendanceRepository.Update(ctx, *open); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := attendance.ToResponse(*open)
	resp.StaffName = &staff.Username

	s.hub.Publish(attendance.TopicAttendance, sse.Event{
		Topic: attendance.TopicAttendance,
		Event: "checkout",
		Data:  resp,
	})

	return resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, staffID string, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	filter.Normalize()

	records, total, err := s.attendanceRepository.ListByStaff(ctx, staffID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}

	return attendance.ListAttendanceResponse{
		Records: responses,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, adminID string, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	filter.Normalize()

	records, total, err := s.attendanceRepository.List(ctx, filter, adminID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}

	return attendance.ListAttendanceResponse{
		Records: responses,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// GetOpenSession implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetOpenSession(ctx context.Context, staffID string) (*attendance.AttendanceResponse, error) {
	open, err := s.attendanceRepository.GetOpenSession(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*open)
	return &resp, nil
}

// AutoCloseStale implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AutoCloseStale(ctx context.Context, maxOpenHours int) (int, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(maxOpenHours) * time.Hour)

	stale, err := s.attendanceRepository.ListStaleOpen(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, record := range stale {
		closedAt := record.CheckInAt.Add(time.Duration(maxOpenHours) * time.Hour)
		worked := maxOpenHours * 60

		record.CheckOutAt = &closedAt
		record.Status = attendance.StatusAutoClosed
		record.WorkedMinutes = &worked

		if err := s.attendanceRepository.Update(ctx, record); err != nil {
			return closed, fmt.Errorf("failed to auto-close session %s: %w", record.ID, err)
		}
		closed++
	}

	return closed, nil
}
