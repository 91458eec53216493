package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/attendance"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	att.ID = "att-" + string(rune('0'+f.nextID))
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string, adminID string) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, staffID string) (*attendance.Attendance, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].StaffID == staffID && f.records[i].Status == attendance.StatusOpen {
			r := f.records[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	for i, r := range f.records {
		if r.ID == att.ID {
			f.records[i] = att
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter, adminID string) ([]attendance.Attendance, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeAttendanceRepo) ListByStaff(ctx context.Context, staffID string, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.StaffID == staffID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListStaleOpen(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.Status == attendance.StatusOpen && r.CheckInAt.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) ListStaffByAdmin(ctx context.Context, adminID string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (f *fakeUserRepo) SetPasswordResetToken(ctx context.Context, userID string, token string, sentAt time.Time) error {
	return nil
}
func (f *fakeUserRepo) GetByPasswordResetToken(ctx context.Context, token string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

// Station at Bangalore city center with a 200m radius.
func testUsers() map[string]user.User {
	adminID := "admin-1"
	lat, lng := 12.9716, 77.5946
	radius := 200
	return map[string]user.User{
		"admin-1": {ID: "admin-1", Username: "owner", Role: user.RoleAdmin, Latitude: &lat, Longitude: &lng, RadiusMeters: &radius},
		"staff-1": {ID: "staff-1", Username: "ravi", Role: user.RoleStaff, AdminID: &adminID},
	}
}

func newTestService() (attendance.AttendanceService, *fakeAttendanceRepo, *sse.Hub) {
	repo := &fakeAttendanceRepo{}
	hub := sse.NewHub()
	svc := NewAttendanceService(repo, &fakeUserRepo{users: testUsers()}, hub)
	return svc, repo, hub
}

func checkInReq() attendance.MarkRequest {
	return attendance.MarkRequest{
		StaffID:   "staff-1",
		Action:    attendance.ActionCheckIn,
		Latitude:  12.9717,
		Longitude: 77.5947,
		Notes:     "Morning shift",
	}
}

func TestMarkCheckIn(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.Mark(context.Background(), checkInReq())
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusOpen, resp.Status)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "Morning shift", *resp.Notes)
	assert.Equal(t, "admin-1", repo.records[0].AdminID)
}

func TestMarkDoubleCheckInRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Mark(context.Background(), checkInReq())
	require.NoError(t, err)

	_, err = svc.Mark(context.Background(), checkInReq())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestMarkCheckOutWithoutOpenSession(t *testing.T) {
	svc, _, _ := newTestService()

	req := checkInReq()
	req.Action = attendance.ActionCheckOut

	_, err := svc.Mark(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestMarkCheckOutClosesSession(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Mark(context.Background(), checkInReq())
	require.NoError(t, err)

	req := checkInReq()
	req.Action = attendance.ActionCheckOut

	resp, err := svc.Mark(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusClosed, resp.Status)
	assert.NotNil(t, resp.CheckOutAt)
	assert.NotNil(t, resp.WorkedMinutes)
	assert.Equal(t, attendance.StatusClosed, repo.records[0].Status)
}

func TestMarkOutsideGeofenceRejected(t *testing.T) {
	svc, repo, _ := newTestService()

	req := checkInReq()
	// ~15km away from the station.
	req.Latitude = 13.1
	req.Longitude = 77.6

	_, err := svc.Mark(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)
	assert.Empty(t, repo.records)
}

func TestMarkPublishesEvent(t *testing.T) {
	svc, _, hub := newTestService()

	events, cleanup := hub.Subscribe(attendance.TopicAttendance)
	defer cleanup()

	_, err := svc.Mark(context.Background(), checkInReq())
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, "checkin", event.Event)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestAutoCloseStale(t *testing.T) {
	svc, repo, _ := newTestService()

	old := time.Now().UTC().Add(-20 * time.Hour)
	repo.records = append(repo.records, attendance.Attendance{
		ID:        "att-old",
		StaffID:   "staff-1",
		AdminID:   "admin-1",
		CheckInAt: old,
		Status:    attendance.StatusOpen,
	})

	closed, err := svc.AutoCloseStale(context.Background(), 16)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	record := repo.records[0]
	assert.Equal(t, attendance.StatusAutoClosed, record.Status)
	require.NotNil(t, record.CheckOutAt)
	assert.Equal(t, old.Add(16*time.Hour), *record.CheckOutAt)
	require.NotNil(t, record.WorkedMinutes)
	assert.Equal(t, 16*60, *record.WorkedMinutes)
}
