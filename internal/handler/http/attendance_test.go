package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/attendance"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/jwt"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(t *testing.T, method, target string, userID string, role user.Role) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

type stubAttendanceService struct {
	myCalls   []string
	listCalls []string
}

func (s *stubAttendanceService) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}
func (s *stubAttendanceService) GetMyAttendance(ctx context.Context, staffID string, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	s.myCalls = append(s.myCalls, staffID)
	return attendance.ListAttendanceResponse{}, nil
}
func (s *stubAttendanceService) ListAttendance(ctx context.Context, adminID string, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	s.listCalls = append(s.listCalls, adminID)
	return attendance.ListAttendanceResponse{}, nil
}
func (s *stubAttendanceService) GetOpenSession(ctx context.Context, staffID string) (*attendance.AttendanceResponse, error) {
	return nil, nil
}
func (s *stubAttendanceService) AutoCloseStale(ctx context.Context, maxOpenHours int) (int, error) {
	return 0, nil
}

func TestGetAttendanceRoleScoping(t *testing.T) {
	svc := &stubAttendanceService{}
	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	handler := NewAttendanceHandler(svc, jwtService, sse.NewHub())

	rec := httptest.NewRecorder()
	handler.GetAttendance(rec, authedRequest(t, http.MethodGet, "/api/attendance/getattendance", "staff-1", user.RoleStaff))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"staff-1"}, svc.myCalls)
	assert.Empty(t, svc.listCalls)

	rec = httptest.NewRecorder()
	handler.GetAttendance(rec, authedRequest(t, http.MethodGet, "/api/attendance/getattendance", "admin-1", user.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"admin-1"}, svc.listCalls)
}

// A super-admin owns no station, so an attendance query must fail loudly
// instead of returning an empty list scoped to a nonexistent admin ID.
func TestGetAttendanceRejectsSuperAdmin(t *testing.T) {
	svc := &stubAttendanceService{}
	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	handler := NewAttendanceHandler(svc, jwtService, sse.NewHub())

	rec := httptest.NewRecorder()
	handler.GetAttendance(rec, authedRequest(t, http.MethodGet, "/api/attendance/getattendance", "root-1", user.RoleSuperAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, svc.myCalls)
	assert.Empty(t, svc.listCalls)
}

type stubSaleService struct {
	myCalls   []string
	listCalls []string
}

func (s *stubSaleService) CreateSale(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	return sale.SaleResponse{}, nil
}
func (s *stubSaleService) GetMySales(ctx context.Context, staffID string, filter sale.ListFilter) (sale.ListSalesResponse, error) {
	s.myCalls = append(s.myCalls, staffID)
	return sale.ListSalesResponse{}, nil
}
func (s *stubSaleService) ListSales(ctx context.Context, adminID string, filter sale.ListFilter) (sale.ListSalesResponse, error) {
	s.listCalls = append(s.listCalls, adminID)
	return sale.ListSalesResponse{}, nil
}

func TestGetAllSalesRejectsSuperAdmin(t *testing.T) {
	svc := &stubSaleService{}
	handler := NewSaleHandler(svc)

	rec := httptest.NewRecorder()
	handler.GetAll(rec, authedRequest(t, http.MethodGet, "/api/sales/getall", "root-1", user.RoleSuperAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, svc.myCalls)
	assert.Empty(t, svc.listCalls)
}
