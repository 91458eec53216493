package sale

import (
	"context"
	"testing"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleRepo struct {
	created []sale.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	s.ID = "sale-1"
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id string, adminID string) (sale.Sale, error) {
	return sale.Sale{}, sale.ErrSaleNotFound
}

func (f *fakeSaleRepo) List(ctx context.Context, filter sale.ListFilter, adminID string) ([]sale.Sale, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeSaleRepo) ListByStaff(ctx context.Context, staffID string, filter sale.ListFilter) ([]sale.Sale, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeSaleRepo) ListForReport(ctx context.Context, filter sale.ListFilter, adminID string) ([]sale.Sale, error) {
	return f.created, nil
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

func newTestService() (sale.SaleService, *fakeSaleRepo) {
	adminID := "admin-1"
	saleRepo := &fakeSaleRepo{}
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"staff-1": {ID: "staff-1", Username: "ravi", Role: user.RoleStaff, AdminID: &adminID},
	}}
	return NewSaleService(saleRepo, userRepo), saleRepo
}

func validRequest() sale.CreateSaleRequest {
	return sale.CreateSaleRequest{
		StaffID:        "staff-1",
		Date:           "2024-01-01",
		Shift:          sale.ShiftMorning,
		FuelType:       sale.FuelPetrol,
		NozzleID:       "N1",
		OpeningReading: 1000,
		ClosingReading: 1025.25,
		Rate:           100,
		PaymentMode:    sale.PaymentCash,
	}
}

func TestCreateSaleDerivesQuantityAndAmount(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 25.25, resp.Quantity)
	assert.Equal(t, 2525.0, resp.Amount)
	assert.Equal(t, sale.ShiftMorning, resp.Shift)
	assert.Equal(t, "admin-1", repo.created[0].AdminID)
	require.NotNil(t, resp.StaffName)
	assert.Equal(t, "ravi", *resp.StaffName)
}

func TestCreateSaleIgnoresClientAmounts(t *testing.T) {
	svc, repo := newTestService()

	// Quantity and amount never come from the request body; only the
	// readings and rate matter.
	req := validRequest()
	req.OpeningReading = 500
	req.ClosingReading = 500

	resp, err := svc.CreateSale(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Quantity)
	assert.Equal(t, 0.0, resp.Amount)
	assert.Equal(t, 0.0, repo.created[0].Quantity)
}

func TestCreateSaleRejectsReversedReadings(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.OpeningReading = 1025
	req.ClosingReading = 1000

	_, err := svc.CreateSale(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestCreateSaleRejectsUnknownFuel(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.FuelType = "Kerosene"

	_, err := svc.CreateSale(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestCreateSaleRejectsMalformedDate(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.Date = "01-01-2024"

	_, err := svc.CreateSale(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func timeAtStationHour(hour int) time.Time {
	return time.Date(2024, 1, 1, hour, 0, 0, 0, stationLocation)
}

func TestBucketShift(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, sale.ShiftMorning},
		{12, sale.ShiftMorning},
		{13, sale.ShiftEvening},
		{20, sale.ShiftEvening},
		{21, sale.ShiftNight},
		{2, sale.ShiftNight},
	}

	for _, tt := range tests {
		at := timeAtStationHour(tt.hour)
		assert.Equal(t, tt.want, bucketShift(at), "hour %d", tt.hour)
	}
}
