package report

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/company"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSaleRepo struct {
	sales []sale.Sale
}

func (s *stubSaleRepo) Create(ctx context.Context, row sale.Sale) (sale.Sale, error) {
	return row, nil
}

func (s *stubSaleRepo) GetByID(ctx context.Context, id string, adminID string) (sale.Sale, error) {
	return sale.Sale{}, sale.ErrSaleNotFound
}

func (s *stubSaleRepo) List(ctx context.Context, filter sale.ListFilter, adminID string) ([]sale.Sale, int64, error) {
	return s.sales, int64(len(s.sales)), nil
}

func (s *stubSaleRepo) ListByStaff(ctx context.Context, staffID string, filter sale.ListFilter) ([]sale.Sale, int64, error) {
	return s.sales, int64(len(s.sales)), nil
}

func (s *stubSaleRepo) ListForReport(ctx context.Context, filter sale.ListFilter, adminID string) ([]sale.Sale, error) {
	return s.sales, nil
}

type stubUserRepo struct{}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{ID: id, Username: "owner"}, nil
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return nil, nil
}
func (s *stubUserRepo) ListStaffByAdmin(ctx context.Context, adminID string) ([]user.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (s *stubUserRepo) SetPasswordResetToken(ctx context.Context, userID string, token string, sentAt time.Time) error {
	return nil
}
func (s *stubUserRepo) GetByPasswordResetToken(ctx context.Context, token string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

type stubCompanyRepo struct {
	profile *company.Company
}

func (s *stubCompanyRepo) Create(ctx context.Context, c company.Company) (company.Company, error) {
	return c, nil
}

func (s *stubCompanyRepo) GetByAdminID(ctx context.Context, adminID string) (company.Company, error) {
	if s.profile == nil {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return *s.profile, nil
}

func (s *stubCompanyRepo) Update(ctx context.Context, c company.Company) error { return nil }

type stubStorage struct {
	saved map[string][]byte
}

func (s *stubStorage) Save(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.saved[path] = data
	return path, nil
}

func (s *stubStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.saved[path])), nil
}

func (s *stubStorage) Delete(ctx context.Context, path string) error { return nil }

func (s *stubStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.saved[path]
	return ok, nil
}

func newExportService(sales []sale.Sale, profile *company.Company) (*ReportServiceImpl, *stubStorage) {
	store := &stubStorage{}
	svc := &ReportServiceImpl{
		saleRepository:    &stubSaleRepo{sales: sales},
		userRepository:    &stubUserRepo{},
		companyRepository: &stubCompanyRepo{profile: profile},
		fileStorage:       store,
		// 12:00 UTC = 17:30 IST.
		now: func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) },
	}
	return svc, store
}

func TestExportSalesCSV(t *testing.T) {
	svc, store := newExportService(testSales(), &company.Company{Name: "Highway Fuels"})

	artifact, err := svc.ExportSales(context.Background(), report.ExportSalesRequest{
		AdminID:     "admin-1",
		GeneratedBy: "admin-1",
		Format:      report.FormatCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sales_Report_RPT-20240101-173000.csv", artifact.Filename)
	assert.Contains(t, string(artifact.Data), "Highway Fuels")
	assert.Contains(t, string(artifact.Data), "owner")

	// A copy lands in the archive under the admin's prefix.
	archived, ok := store.saved["admin-1/"+artifact.Filename]
	require.True(t, ok)
	assert.Equal(t, artifact.Data, archived)
}

func TestExportSalesFallbackIdentity(t *testing.T) {
	svc, _ := newExportService(nil, nil)

	artifact, err := svc.ExportSales(context.Background(), report.ExportSalesRequest{
		AdminID:     "admin-1",
		GeneratedBy: "admin-1",
		Format:      report.FormatHTML,
	})
	require.NoError(t, err)

	assert.Contains(t, string(artifact.Data), "PetroDesk Station")
}

func TestExportSalesUnsupportedFormat(t *testing.T) {
	svc, _ := newExportService(nil, nil)

	_, err := svc.ExportSales(context.Background(), report.ExportSalesRequest{
		AdminID:     "admin-1",
		GeneratedBy: "admin-1",
		Format:      "docx",
	})
	require.Error(t, err)
}

func TestExportSalesXLSXAndPDFRender(t *testing.T) {
	for _, format := range []string{report.FormatXLSX, report.FormatPDF} {
		svc, _ := newExportService(testSales(), &company.Company{Name: "Highway Fuels"})

		artifact, err := svc.ExportSales(context.Background(), report.ExportSalesRequest{
			AdminID:     "admin-1",
			GeneratedBy: "admin-1",
			Format:      format,
		})
		require.NoError(t, err, format)
		assert.NotEmpty(t, artifact.Data, format)
	}
}
