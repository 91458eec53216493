package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/company"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/storage"
)

// Report ids and timestamps are minted in station time.
var reportLocation = mustLoadLocation("Asia/Kolkata")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

type ReportServiceImpl struct {
	saleRepository    sale.SaleRepository
	userRepository    user.UserRepository
	companyRepository company.CompanyRepository
	fileStorage       storage.FileStorage
	now               func() time.Time
}

func NewReportService(
	saleRepository sale.SaleRepository,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	fileStorage storage.FileStorage,
) report.ReportService {
	return &ReportServiceImpl{
		saleRepository:    saleRepository,
		userRepository:    userRepository,
		companyRepository: companyRepository,
		fileStorage:       fileStorage,
		now:               time.Now,
	}
}

// NewReportID mints a report id from the generation instant, in station
// time. Two exports in the same second share an id on purpose: the id
// identifies the generation moment, not the request.
func NewReportID(at time.Time) string {
	local := at.In(reportLocation)
	return fmt.Sprintf("RPT-%s-%s", local.Format("20060102"), local.Format("150405"))
}

// ExportSales implements report.ReportService.
func (s *ReportServiceImpl) ExportSales(ctx context.Context, req report.ExportSalesRequest) (report.Artifact, error) {
	if err := req.Validate(); err != nil {
		return report.Artifact{}, err
	}

	filter := sale.ListFilter{
		StaffID:  req.StaffID,
		FuelType: req.FuelType,
		Shift:    req.Shift,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}

	sales, err := s.saleRepository.ListForReport(ctx, filter, req.AdminID)
	if err != nil {
		return report.Artifact{}, err
	}

	generatedAt := s.now().In(reportLocation)

	stationName := "PetroDesk Station"
	if profile, err := s.companyRepository.GetByAdminID(ctx, req.AdminID); err == nil {
		stationName = profile.Name
	}

	generatedBy := req.GeneratedBy
	if u, err := s.userRepository.GetByID(ctx, req.GeneratedBy); err == nil {
		generatedBy = u.Username
	}

	meta := report.Meta{
		ReportID:    NewReportID(generatedAt),
		GeneratedAt: generatedAt,
		GeneratedBy: generatedBy,
		StationName: stationName,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
	}

	summary := report.ComputeSummary(sales)

	var artifact report.Artifact
	switch req.Format {
	case report.FormatCSV:
		artifact, err = BuildCSV(meta, sales, summary)
	case report.FormatHTML:
		artifact, err = BuildHTML(meta, sales, summary)
	case report.FormatXLSX:
		artifact, err = BuildXLSX(meta, sales, summary)
	case report.FormatPDF:
		artifact, err = BuildPDF(meta, sales, summary)
	default:
		return report.Artifact{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		return report.Artifact{}, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}

	s.archive(ctx, req.AdminID, artifact)

	return artifact, nil
}

// archive keeps a copy of the artifact for later retrieval. Archival is
// best effort; the export already succeeded.
func (s *ReportServiceImpl) archive(ctx context.Context, adminID string, artifact report.Artifact) {
	if s.fileStorage == nil {
		return
	}

	path := fmt.Sprintf("%s/%s", adminID, artifact.Filename)
	if _, err := s.fileStorage.Save(ctx, bytes.NewReader(artifact.Data), path, artifact.ContentType); err != nil {
		slog.Error("failed to archive report artifact", "error", err, "path", path)
	}
}
