package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/middleware"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportSales(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ExportSales implements ReportHandler. Streams the rendered report as a
// file download instead of the usual JSON envelope.
func (h *ReportHandlerImpl) ExportSales(w http.ResponseWriter, r *http.Request) {
	req := report.ExportSalesRequest{
		AdminID:     middleware.UserID(r),
		GeneratedBy: middleware.UserID(r),
		Format:      r.URL.Query().Get("format"),
		StaffID:     r.URL.Query().Get("staff_id"),
		FuelType:    r.URL.Query().Get("fuel_type"),
		Shift:       r.URL.Query().Get("shift"),
		DateFrom:    r.URL.Query().Get("date_from"),
		DateTo:      r.URL.Query().Get("date_to"),
	}
	if req.Format == "" {
		req.Format = report.FormatCSV
	}

	artifact, err := h.reportService.ExportSales(r.Context(), req)
	if err != nil {
		slog.Error("ExportSales service error", "error", err, "admin_id", req.AdminID, "format", req.Format)
		response.HandleError(w, err)
		return
	}

	slog.Info("Sales report exported", "admin_id", req.AdminID, "format", req.Format, "filename", artifact.Filename)

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Data)
}
