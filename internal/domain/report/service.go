package report

import (
	"context"
)

// ReportService renders sales reports. Every export mints one report id,
// renders the requested format, and archives a copy of the artifact.
type ReportService interface {
	ExportSales(ctx context.Context, req ExportSalesRequest) (Artifact, error)
}
