package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
)

// BuildPDF renders the sales report as an A4 portrait document.
func BuildPDF(meta report.Meta, sales []sale.Sale, summary report.Summary) (report.Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, meta.StationName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Sales Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 5, fmt.Sprintf("Report ID: %s", meta.ReportID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated: %s by %s", meta.GeneratedAt.Format("02 Jan 2006 15:04:05 MST"), meta.GeneratedBy), "", 1, "L", false, 0, "")
	if meta.DateFrom != "" || meta.DateTo != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Period: %s to %s", meta.DateFrom, meta.DateTo), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(31, 41, 55)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(63, 7, fmt.Sprintf("Revenue: %.2f", summary.TotalRevenue), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 7, fmt.Sprintf("Quantity: %.2f L", summary.TotalQuantity), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 7, fmt.Sprintf("Transactions: %d", summary.TotalTransactions), "1", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Date", "Shift", "Nozzle", "Fuel", "Opening", "Closing", "Qty", "Rate", "Amount", "Payment"}
	widths := []float64{20, 16, 14, 18, 20, 20, 18, 16, 22, 25}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(249, 250, 251)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	if len(sales) == 0 {
		pdf.CellFormat(189, 8, "No sales recorded for this period", "1", 1, "C", false, 0, "")
	}
	for _, row := range sales {
		if row.Quantity < 0 {
			pdf.SetTextColor(185, 28, 28)
		}
		cells := []string{
			row.Date.Format("2006-01-02"),
			row.Shift,
			row.NozzleID,
			row.FuelType,
			fmt.Sprintf("%.2f", row.OpeningReading),
			fmt.Sprintf("%.2f", row.ClosingReading),
			fmt.Sprintf("%.2f", row.Quantity),
			fmt.Sprintf("%.2f", row.Rate),
			fmt.Sprintf("%.2f", row.Amount),
			row.PaymentMode,
		}
		for i, c := range cells {
			align := "R"
			if i < 4 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		if row.Quantity < 0 {
			pdf.SetTextColor(31, 41, 55)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to write pdf: %w", err)
	}

	return report.Artifact{
		Filename:    fmt.Sprintf("Sales_Report_%s.pdf", meta.ReportID),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}
