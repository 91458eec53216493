package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
)

// utf8BOM keeps Excel from misreading the file as Latin-1.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"Date", "Shift", "Nozzle", "Fuel Type", "Opening", "Closing",
	"Quantity", "Rate", "Amount", "Payment Mode", "Staff", "Flag",
}

// quoteField wraps every field in double quotes, doubling embedded
// quotes. encoding/csv only quotes when it must; the export format quotes
// unconditionally.
func quoteField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(quoteField(f))
	}
	buf.WriteString("\r\n")
}

func csvRow(row sale.Sale) []string {
	staffName := ""
	if row.StaffName != nil {
		staffName = *row.StaffName
	}

	flag := ""
	if row.Quantity < 0 {
		flag = "NEGATIVE QUANTITY"
	}

	return []string{
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
		staffName,
		flag,
	}
}

// BuildCSV renders the sales report as CSV: UTF-8 BOM, a metadata
// preamble, the header row, then one all-quoted row per sale.
func BuildCSV(meta report.Meta, sales []sale.Sale, summary report.Summary) (report.Artifact, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writeRow(&buf, []string{"Company", meta.StationName})
	writeRow(&buf, []string{"Report ID", meta.ReportID})
	writeRow(&buf, []string{"Generated", meta.GeneratedAt.Format("2006-01-02 15:04:05 MST")})
	writeRow(&buf, []string{"Generated By", meta.GeneratedBy})
	if meta.DateFrom != "" || meta.DateTo != "" {
		writeRow(&buf, []string{"Period", meta.DateFrom + " to " + meta.DateTo})
	}
	writeRow(&buf, []string{
		"Summary",
		fmt.Sprintf("Revenue %.2f", summary.TotalRevenue),
		fmt.Sprintf("Quantity %.2f", summary.TotalQuantity),
		fmt.Sprintf("Transactions %d", summary.TotalTransactions),
	})
	buf.WriteString("\r\n")

	writeRow(&buf, csvHeader)
	for _, row := range sales {
		writeRow(&buf, csvRow(row))
	}

	return report.Artifact{
		Filename:    fmt.Sprintf("Sales_Report_%s.csv", meta.ReportID),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
