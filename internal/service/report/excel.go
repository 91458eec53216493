package report

import (
	"bytes"
	"fmt"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/xuri/excelize/v2"
)

// BuildXLSX renders the sales report as a spreadsheet with a metadata
// block, summary figures, and one row per sale.
func BuildXLSX(meta report.Meta, sales []sale.Sale, summary report.Summary) (report.Artifact, error) {
	f := excelize.NewFile()
	sheet := "Sales Report"
	f.SetSheetName("Sheet1", sheet)

	setCell := func(col rune, row int, value any) {
		f.SetCellValue(sheet, fmt.Sprintf("%c%d", col, row), value)
	}

	setCell('A', 1, meta.StationName)
	setCell('A', 2, "Report ID")
	setCell('B', 2, meta.ReportID)
	setCell('A', 3, "Generated")
	setCell('B', 3, meta.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	setCell('A', 4, "Generated By")
	setCell('B', 4, meta.GeneratedBy)
	if meta.DateFrom != "" || meta.DateTo != "" {
		setCell('A', 5, "Period")
		setCell('B', 5, meta.DateFrom+" to "+meta.DateTo)
	}

	setCell('A', 6, "Total Revenue")
	setCell('B', 6, summary.TotalRevenue)
	setCell('C', 6, "Total Quantity")
	setCell('D', 6, summary.TotalQuantity)
	setCell('E', 6, "Transactions")
	setCell('F', 6, summary.TotalTransactions)

	headers := []string{"Date", "Shift", "Nozzle", "Fuel Type", "Opening", "Closing", "Quantity", "Rate", "Amount", "Payment Mode", "Staff", "Flag"}
	headerRow := 8
	for i, header := range headers {
		setCell(rune('A'+i), headerRow, header)
	}

	rowNum := headerRow + 1
	for _, row := range sales {
		staffName := ""
		if row.StaffName != nil {
			staffName = *row.StaffName
		}
		flag := ""
		if row.Quantity < 0 {
			flag = "NEGATIVE QUANTITY"
		}

		setCell('A', rowNum, row.Date.Format("2006-01-02"))
		setCell('B', rowNum, row.Shift)
		setCell('C', rowNum, row.NozzleID)
		setCell('D', rowNum, row.FuelType)
		setCell('E', rowNum, row.OpeningReading)
		setCell('F', rowNum, row.ClosingReading)
		setCell('G', rowNum, row.Quantity)
		setCell('H', rowNum, row.Rate)
		setCell('I', rowNum, row.Amount)
		setCell('J', rowNum, row.PaymentMode)
		setCell('K', rowNum, staffName)
		setCell('L', rowNum, flag)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return report.Artifact{
		Filename:    fmt.Sprintf("Sales_Report_%s.xlsx", meta.ReportID),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}
