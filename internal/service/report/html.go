package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
)

var htmlTemplate = template.Must(template.New("sales_report").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sales Report {{.Meta.ReportID}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #1f2937; margin: 24px; }
  header { border-bottom: 3px solid #f97316; padding-bottom: 12px; margin-bottom: 16px; }
  header h1 { margin: 0; font-size: 22px; }
  .meta { font-size: 12px; color: #6b7280; margin-bottom: 16px; }
  .cards { display: flex; gap: 16px; margin-bottom: 20px; }
  .card { border: 1px solid #e5e7eb; border-radius: 8px; padding: 12px 20px; }
  .card .label { font-size: 11px; text-transform: uppercase; color: #6b7280; }
  .card .value { font-size: 20px; font-weight: bold; }
  table { width: 100%; border-collapse: collapse; font-size: 12px; }
  th, td { border: 1px solid #e5e7eb; padding: 6px 8px; text-align: right; }
  th { background: #f9fafb; text-transform: uppercase; font-size: 10px; }
  th:first-child, td:first-child,
  th:nth-child(2), td:nth-child(2),
  th:nth-child(3), td:nth-child(3),
  th:nth-child(4), td:nth-child(4) { text-align: left; }
  tr.negative td { background: #fef2f2; color: #b91c1c; }
  .empty { text-align: center; color: #6b7280; padding: 24px; }
  @media print { body { margin: 0; } }
</style>
</head>
<body onload="window.print()">
<header>
  <h1>{{.Meta.StationName}}</h1>
  <div>Sales Report</div>
</header>
<div class="meta">
  Report ID: <strong>{{.Meta.ReportID}}</strong> &middot;
  Generated: {{.Meta.GeneratedAt.Format "02 Jan 2006 15:04:05 MST"}} &middot;
  By: {{.Meta.GeneratedBy}}{{if .Meta.DateFrom}} &middot; Period: {{.Meta.DateFrom}} to {{.Meta.DateTo}}{{end}}
</div>
<div class="cards">
  <div class="card"><div class="label">Total Revenue</div><div class="value">{{money .Summary.TotalRevenue}}</div></div>
  <div class="card"><div class="label">Total Quantity (L)</div><div class="value">{{money .Summary.TotalQuantity}}</div></div>
  <div class="card"><div class="label">Transactions</div><div class="value">{{.Summary.TotalTransactions}}</div></div>
</div>
<table>
  <thead>
    <tr>
      <th>Date</th><th>Shift</th><th>Nozzle</th><th>Fuel</th>
      <th>Opening</th><th>Closing</th><th>Qty</th><th>Rate</th>
      <th>Amount</th><th>Payment</th>
    </tr>
  </thead>
  <tbody>
  {{if not .Sales}}
    <tr><td colspan="10" class="empty">No sales recorded for this period</td></tr>
  {{end}}
  {{range .Sales}}
    <tr{{if lt .Quantity 0.0}} class="negative"{{end}}>
      <td>{{.Date.Format "2006-01-02"}}</td>
      <td>{{.Shift}}</td>
      <td>{{.NozzleID}}</td>
      <td>{{.FuelType}}</td>
      <td>{{money .OpeningReading}}</td>
      <td>{{money .ClosingReading}}</td>
      <td>{{money .Quantity}}{{if lt .Quantity 0.0}} &#9888;{{end}}</td>
      <td>{{money .Rate}}</td>
      <td>{{money .Amount}}</td>
      <td>{{.PaymentMode}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
</body>
</html>
`))

// BuildHTML renders the sales report as a self-contained printable
// document.
func BuildHTML(meta report.Meta, sales []sale.Sale, summary report.Summary) (report.Artifact, error) {
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, struct {
		Meta    report.Meta
		Sales   []sale.Sale
		Summary report.Summary
	}{meta, sales, summary})
	if err != nil {
		return report.Artifact{}, fmt.Errorf("failed to execute report template: %w", err)
	}

	return report.Artifact{
		Filename:    fmt.Sprintf("Sales_Report_%s.html", meta.ReportID),
		ContentType: "text/html; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
