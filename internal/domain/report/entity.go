package report

import (
	"time"
)

// Export formats the pipeline can render.
const (
	FormatCSV  = "csv"
	FormatHTML = "html"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// Meta describes one generated report. ReportID is minted once per
// export and stamped into every rendered format.
type Meta struct {
	ReportID    string
	GeneratedAt time.Time
	GeneratedBy string
	StationName string
	DateFrom    string
	DateTo      string
}

// Summary holds the aggregate figures shown on every report.
type Summary struct {
	TotalRevenue      float64
	TotalQuantity     float64
	TotalTransactions int
}

// Add folds another summary into this one. Merging per-chunk summaries
// gives the same result as summarizing the whole dataset.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		TotalRevenue:      s.TotalRevenue + other.TotalRevenue,
		TotalQuantity:     s.TotalQuantity + other.TotalQuantity,
		TotalTransactions: s.TotalTransactions + other.TotalTransactions,
	}
}

// Artifact is a fully rendered report ready to stream to the client.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}
