package report

import (
	"testing"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHTMLContainsIdentityAndSummary(t *testing.T) {
	sales := testSales()
	summary := report.ComputeSummary(sales)

	artifact, err := BuildHTML(testMeta(), sales, summary)
	require.NoError(t, err)

	body := string(artifact.Data)
	assert.Contains(t, body, "Highway Fuels")
	assert.Contains(t, body, "RPT-20240101-133000")
	assert.Contains(t, body, "3449.95")
	assert.Equal(t, "Sales_Report_RPT-20240101-133000.html", artifact.Filename)
	assert.NotContains(t, body, `class="negative"`)
}

func TestBuildHTMLFlagsNegativeRows(t *testing.T) {
	sales := []sale.Sale{{
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Shift:       sale.ShiftMorning,
		NozzleID:    "N1",
		FuelType:    sale.FuelPetrol,
		Quantity:    -3.5,
		PaymentMode: sale.PaymentCash,
	}}

	artifact, err := BuildHTML(testMeta(), sales, report.ComputeSummary(sales))
	require.NoError(t, err)

	assert.Contains(t, string(artifact.Data), `class="negative"`)
}

func TestBuildHTMLEmptyState(t *testing.T) {
	artifact, err := BuildHTML(testMeta(), nil, report.Summary{})
	require.NoError(t, err)

	assert.Contains(t, string(artifact.Data), "No sales recorded for this period")
}
