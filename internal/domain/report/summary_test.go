package report

import (
	"testing"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/stretchr/testify/assert"
)

func TestComputeSummaryEmpty(t *testing.T) {
	s := ComputeSummary(nil)

	assert.Equal(t, 0.0, s.TotalRevenue)
	assert.Equal(t, 0.0, s.TotalQuantity)
	assert.Equal(t, 0, s.TotalTransactions)
}

func TestComputeSummarySingleSale(t *testing.T) {
	sales := []sale.Sale{
		{
			NozzleID:       "N1",
			FuelType:       sale.FuelPetrol,
			OpeningReading: 1000,
			ClosingReading: 1025,
			Quantity:       25,
			Rate:           100,
			Amount:         2500,
			PaymentMode:    sale.PaymentCash,
			Date:           time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	s := ComputeSummary(sales)

	assert.Equal(t, 2500.0, s.TotalRevenue)
	assert.Equal(t, 25.0, s.TotalQuantity)
	assert.Equal(t, 1, s.TotalTransactions)
}

func TestComputeSummaryAssociative(t *testing.T) {
	a := []sale.Sale{
		{Quantity: 10, Amount: 1000},
		{Quantity: 15.5, Amount: 1427.5},
	}
	b := []sale.Sale{
		{Quantity: 7.25, Amount: 653.2},
	}

	combined := ComputeSummary(append(append([]sale.Sale{}, a...), b...))
	merged := ComputeSummary(a).Add(ComputeSummary(b))

	assert.InDelta(t, combined.TotalRevenue, merged.TotalRevenue, 1e-9)
	assert.InDelta(t, combined.TotalQuantity, merged.TotalQuantity, 1e-9)
	assert.Equal(t, combined.TotalTransactions, merged.TotalTransactions)
}

func TestSummaryAddZeroIdentity(t *testing.T) {
	s := Summary{TotalRevenue: 42, TotalQuantity: 3.5, TotalTransactions: 2}

	assert.Equal(t, s, s.Add(Summary{}))
	assert.Equal(t, s, Summary{}.Add(s))
}
