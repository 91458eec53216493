package report

import (
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
)

// ComputeSummary aggregates a slice of sales. It is a pure fold:
// ComputeSummary(a).Add(ComputeSummary(b)) equals ComputeSummary(a+b)
// for any split of the dataset.
func ComputeSummary(sales []sale.Sale) Summary {
	var s Summary
	for _, row := range sales {
		s.TotalRevenue += row.Amount
		s.TotalQuantity += row.Quantity
		s.TotalTransactions++
	}
	return s
}
