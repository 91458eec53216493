package sale

import (
	"context"
)

// SaleService defines business logic for fuel sale entry and listing.
type SaleService interface {
	// CreateSale records a sale. Quantity and amount are derived from the
	// nozzle readings and price, never taken from the client.
	CreateSale(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)

	// GetMySales retrieves sales entered by the authenticated staff member.
	GetMySales(ctx context.Context, staffID string, filter ListFilter) (ListSalesResponse, error)

	// ListSales retrieves sales across all staff of an admin.
	ListSales(ctx context.Context, adminID string, filter ListFilter) (ListSalesResponse, error)
}
