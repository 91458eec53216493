package sale

import (
	"context"
)

// SaleRepository defines data access methods for sale records. Reads are
// scoped by adminID so stations never see each other's figures.
type SaleRepository interface {
	Create(ctx context.Context, sale Sale) (Sale, error)

	GetByID(ctx context.Context, id string, adminID string) (Sale, error)

	List(ctx context.Context, filter ListFilter, adminID string) ([]Sale, int64, error)

	ListByStaff(ctx context.Context, staffID string, filter ListFilter) ([]Sale, int64, error)

	// ListForReport returns all sales matching the filter without
	// pagination, ordered by date then created_at. The export pipeline
	// consumes this.
	ListForReport(ctx context.Context, filter ListFilter, adminID string) ([]Sale, error)
}
