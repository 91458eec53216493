package stock

import (
	"context"
)

// StockRepository defines data access for daily stock movements.
type StockRepository interface {
	Create(ctx context.Context, stock Stock) (Stock, error)

	GetByID(ctx context.Context, id string, adminID string) (Stock, error)

	List(ctx context.Context, filter ListFilter, adminID string) ([]Stock, int64, error)

	// GetLatestByTank returns the most recent movement for a tank, used to
	// seed the next record's opening level.
	GetLatestByTank(ctx context.Context, tankID string) (*Stock, error)
}

// TankRepository defines data access for tanks.
type TankRepository interface {
	Create(ctx context.Context, tank Tank) (Tank, error)

	GetByID(ctx context.Context, id string, adminID string) (Tank, error)

	ListByAdmin(ctx context.Context, adminID string) ([]Tank, error)

	UpdateLevel(ctx context.Context, id string, level float64) error
}
