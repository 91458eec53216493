package stock

import (
	"context"
)

// StockService defines business logic for tank and stock management.
type StockService interface {
	// CreateStock records a daily movement for a tank. Opening level comes
	// from the previous record (or the tank's current level for the first
	// one) and the tank level is updated in the same transaction.
	CreateStock(ctx context.Context, adminID string, req CreateStockRequest) (StockResponse, error)

	ListStocks(ctx context.Context, adminID string, filter ListFilter) (ListStocksResponse, error)

	CreateTank(ctx context.Context, adminID string, req CreateTankRequest) (TankResponse, error)

	ListTanks(ctx context.Context, adminID string) ([]TankResponse, error)
}
