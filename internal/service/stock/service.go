package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/stock"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/database"
	"github.com/petrodesk/petrodesk-backend-go/internal/repository/postgresql"
)

type StockServiceImpl struct {
	db              *database.DB
	stockRepository stock.StockRepository
	tankRepository  stock.TankRepository
}

func NewStockService(
	db *database.DB,
	stockRepository stock.StockRepository,
	tankRepository stock.TankRepository,
) stock.StockService {
	return &StockServiceImpl{
		db:              db,
		stockRepository: stockRepository,
		tankRepository:  tankRepository,
	}
}

// CreateStock implements stock.StockService.
func (s *StockServiceImpl) CreateStock(ctx context.Context, adminID string, req stock.CreateStockRequest) (stock.StockResponse, error) {
	if err := req.Validate(); err != nil {
		return stock.StockResponse{}, err
	}

	tank, err := s.tankRepository.GetByID(ctx, req.TankID, adminID)
	if err != nil {
		return stock.StockResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return stock.StockResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	// Opening level continues from the last movement, or the tank's
	// current level for the first record.
	openingLevel := tank.CurrentLevel
	latest, err := s.stockRepository.GetLatestByTank(ctx, tank.ID)
	if err != nil {
		return stock.StockResponse{}, err
	}
	if latest != nil {
		openingLevel = latest.ClosingLevel
	}

	closingLevel := openingLevel + req.ReceivedLitres - req.SoldLitres
	if closingLevel < 0 {
		return stock.StockResponse{}, stock.ErrNegativeLevel
	}
	if closingLevel > tank.CapacityLitres {
		return stock.StockResponse{}, stock.ErrExceedsCapacity
	}

	record := stock.Stock{
		AdminID:        adminID,
		TankID:         tank.ID,
		Date:           date,
		FuelType:       tank.FuelType,
		OpeningLevel:   openingLevel,
		ReceivedLitres: req.ReceivedLitres,
		SoldLitres:     req.SoldLitres,
		ClosingLevel:   closingLevel,
		RecordedBy:     req.RecordedBy,
	}

	var created stock.Stock
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.stockRepository.Create(txCtx, record)
		if txErr != nil {
			return txErr
		}
		return s.tankRepository.UpdateLevel(txCtx, tank.ID, closingLevel)
	})
	if err != nil {
		return stock.StockResponse{}, err
	}

	resp := stock.ToStockResponse(created)
	resp.TankName = &tank.Name
	return resp, nil
}

// ListStocks implements stock.StockService.
func (s *StockServiceImpl) ListStocks(ctx context.Context, adminID string, filter stock.ListFilter) (stock.ListStocksResponse, error) {
	filter.Normalize()

	stocks, total, err := s.stockRepository.List(ctx, filter, adminID)
	if err != nil {
		return stock.ListStocksResponse{}, err
	}

	responses := make([]stock.StockResponse, 0, len(stocks))
	for _, row := range stocks {
		responses = append(responses, stock.ToStockResponse(row))
	}

	return stock.ListStocksResponse{
		Stocks:  responses,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// CreateTank implements stock.StockService.
func (s *StockServiceImpl) CreateTank(ctx context.Context, adminID string, req stock.CreateTankRequest) (stock.TankResponse, error) {
	if err := req.Validate(); err != nil {
		return stock.TankResponse{}, err
	}

	tank := stock.Tank{
		AdminID:        adminID,
		Name:           req.Name,
		FuelType:       req.FuelType,
		CapacityLitres: req.CapacityLitres,
		CurrentLevel:   req.CurrentLevel,
		LowThreshold:   req.LowThreshold,
	}

	created, err := s.tankRepository.Create(ctx, tank)
	if err != nil {
		return stock.TankResponse{}, err
	}

	return stock.ToTankResponse(created), nil
}

// ListTanks implements stock.StockService.
func (s *StockServiceImpl) ListTanks(ctx context.Context, adminID string) ([]stock.TankResponse, error) {
	tanks, err := s.tankRepository.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	responses := make([]stock.TankResponse, 0, len(tanks))
	for _, t := range tanks {
		responses = append(responses, stock.ToTankResponse(t))
	}
	return responses, nil
}
