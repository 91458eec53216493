package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/stock"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/database"
)

const stockColumns = `st.id, st.admin_id, st.tank_id, st.date, st.fuel_type,
	   st.opening_level, st.received_litres, st.sold_litres, st.closing_level,
	   st.recorded_by, st.created_at, st.updated_at`

type stockRepository struct {
	db *database.DB
}

func scanStock(row pgx.Row) (stock.Stock, error) {
	var s stock.Stock
	err := row.Scan(
		&s.ID, &s.AdminID, &s.TankID, &s.Date, &s.FuelType,
		&s.OpeningLevel, &s.ReceivedLitres, &s.SoldLitres, &s.ClosingLevel,
		&s.RecordedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements stock.StockRepository.
func (r *stockRepository) Create(ctx context.Context, s stock.Stock) (stock.Stock, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stocks (
			admin_id, tank_id, date, fuel_type,
			opening_level, received_litres, sold_litres, closing_level,
			recorded_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.AdminID, s.TankID, s.Date, s.FuelType,
		s.OpeningLevel, s.ReceivedLitres, s.SoldLitres, s.ClosingLevel,
		s.RecordedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return stock.Stock{}, fmt.Errorf("failed to create stock record: %w", err)
	}

	return s, nil
}

// GetByID implements stock.StockRepository.
func (r *stockRepository) GetByID(ctx context.Context, id string, adminID string) (stock.Stock, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + stockColumns + ` FROM stocks st WHERE st.id = $1 AND st.admin_id = $2`

	s, err := scanStock(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stock.Stock{}, stock.ErrStockNotFound
		}
		return stock.Stock{}, fmt.Errorf("failed to get stock record: %w", err)
	}

	return s, nil
}

// List implements stock.StockRepository.
func (r *stockRepository) List(ctx context.Context, filter stock.ListFilter, adminID string) ([]stock.Stock, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := `WHERE st.admin_id = $1`
	args := []any{adminID}
	argIdx := 2

	if filter.TankID != "" {
		baseWhere += fmt.Sprintf(" AND st.tank_id = $%d", argIdx)
		args = append(args, filter.TankID)
		argIdx++
	}
	if filter.FuelType != "" {
		baseWhere += fmt.Sprintf(" AND st.fuel_type = $%d", argIdx)
		args = append(args, filter.FuelType)
		argIdx++
	}
	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND st.date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND st.date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM stocks st ` + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count stock records: %w", err)
	}

	query := `
		SELECT ` + stockColumns + `, t.name
		FROM stocks st
		JOIN tanks t ON t.id = st.tank_id
		` + baseWhere + `
		ORDER BY st.date DESC, st.created_at DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stock records: %w", err)
	}
	defer rows.Close()

	var stocks []stock.Stock
	for rows.Next() {
		var s stock.Stock
		err := rows.Scan(
			&s.ID, &s.AdminID, &s.TankID, &s.Date, &s.FuelType,
			&s.OpeningLevel, &s.ReceivedLitres, &s.SoldLitres, &s.ClosingLevel,
			&s.RecordedBy, &s.CreatedAt, &s.UpdatedAt,
			&s.TankName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan stock record: %w", err)
		}
		stocks = append(stocks, s)
	}

	return stocks, total, rows.Err()
}

// GetLatestByTank implements stock.StockRepository.
func (r *stockRepository) GetLatestByTank(ctx context.Context, tankID string) (*stock.Stock, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + stockColumns + `
		FROM stocks st
		WHERE st.tank_id = $1
		ORDER BY st.date DESC, st.created_at DESC
		LIMIT 1
	`

	s, err := scanStock(q.QueryRow(ctx, query, tankID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest stock record: %w", err)
	}

	return &s, nil
}

func NewStockRepository(db *database.DB) stock.StockRepository {
	return &stockRepository{db: db}
}

type tankRepository struct {
	db *database.DB
}

// Create implements stock.TankRepository.
func (r *tankRepository) Create(ctx context.Context, t stock.Tank) (stock.Tank, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tanks (
			admin_id, name, fuel_type, capacity_litres, current_level, low_threshold
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.AdminID, t.Name, t.FuelType, t.CapacityLitres, t.CurrentLevel, t.LowThreshold,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return stock.Tank{}, fmt.Errorf("failed to create tank: %w", err)
	}

	return t, nil
}

// GetByID implements stock.TankRepository.
func (r *tankRepository) GetByID(ctx context.Context, id string, adminID string) (stock.Tank, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, admin_id, name, fuel_type, capacity_litres, current_level, low_threshold,
			   created_at, updated_at
		FROM tanks
		WHERE id = $1 AND admin_id = $2
	`

	var t stock.Tank
	err := q.QueryRow(ctx, query, id, adminID).Scan(
		&t.ID, &t.AdminID, &t.Name, &t.FuelType, &t.CapacityLitres, &t.CurrentLevel, &t.LowThreshold,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stock.Tank{}, stock.ErrTankNotFound
		}
		return stock.Tank{}, fmt.Errorf("failed to get tank: %w", err)
	}

	return t, nil
}

// ListByAdmin implements stock.TankRepository.
func (r *tankRepository) ListByAdmin(ctx context.Context, adminID string) ([]stock.Tank, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, admin_id, name, fuel_type, capacity_litres, current_level, low_threshold,
			   created_at, updated_at
		FROM tanks
		WHERE admin_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tanks: %w", err)
	}
	defer rows.Close()

	var tanks []stock.Tank
	for rows.Next() {
		var t stock.Tank
		err := rows.Scan(
			&t.ID, &t.AdminID, &t.Name, &t.FuelType, &t.CapacityLitres, &t.CurrentLevel, &t.LowThreshold,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tank: %w", err)
		}
		tanks = append(tanks, t)
	}

	return tanks, rows.Err()
}

// UpdateLevel implements stock.TankRepository.
func (r *tankRepository) UpdateLevel(ctx context.Context, id string, level float64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE tanks SET current_level = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, level, id)
	if err != nil {
		return fmt.Errorf("failed to update tank level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return stock.ErrTankNotFound
	}

	return nil
}

func NewTankRepository(db *database.DB) stock.TankRepository {
	return &tankRepository{db: db}
}
