package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/database"
)

const saleColumns = `s.id, s.admin_id, s.staff_id, s.date, s.shift, s.fuel_type,
	   s.nozzle_id, s.opening_reading, s.closing_reading,
	   s.quantity, s.rate, s.amount, s.payment_mode,
	   s.customer_id, s.created_at, s.updated_at`

type saleRepository struct {
	db *database.DB
}

func scanSale(row pgx.Row) (sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(
		&s.ID, &s.AdminID, &s.StaffID, &s.Date, &s.Shift, &s.FuelType,
		&s.NozzleID, &s.OpeningReading, &s.ClosingReading,
		&s.Quantity, &s.Rate, &s.Amount, &s.PaymentMode,
		&s.CustomerID, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func saleFilterWhere(filter sale.ListFilter, baseWhere string, args []any, argIdx int) (string, []any, int) {
	if filter.StaffID != "" {
		baseWhere += fmt.Sprintf(" AND s.staff_id = $%d", argIdx)
		args = append(args, filter.StaffID)
		argIdx++
	}
	if filter.FuelType != "" {
		baseWhere += fmt.Sprintf(" AND s.fuel_type = $%d", argIdx)
		args = append(args, filter.FuelType)
		argIdx++
	}
	if filter.Shift != "" {
		baseWhere += fmt.Sprintf(" AND s.shift = $%d", argIdx)
		args = append(args, filter.Shift)
		argIdx++
	}
	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND s.date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND s.date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}
	return baseWhere, args, argIdx
}

// Create implements sale.SaleRepository.
func (r *saleRepository) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sales (
			admin_id, staff_id, date, shift, fuel_type,
			nozzle_id, opening_reading, closing_reading,
			quantity, rate, amount, payment_mode, customer_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.AdminID, s.StaffID, s.Date, s.Shift, s.FuelType,
		s.NozzleID, s.OpeningReading, s.ClosingReading,
		s.Quantity, s.Rate, s.Amount, s.PaymentMode, s.CustomerID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return sale.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	return s, nil
}

// GetByID implements sale.SaleRepository.
func (r *saleRepository) GetByID(ctx context.Context, id string, adminID string) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + saleColumns + ` FROM sales s WHERE s.id = $1 AND s.admin_id = $2`

	s, err := scanSale(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, fmt.Errorf("failed to get sale: %w", err)
	}

	return s, nil
}

// List implements sale.SaleRepository.
func (r *saleRepository) List(ctx context.Context, filter sale.ListFilter, adminID string) ([]sale.Sale, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere, args, argIdx := saleFilterWhere(filter, `WHERE s.admin_id = $1`, []any{adminID}, 2)

	var total int64
	countQuery := `SELECT COUNT(*) FROM sales s ` + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	query := `
		SELECT ` + saleColumns + `, u.username
		FROM sales s
		JOIN users u ON u.id = s.staff_id
		` + baseWhere + `
		ORDER BY s.date DESC, s.created_at DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(
			&s.ID, &s.AdminID, &s.StaffID, &s.Date, &s.Shift, &s.FuelType,
			&s.NozzleID, &s.OpeningReading, &s.ClosingReading,
			&s.Quantity, &s.Rate, &s.Amount, &s.PaymentMode,
			&s.CustomerID, &s.CreatedAt, &s.UpdatedAt,
			&s.StaffName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, total, rows.Err()
}

// ListByStaff implements sale.SaleRepository.
func (r *saleRepository) ListByStaff(ctx context.Context, staffID string, filter sale.ListFilter) ([]sale.Sale, int64, error) {
	q := GetQuerier(ctx, r.db)

	filter.StaffID = ""
	baseWhere, args, argIdx := saleFilterWhere(filter, `WHERE s.staff_id = $1`, []any{staffID}, 2)

	var total int64
	countQuery := `SELECT COUNT(*) FROM sales s ` + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	query := `
		SELECT ` + saleColumns + `
		FROM sales s
		` + baseWhere + `
		ORDER BY s.date DESC, s.created_at DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, total, rows.Err()
}

// ListForReport implements sale.SaleRepository.
func (r *saleRepository) ListForReport(ctx context.Context, filter sale.ListFilter, adminID string) ([]sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere, args, _ := saleFilterWhere(filter, `WHERE s.admin_id = $1`, []any{adminID}, 2)

	query := `
		SELECT ` + saleColumns + `, u.username
		FROM sales s
		JOIN users u ON u.id = s.staff_id
		` + baseWhere + `
		ORDER BY s.date ASC, s.created_at ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for report: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(
			&s.ID, &s.AdminID, &s.StaffID, &s.Date, &s.Shift, &s.FuelType,
			&s.NozzleID, &s.OpeningReading, &s.ClosingReading,
			&s.Quantity, &s.Rate, &s.Amount, &s.PaymentMode,
			&s.CustomerID, &s.CreatedAt, &s.UpdatedAt,
			&s.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepository{db: db}
}
