package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/expense"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/database"
)

type expenseRepository struct {
	db *database.DB
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepository) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (
			admin_id, date, category, description, amount
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.AdminID, e.Date, e.Category, e.Description, e.Amount,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return e, nil
}

// GetByID implements expense.ExpenseRepository.
func (r *expenseRepository) GetByID(ctx context.Context, id string, adminID string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, admin_id, date, category, description, amount, created_at, updated_at
		FROM expenses
		WHERE id = $1 AND admin_id = $2
	`

	var e expense.Expense
	err := q.QueryRow(ctx, query, id, adminID).Scan(
		&e.ID, &e.AdminID, &e.Date, &e.Category, &e.Description, &e.Amount,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

// List implements expense.ExpenseRepository.
func (r *expenseRepository) List(ctx context.Context, filter expense.ListFilter, adminID string) ([]expense.Expense, int64, float64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := `WHERE admin_id = $1`
	args := []any{adminID}
	argIdx := 2

	if filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}

	var total int64
	var totalAmount float64
	countQuery := `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM expenses ` + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total, &totalAmount); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT id, admin_id, date, category, description, amount, created_at, updated_at
		FROM expenses
		` + baseWhere + `
		ORDER BY date DESC, created_at DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		err := rows.Scan(
			&e.ID, &e.AdminID, &e.Date, &e.Category, &e.Description, &e.Amount,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, total, totalAmount, rows.Err()
}

// Update implements expense.ExpenseRepository.
func (r *expenseRepository) Update(ctx context.Context, e expense.Expense) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET date = $1, category = $2, description = $3, amount = $4, updated_at = NOW()
		WHERE id = $5 AND admin_id = $6
	`

	tag, err := q.Exec(ctx, query, e.Date, e.Category, e.Description, e.Amount, e.ID, e.AdminID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

// Delete implements expense.ExpenseRepository.
func (r *expenseRepository) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM expenses WHERE id = $1 AND admin_id = $2`

	tag, err := q.Exec(ctx, query, id, adminID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}
