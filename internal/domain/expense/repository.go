package expense

import (
	"context"
)

// ExpenseRepository defines data access for expense records, scoped by
// adminID.
type ExpenseRepository interface {
	Create(ctx context.Context, expense Expense) (Expense, error)

	GetByID(ctx context.Context, id string, adminID string) (Expense, error)

	List(ctx context.Context, filter ListFilter, adminID string) ([]Expense, int64, float64, error)

	Update(ctx context.Context, expense Expense) error

	Delete(ctx context.Context, id string, adminID string) error
}
