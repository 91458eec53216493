package expense

import (
	"context"
)

// ExpenseService defines business logic for station expense tracking.
type ExpenseService interface {
	CreateExpense(ctx context.Context, adminID string, req CreateExpenseRequest) (ExpenseResponse, error)

	ListExpenses(ctx context.Context, adminID string, filter ListFilter) (ListExpensesResponse, error)

	UpdateExpense(ctx context.Context, adminID string, req UpdateExpenseRequest) (ExpenseResponse, error)

	DeleteExpense(ctx context.Context, adminID string, id string) error
}
