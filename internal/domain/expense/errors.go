package expense

import "errors"

// Expense domain errors
var (
	ErrExpenseNotFound = errors.New("expense record not found")
	ErrInvalidCategory = errors.New("invalid expense category")
	ErrInvalidAmount   = errors.New("expense amount must be greater than zero")
	ErrUnauthorized    = errors.New("unauthorized to access this expense record")
)
