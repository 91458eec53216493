package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/expense"
)

type ExpenseServiceImpl struct {
	expenseRepository expense.ExpenseRepository
}

func NewExpenseService(expenseRepository expense.ExpenseRepository) expense.ExpenseService {
	return &ExpenseServiceImpl{expenseRepository: expenseRepository}
}

// CreateExpense implements expense.ExpenseService.
func (s *ExpenseServiceImpl) CreateExpense(ctx context.Context, adminID string, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	record := expense.Expense{
		AdminID:     adminID,
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	}

	created, err := s.expenseRepository.Create(ctx, record)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return expense.ToResponse(created), nil
}

// ListExpenses implements expense.ExpenseService.
func (s *ExpenseServiceImpl) ListExpenses(ctx context.Context, adminID string, filter expense.ListFilter) (expense.ListExpensesResponse, error) {
	filter.Normalize()

	expenses, total, totalAmount, err := s.expenseRepository.List(ctx, filter, adminID)
	if err != nil {
		return expense.ListExpensesResponse{}, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, expense.ToResponse(e))
	}

	return expense.ListExpensesResponse{
		Expenses:    responses,
		TotalAmount: totalAmount,
		Total:       total,
		Page:        filter.Page,
		PerPage:     filter.PerPage,
	}, nil
}

// UpdateExpense implements expense.ExpenseService.
func (s *ExpenseServiceImpl) UpdateExpense(ctx context.Context, adminID string, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	record, err := s.expenseRepository.GetByID(ctx, req.ID, adminID)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return expense.ExpenseResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		record.Date = date
	}
	if req.Category != nil {
		record.Category = *req.Category
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Amount != nil {
		record.Amount = *req.Amount
	}

	if err := s.expenseRepository.Update(ctx, record); err != nil {
		return expense.ExpenseResponse{}, err
	}

	return expense.ToResponse(record), nil
}

// DeleteExpense implements expense.ExpenseService.
func (s *ExpenseServiceImpl) DeleteExpense(ctx context.Context, adminID string, id string) error {
	return s.expenseRepository.Delete(ctx, id, adminID)
}
