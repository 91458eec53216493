package expense

import (
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
)

type CreateExpenseRequest struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Category, []string{CategorySalary, CategoryMaintenance, CategoryElectricity, CategorySupplies, CategoryOther}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be salary, maintenance, electricity, supplies, or other",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateExpenseRequest struct {
	ID          string   `json:"-"`
	Date        *string  `json:"date,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Category != nil && !validator.IsInSlice(*r.Category, []string{CategorySalary, CategoryMaintenance, CategoryElectricity, CategorySupplies, CategoryOther}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be salary, maintenance, electricity, supplies, or other",
		})
	}

	if r.Amount != nil && *r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Category string `json:"category"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Page     int    `json:"page"`
	PerPage  int    `json:"per_page"`
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
}

type ExpenseResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListExpensesResponse struct {
	Expenses    []ExpenseResponse `json:"expenses"`
	TotalAmount float64           `json:"total_amount"`
	Total       int64             `json:"total"`
	Page        int               `json:"page"`
	PerPage     int               `json:"per_page"`
}

func ToResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}
