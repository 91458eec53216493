package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/expense"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/middleware"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/response"
)

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

// Create implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adminID := middleware.UserID(r)

	created, err := h.expenseService.CreateExpense(r.Context(), adminID, req)
	if err != nil {
		slog.Error("Create expense service error", "error", err, "admin_id", adminID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Expense recorded", "expense_id", created.ID, "category", created.Category)
	response.Created(w, "Expense recorded successfully", created)
}

// GetAll implements ExpenseHandler.
func (h *ExpenseHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := expense.ListFilter{
		Category: r.URL.Query().Get("category"),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
		Page:     intQueryParam(r, "page", 1),
		PerPage:  intQueryParam(r, "per_page", 20),
	}

	result, err := h.expenseService.ListExpenses(r.Context(), middleware.UserID(r), filter)
	if err != nil {
		slog.Error("GetAll expenses service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req expense.UpdateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")
	adminID := middleware.UserID(r)

	updated, err := h.expenseService.UpdateExpense(r.Context(), adminID, req)
	if err != nil {
		slog.Error("Update expense service error", "error", err, "expense_id", req.ID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Expense updated", "expense_id", updated.ID)
	response.SuccessWithMessage(w, "Expense updated successfully", updated)
}

// Delete implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	adminID := middleware.UserID(r)

	if err := h.expenseService.DeleteExpense(r.Context(), adminID, id); err != nil {
		slog.Error("Delete expense service error", "error", err, "expense_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Expense deleted", "expense_id", id)
	response.SuccessWithMessage(w, "Expense deleted successfully", nil)
}
