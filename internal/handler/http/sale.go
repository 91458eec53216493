package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/middleware"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/response"
)

type SaleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
}

type SaleHandlerImpl struct {
	saleService sale.SaleService
}

func NewSaleHandler(saleService sale.SaleService) SaleHandler {
	return &SaleHandlerImpl{saleService: saleService}
}

// Create implements SaleHandler.
func (h *SaleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateSaleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create sale decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.StaffID = middleware.UserID(r)

	created, err := h.saleService.CreateSale(r.Context(), req)
	if err != nil {
		slog.Error("Create sale service error", "error", err, "staff_id", req.StaffID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Sale recorded", "sale_id", created.ID, "staff_id", req.StaffID, "amount", created.Amount)
	response.Created(w, "Sale recorded successfully", created)
}

// GetAll implements SaleHandler. Staff see only their own entries; admins
// see sales for every staff member under them.
func (h *SaleHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := sale.ListFilter{
		StaffID:  r.URL.Query().Get("staff_id"),
		FuelType: r.URL.Query().Get("fuel_type"),
		Shift:    r.URL.Query().Get("shift"),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
		Page:     intQueryParam(r, "page", 1),
		PerPage:  intQueryParam(r, "per_page", 20),
	}

	userID := middleware.UserID(r)

	var (
		result sale.ListSalesResponse
		err    error
	)
	switch middleware.UserRole(r) {
	case string(user.RoleStaff):
		result, err = h.saleService.GetMySales(r.Context(), userID, filter)
	case string(user.RoleAdmin):
		result, err = h.saleService.ListSales(r.Context(), userID, filter)
	default:
		// Sales belong to a station; super-admins have none to list.
		response.HandleError(w, user.ErrAdminRequired)
		return
	}
	if err != nil {
		slog.Error("GetAll sales service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
