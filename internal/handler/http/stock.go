package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/stock"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/middleware"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/response"
)

type StockHandler interface {
	CreateStock(w http.ResponseWriter, r *http.Request)
	GetAllStocks(w http.ResponseWriter, r *http.Request)
	CreateTank(w http.ResponseWriter, r *http.Request)
	GetAllTanks(w http.ResponseWriter, r *http.Request)
}

type StockHandlerImpl struct {
	stockService stock.StockService
}

func NewStockHandler(stockService stock.StockService) StockHandler {
	return &StockHandlerImpl{stockService: stockService}
}

// CreateStock implements StockHandler.
func (h *StockHandlerImpl) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req stock.CreateStockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateStock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adminID := middleware.UserID(r)

	created, err := h.stockService.CreateStock(r.Context(), adminID, req)
	if err != nil {
		slog.Error("CreateStock service error", "error", err, "admin_id", adminID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Stock movement recorded", "stock_id", created.ID, "tank_id", req.TankID)
	response.Created(w, "Stock recorded successfully", created)
}

// GetAllStocks implements StockHandler.
func (h *StockHandlerImpl) GetAllStocks(w http.ResponseWriter, r *http.Request) {
	filter := stock.ListFilter{
		TankID:   r.URL.Query().Get("tank_id"),
		FuelType: r.URL.Query().Get("fuel_type"),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
		Page:     intQueryParam(r, "page", 1),
		PerPage:  intQueryParam(r, "per_page", 20),
	}

	result, err := h.stockService.ListStocks(r.Context(), middleware.UserID(r), filter)
	if err != nil {
		slog.Error("GetAllStocks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateTank implements StockHandler.
func (h *StockHandlerImpl) CreateTank(w http.ResponseWriter, r *http.Request) {
	var req stock.CreateTankRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTank decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adminID := middleware.UserID(r)

	created, err := h.stockService.CreateTank(r.Context(), adminID, req)
	if err != nil {
		slog.Error("CreateTank service error", "error", err, "admin_id", adminID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Tank created", "tank_id", created.ID, "name", created.Name)
	response.Created(w, "Tank created successfully", created)
}

// GetAllTanks implements StockHandler.
func (h *StockHandlerImpl) GetAllTanks(w http.ResponseWriter, r *http.Request) {
	tanks, err := h.stockService.ListTanks(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("GetAllTanks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tanks)
}
