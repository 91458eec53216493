package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/company"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/middleware"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Get implements CompanyHandler.
func (h *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.companyService.GetCompany(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("Get company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Upsert implements CompanyHandler.
func (h *CompanyHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req company.UpsertCompanyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adminID := middleware.UserID(r)

	profile, err := h.companyService.UpsertCompany(r.Context(), adminID, req)
	if err != nil {
		slog.Error("Upsert company service error", "error", err, "admin_id", adminID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company profile saved", "admin_id", adminID)
	response.SuccessWithMessage(w, "Company profile saved", profile)
}
