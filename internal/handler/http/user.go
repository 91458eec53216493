package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/middleware"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	RegisterAdmin(w http.ResponseWriter, r *http.Request)
	RegisterStaff(w http.ResponseWriter, r *http.Request)
	ListAdmins(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// RegisterAdmin implements UserHandler.
func (h *UserHandlerImpl) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.RegisterAdmin(r.Context(), req)
	if err != nil {
		slog.Error("RegisterAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin registered", "username", created.Username)
	response.Created(w, "Admin registered successfully", created)
}

// RegisterStaff implements UserHandler.
func (h *UserHandlerImpl) RegisterStaff(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterStaff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.RegisterStaff(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("RegisterStaff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff registered", "username", created.Username)
	response.Created(w, "Staff registered successfully", created)
}

// ListAdmins implements UserHandler.
func (h *UserHandlerImpl) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.userService.ListAdmins(r.Context())
	if err != nil {
		slog.Error("ListAdmins service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}

// ListStaff implements UserHandler.
func (h *UserHandlerImpl) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.userService.ListStaff(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("ListStaff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, staff)
}
