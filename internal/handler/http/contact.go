package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/contact"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/response"
)

type ContactHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
}

type ContactHandlerImpl struct {
	contactService contact.ContactService
}

func NewContactHandler(contactService contact.ContactService) ContactHandler {
	return &ContactHandlerImpl{contactService: contactService}
}

// Create implements ContactHandler. This endpoint is public — it backs the
// landing page enquiry form.
func (h *ContactHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req contact.CreateMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create contact message decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.contactService.CreateMessage(r.Context(), req)
	if err != nil {
		slog.Error("Create contact message service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Message sent successfully", created)
}

// GetAll implements ContactHandler.
func (h *ContactHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.ListMessages(r.Context(), intQueryParam(r, "limit", 50))
	if err != nil {
		slog.Error("GetAll contact messages service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, messages)
}
