package contact

import (
	"context"
	"log/slog"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/contact"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/email"
)

type ContactServiceImpl struct {
	contactRepository contact.MessageRepository
	emailService      email.EmailService
	inbox             string
}

func NewContactService(
	contactRepository contact.MessageRepository,
	emailService email.EmailService,
	inbox string,
) contact.ContactService {
	return &ContactServiceImpl{
		contactRepository: contactRepository,
		emailService:      emailService,
		inbox:             inbox,
	}
}

// CreateMessage implements contact.ContactService.
func (s *ContactServiceImpl) CreateMessage(ctx context.Context, req contact.CreateMessageRequest) (contact.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return contact.MessageResponse{}, err
	}

	message := contact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	created, err := s.contactRepository.Create(ctx, message)
	if err != nil {
		return contact.MessageResponse{}, err
	}

	// The enquiry is stored either way; a failed forward only gets logged.
	if s.inbox != "" {
		if err := s.emailService.SendContactMessage(s.inbox, created.Name, created.Email, created.Message); err != nil {
			slog.Error("failed to forward contact message", "error", err, "message_id", created.ID)
		}
	}

	return contact.ToResponse(created), nil
}

// ListMessages implements contact.ContactService.
func (s *ContactServiceImpl) ListMessages(ctx context.Context, limit int) ([]contact.MessageResponse, error) {
	messages, err := s.contactRepository.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]contact.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, contact.ToResponse(m))
	}
	return responses, nil
}
