package contact

import (
	"context"
)

// ContactService stores public enquiries and forwards them to the
// configured inbox.
type ContactService interface {
	CreateMessage(ctx context.Context, req CreateMessageRequest) (MessageResponse, error)

	ListMessages(ctx context.Context, limit int) ([]MessageResponse, error)
}
