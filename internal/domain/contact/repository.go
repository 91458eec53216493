package contact

import (
	"context"
)

type MessageRepository interface {
	Create(ctx context.Context, message Message) (Message, error)

	List(ctx context.Context, limit int) ([]Message, error)
}
