package postgresql

import (
	"context"
	"fmt"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/contact"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/database"
)

type contactRepository struct {
	db *database.DB
}

// Create implements contact.MessageRepository.
func (r *contactRepository) Create(ctx context.Context, m contact.Message) (contact.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contact_messages (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, m.Name, m.Email, m.Phone, m.Message).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return contact.Message{}, fmt.Errorf("failed to create contact message: %w", err)
	}

	return m, nil
}

// List implements contact.MessageRepository.
func (r *contactRepository) List(ctx context.Context, limit int) ([]contact.Message, error) {
	q := GetQuerier(ctx, r.db)

	if limit < 1 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, name, email, phone, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []contact.Message
	for rows.Next() {
		var m contact.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func NewContactRepository(db *database.DB) contact.MessageRepository {
	return &contactRepository{db: db}
}
