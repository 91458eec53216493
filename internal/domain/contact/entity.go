package contact

import (
	"time"
)

type Message struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Message   string
	CreatedAt time.Time
}
