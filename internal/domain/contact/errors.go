package contact

import "errors"

var (
	ErrMessageNotFound = errors.New("contact message not found")
)
