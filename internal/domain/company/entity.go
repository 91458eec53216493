package company

import (
	"time"
)

// Company is the station profile attached to an admin account.
type Company struct {
	ID        string
	AdminID   string
	Name      string
	Address   string
	City      string
	State     string
	Pincode   string
	GSTNumber *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
