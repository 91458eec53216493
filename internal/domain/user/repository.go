package user

import (
	"context"
	"time"
)

// UserRepository defines data access methods for users of every role.
type UserRepository interface {
	// Create inserts a new user and returns it with generated fields
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByRole retrieves all users with a given role
	ListByRole(ctx context.Context, role Role) ([]User, error)

	// ListStaffByAdmin retrieves the staff registered under an admin
	ListStaffByAdmin(ctx context.Context, adminID string) ([]User, error)

	// Update updates mutable profile fields
	Update(ctx context.Context, u User) error

	// SetPasswordResetToken stamps a reset token and its issue time on a user
	SetPasswordResetToken(ctx context.Context, userID string, token string, sentAt time.Time) error

	// GetByPasswordResetToken retrieves the user holding a reset token
	GetByPasswordResetToken(ctx context.Context, token string) (User, error)

	// UpdatePassword replaces the password hash and clears any reset token
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
