package user

import (
	"context"
)

// UserService defines account management: super admins register station
// admins, admins register their staff.
type UserService interface {
	// RegisterAdmin creates a station admin with its geofence. Super admin
	// only.
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (UserResponse, error)

	// RegisterStaff creates a staff account under the calling admin.
	RegisterStaff(ctx context.Context, adminID string, req RegisterStaffRequest) (UserResponse, error)

	// ListAdmins lists all station admins. Super admin only.
	ListAdmins(ctx context.Context) ([]UserResponse, error)

	// ListStaff lists the calling admin's staff.
	ListStaff(ctx context.Context, adminID string) ([]UserResponse, error)

	GetUser(ctx context.Context, id string) (UserResponse, error)
}
