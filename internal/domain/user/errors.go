package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already registered")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrSuperAdminRequired      = errors.New("super admin access required")
	ErrAdminRequired           = errors.New("admin access required")
	ErrStaffRequired           = errors.New("staff access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
