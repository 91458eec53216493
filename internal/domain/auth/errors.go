package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrOAuthEmailUnknown   = errors.New("no account registered for this google email")
	ErrResetTokenInvalid   = errors.New("password reset token is invalid or expired")
)
