package auth

import "context"

// AuthService handles credential login, token refresh, Google OAuth for
// admins, and the password reset flow.
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	GoogleRedirectURL(state string) string
	GoogleLogin(ctx context.Context, code string) (*LoginResponse, error)

	ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
}
