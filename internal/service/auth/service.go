package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/config"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/auth"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/email"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/jwt"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

const passwordResetTTL = 30 * time.Minute

type AuthServiceImpl struct {
	userRepository user.UserRepository
	jwtService     jwt.Service
	emailService   email.EmailService
	googleService  oauth.GoogleService
	frontendURL    string
}

func NewAuthService(
	userRepository user.UserRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	googleService oauth.GoogleService,
	appCfg config.AppConfig,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepository: userRepository,
		jwtService:     jwtService,
		emailService:   emailService,
		googleService:  googleService,
		frontendURL:    appCfg.FrontendURL,
	}
}

func (a *AuthServiceImpl) issueTokens(u user.User) (*auth.LoginResponse, error) {
	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(u.ID, u.Username, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &auth.LoginResponse{
		Token:              accessToken,
		ExpiresAt:          accessExp,
		User:               user.ToResponse(u),
		RefreshToken:       refreshToken,
		RefreshTokenExpiry: refreshExp,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := a.userRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if u.PasswordHash == nil {
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return a.issueTokens(u)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*auth.LoginResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrRefreshTokenRevoked
	}

	token, err := a.jwtService.DecodeToken(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if tokenType, _ := token.Get("type"); tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return nil, auth.ErrInvalidToken
	}

	u, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Rotate: the old refresh token dies with the new pair.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(u)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

// GoogleRedirectURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleRedirectURL(state string) string {
	return a.googleService.RedirectURL(state)
}

// GoogleLogin implements auth.AuthService.
func (a *AuthServiceImpl) GoogleLogin(ctx context.Context, code string) (*auth.LoginResponse, error) {
	oauthToken, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.googleService.VerifyUser(ctx, oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google profile: %w", err)
	}
	if !info.VerifiedEmail {
		return nil, auth.ErrOAuthEmailUnknown
	}

	u, err := a.userRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Only pre-registered accounts may log in with Google.
			return nil, auth.ErrOAuthEmailUnknown
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return a.issueTokens(u)
}

// ForgotPassword implements auth.AuthService.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req *auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := a.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Do not leak which emails exist.
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	resetToken := hex.EncodeToString(buf)

	sentAt := time.Now().UTC()
	if err := a.userRepository.SetPasswordResetToken(ctx, u.ID, resetToken, sentAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", a.frontendURL, resetToken)
	if err := a.emailService.SendPasswordReset(u.Email, resetLink, sentAt.Add(passwordResetTTL)); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req *auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := a.userRepository.GetByPasswordResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if u.PasswordResetSentAt == nil || time.Since(*u.PasswordResetSentAt) > passwordResetTTL {
		return auth.ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
