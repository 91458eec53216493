package auth

import (
	"context"
	"testing"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/config"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/auth"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/jwt"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

type fakeUserRepo struct {
	users map[string]user.User

	resetUserID string
	resetToken  string
	resetSentAt time.Time

	updatedPasswordID   string
	updatedPasswordHash string
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) ListStaffByAdmin(ctx context.Context, adminID string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (f *fakeUserRepo) SetPasswordResetToken(ctx context.Context, userID string, token string, sentAt time.Time) error {
	f.resetUserID = userID
	f.resetToken = token
	f.resetSentAt = sentAt

	u := f.users[userID]
	u.PasswordResetToken = &token
	u.PasswordResetSentAt = &sentAt
	f.users[userID] = u
	return nil
}
func (f *fakeUserRepo) GetByPasswordResetToken(ctx context.Context, token string) (user.User, error) {
	for _, u := range f.users {
		if u.PasswordResetToken != nil && *u.PasswordResetToken == token {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	f.updatedPasswordID = id
	f.updatedPasswordHash = passwordHash
	return nil
}

type fakeEmailService struct {
	resetTo        string
	resetLink      string
	resetExpiresAt time.Time
}

func (f *fakeEmailService) SendContactMessage(to, senderName, senderEmail, message string) error {
	return nil
}
func (f *fakeEmailService) SendPasswordReset(to, resetLink string, expiresAt time.Time) error {
	f.resetTo = to
	f.resetLink = resetLink
	f.resetExpiresAt = expiresAt
	return nil
}

type fakeGoogleService struct{}

func (fakeGoogleService) GenerateState(userAgent string) string { return "state" }
func (fakeGoogleService) RedirectURL(state string) string {
	return "https://accounts.google.example/" + state
}
func (fakeGoogleService) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "tok"}, nil
}
func (fakeGoogleService) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	return oauth.GoogleInformation{}, nil
}

func newTestAuthService(users map[string]user.User) (auth.AuthService, *fakeUserRepo, *fakeEmailService) {
	repo := &fakeUserRepo{users: users}
	mailer := &fakeEmailService{}
	jwtService := jwt.NewJWTService("test-secret-key-for-auth", "1h", "24h")
	svc := NewAuthService(repo, jwtService, mailer, fakeGoogleService{}, config.AppConfig{
		FrontendURL: "https://app.petrodesk.example",
	})
	return svc, repo, mailer
}

func adminUser() user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	hashStr := string(hash)
	return user.User{
		ID:           "admin-1",
		Username:     "owner",
		Email:        "owner@station.example",
		PasswordHash: &hashStr,
		Role:         user.RoleAdmin,
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService(map[string]user.User{"admin-1": adminUser()})

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "owner", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin-1", resp.User.ID)

	_, err = svc.Login(context.Background(), &auth.LoginRequest{Username: "owner", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestForgotPasswordStoresTokenAndEmails(t *testing.T) {
	svc, repo, mailer := newTestAuthService(map[string]user.User{"admin-1": adminUser()})

	err := svc.ForgotPassword(context.Background(), &auth.ForgotPasswordRequest{Email: "owner@station.example"})
	require.NoError(t, err)

	assert.Equal(t, "admin-1", repo.resetUserID)
	assert.Len(t, repo.resetToken, 64)
	assert.False(t, repo.resetSentAt.IsZero())

	assert.Equal(t, "owner@station.example", mailer.resetTo)
	assert.Contains(t, mailer.resetLink, "/reset-password?token="+repo.resetToken)
	assert.Equal(t, repo.resetSentAt.Add(30*time.Minute), mailer.resetExpiresAt)
}

func TestForgotPasswordUnknownEmailDoesNotLeak(t *testing.T) {
	svc, repo, mailer := newTestAuthService(map[string]user.User{"admin-1": adminUser()})

	err := svc.ForgotPassword(context.Background(), &auth.ForgotPasswordRequest{Email: "nobody@station.example"})
	require.NoError(t, err)
	assert.Empty(t, repo.resetToken)
	assert.Empty(t, mailer.resetTo)
}

func TestResetPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService(map[string]user.User{"admin-1": adminUser()})

	require.NoError(t, svc.ForgotPassword(context.Background(), &auth.ForgotPasswordRequest{Email: "owner@station.example"}))

	err := svc.ResetPassword(context.Background(), &auth.ResetPasswordRequest{Token: repo.resetToken, Password: "new-password-1"})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", repo.updatedPasswordID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updatedPasswordHash), []byte("new-password-1")))
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, repo, _ := newTestAuthService(map[string]user.User{"admin-1": adminUser()})

	require.NoError(t, svc.ForgotPassword(context.Background(), &auth.ForgotPasswordRequest{Email: "owner@station.example"}))

	stale := time.Now().Add(-31 * time.Minute)
	u := repo.users["admin-1"]
	u.PasswordResetSentAt = &stale
	repo.users["admin-1"] = u

	err := svc.ResetPassword(context.Background(), &auth.ResetPasswordRequest{Token: repo.resetToken, Password: "new-password-1"})
	assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	svc, _, _ := newTestAuthService(map[string]user.User{"admin-1": adminUser()})

	err := svc.ResetPassword(context.Background(), &auth.ResetPasswordRequest{Token: "deadbeef", Password: "new-password-1"})
	assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
}
