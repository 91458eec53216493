package jwt

import (
	"testing"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessTokenClaims(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "ravi", "ravi@example.com", user.RoleStaff)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.DecodeToken(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	role, _ := token.Get("role")
	assert.Equal(t, "staff", role)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	token, err := svc.DecodeToken(tokenString)
	require.NoError(t, err)

	tokenType, _ := token.Get("type")
	assert.Equal(t, "refresh", tokenType)
}

func TestStreamTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, expiresIn, err := svc.GenerateStreamToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateStreamToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateStreamTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "ravi", "ravi@example.com", user.RoleStaff)
	require.NoError(t, err)

	_, err = svc.ValidateStreamToken(tokenString)
	assert.Error(t, err)
}

func TestValidateStreamTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateStreamToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookieScope(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("token-value", 1700000000)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "/api/login", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
