package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hris-system/hris-backend-go/internal/domain/user"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()
	divisionID := "div-1"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "user@example.com", user.RoleHR, &divisionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, "div-1", claims["division_id"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateAccessToken_NilDivision(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken("user-1", "user@example.com", user.RoleAdmin, nil)
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["division_id"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestInvalidExpirationDuration(t *testing.T) {
	svc := NewJWTService("secret", "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "user@example.com", user.RoleEmployee, nil)
	assert.Error(t, err)
}
