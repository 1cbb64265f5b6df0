package jwt

import (
	"testing"
	"time"

	"healfinity-backend/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		token, tokenID, err := service.GenerateAccessToken(userID, "jane@example.com")
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenID)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, AccessToken, claims.TokenType)
		assert.Equal(t, tokenID, claims.TokenID)
	})

	t.Run("refresh token carries its own type", func(t *testing.T) {
		token, _, err := service.GenerateRefreshToken(userID, "jane@example.com")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, RefreshToken, claims.TokenType)
	})

	t.Run("each token gets a unique id", func(t *testing.T) {
		_, first, err := service.GenerateAccessToken(userID, "jane@example.com")
		assert.NoError(t, err)
		_, second, err := service.GenerateAccessToken(userID, "jane@example.com")
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestValidateRejects(t *testing.T) {
	service := newTestService()

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:        "different-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		})

		token, _, err := other.GenerateAccessToken(uuid.New(), "jane@example.com")
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:        "test-secret",
			AccessExpiry:  -time.Minute,
			RefreshExpiry: -time.Minute,
		})

		token, _, err := expired.GenerateAccessToken(uuid.New(), "jane@example.com")
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})
}
