package usecase

import (
	"context"
	"fmt"
	"testing"

	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	t.Run("creates user with derived avatar and zeroed snapshot", func(t *testing.T) {
		env := newTestEnv(t)

		result := env.register(t, "Jane Roe", "jane@example.com")

		assert.Equal(t, "Jane Roe", result.User.Name)
		assert.Equal(t, "JR", result.User.Avatar)
		assert.NotEmpty(t, result.Tokens.AccessToken)
		assert.NotEmpty(t, result.Tokens.RefreshToken)

		// The aggregate already carries today's all-zero snapshot.
		assert.Equal(t, entity.Today(), result.User.HealthData.Date)
		assert.Equal(t, 0, result.User.HealthData.Steps)
		assert.Equal(t, float64(0), result.User.HealthData.Weight)
		assert.Empty(t, result.User.Consultations)
		assert.Empty(t, result.User.YogaSessions)

		// Default preferences: yoga notifications start off.
		assert.True(t, result.User.Preferences.Notifications.Appointments)
		assert.False(t, result.User.Preferences.Notifications.Yoga)

		var snapshots int64
		env.db.Model(&entity.HealthSnapshot{}).Count(&snapshots)
		assert.Equal(t, int64(1), snapshots)
	})

	t.Run("explicit avatar wins over derivation", func(t *testing.T) {
		env := newTestEnv(t)

		result, err := env.auth.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Jane Roe",
			Email:    "jane@example.com",
			Password: "password123",
			Avatar:   "🌿",
		})

		assert.NoError(t, err)
		assert.Equal(t, "🌿", result.User.Avatar)
	})

	t.Run("duplicate email is rejected without side effects", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "Jane Roe", "jane@example.com")

		_, err := env.auth.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Someone Else",
			Email:    "jane@example.com",
			Password: "password456",
		})

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)

		var users int64
		env.db.Model(&entity.User{}).Count(&users)
		assert.Equal(t, int64(1), users)

		var snapshots int64
		env.db.Model(&entity.HealthSnapshot{}).Count(&snapshots)
		assert.Equal(t, int64(1), snapshots)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return a session", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "Jane Roe", "jane@example.com")

		result, err := env.auth.Login(context.Background(), &dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", result.User.Email)
		assert.NotEmpty(t, result.Tokens.AccessToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.auth.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "Jane Roe", "jane@example.com")

		_, err := env.auth.Login(context.Background(), &dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	t.Run("revokes the stored access token", func(t *testing.T) {
		env := newTestEnv(t)
		result := env.register(t, "Jane Roe", "jane@example.com")

		claims, err := env.jwtService.ValidateToken(result.Tokens.AccessToken)
		assert.NoError(t, err)

		key := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
		exists, _ := env.tokenStore.Exists(context.Background(), key)
		assert.True(t, exists)

		err = env.auth.Logout(context.Background(), claims.TokenID, "")
		assert.NoError(t, err)

		exists, _ = env.tokenStore.Exists(context.Background(), key)
		assert.False(t, exists)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("rotates the refresh token", func(t *testing.T) {
		env := newTestEnv(t)
		result := env.register(t, "Jane Roe", "jane@example.com")

		tokens, err := env.auth.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
			RefreshToken: result.Tokens.RefreshToken,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEqual(t, result.Tokens.RefreshToken, tokens.RefreshToken)

		// The spent token cannot be replayed.
		_, err = env.auth.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
			RefreshToken: result.Tokens.RefreshToken,
		})
		assert.ErrorIs(t, err, ErrTokenRevoked)
	})

	t.Run("rejects an access token", func(t *testing.T) {
		env := newTestEnv(t)
		result := env.register(t, "Jane Roe", "jane@example.com")

		_, err := env.auth.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
			RefreshToken: result.Tokens.AccessToken,
		})

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.auth.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
			RefreshToken: "not-a-token",
		})

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("merges only the provided fields", func(t *testing.T) {
		env := newTestEnv(t)
		result := env.register(t, "Jane Roe", "jane@example.com")

		newPhone := "+1 (555) 000-1111"
		profile, err := env.auth.UpdateProfile(context.Background(), result.User.ID, &dto.UpdateProfileRequest{
			Phone: &newPhone,
		})

		assert.NoError(t, err)
		assert.Equal(t, newPhone, profile.Phone)
		assert.Equal(t, "Jane Roe", profile.Name)
		assert.Equal(t, "JR", profile.Avatar)
	})

	t.Run("updates preferences as a whole", func(t *testing.T) {
		env := newTestEnv(t)
		result := env.register(t, "Jane Roe", "jane@example.com")

		prefs := result.User.Preferences
		prefs.Notifications.Yoga = true
		prefs.Privacy.ShareHealthData = true

		profile, err := env.auth.UpdateProfile(context.Background(), result.User.ID, &dto.UpdateProfileRequest{
			Preferences: &prefs,
		})

		assert.NoError(t, err)
		assert.True(t, profile.Preferences.Notifications.Yoga)
		assert.True(t, profile.Preferences.Privacy.ShareHealthData)

		// Survives a reload.
		reloaded, err := env.auth.GetCurrentUser(context.Background(), result.User.ID)
		assert.NoError(t, err)
		assert.True(t, reloaded.Preferences.Notifications.Yoga)
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("assembles the full aggregate", func(t *testing.T) {
		env := newTestEnv(t)
		result := env.register(t, "Jane Roe", "jane@example.com")
		ctx := sessionCtx(result.User.ID)

		_, err := env.health.Save(ctx, &dto.SaveHealthDataRequest{Steps: 4200, WaterGlasses: 3})
		assert.NoError(t, err)

		_, err = env.consultations.Create(ctx, &dto.CreateConsultationRequest{
			DoctorName: "Dr. Sarah Johnson",
			Date:       "2026-09-15",
			Time:       "10:00 AM",
			Type:       "video",
		})
		assert.NoError(t, err)

		profile, err := env.auth.GetCurrentUser(context.Background(), result.User.ID)

		assert.NoError(t, err)
		assert.Equal(t, 4200, profile.HealthData.Steps)
		assert.Len(t, profile.Consultations, 1)
		assert.Equal(t, "confirmed", profile.Consultations[0].Status)
	})
}
