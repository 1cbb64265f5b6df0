package usecase

import (
	"context"
	"testing"

	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestHealthSave(t *testing.T) {
	t.Run("saving twice in one day keeps a single row", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.register(t, "Jane Roe", "jane@example.com")
		ctx := sessionCtx(user.User.ID)

		_, err := env.health.Save(ctx, &dto.SaveHealthDataRequest{Steps: 1000, HeartRate: 70})
		assert.NoError(t, err)

		snapshot, err := env.health.Save(ctx, &dto.SaveHealthDataRequest{Steps: 8000, HeartRate: 68, SleepHours: 7.5})
		assert.NoError(t, err)

		assert.Equal(t, 8000, snapshot.Steps)
		assert.Equal(t, 68, snapshot.HeartRate)
		assert.Equal(t, 7.5, snapshot.SleepHours)

		// Registration already wrote today's zero row, so the count stays 1.
		var rows int64
		env.db.Model(&entity.HealthSnapshot{}).Count(&rows)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("save replaces the day as a whole", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.register(t, "Jane Roe", "jane@example.com")
		ctx := sessionCtx(user.User.ID)

		_, err := env.health.Save(ctx, &dto.SaveHealthDataRequest{Steps: 1000, Weight: 65.5})
		assert.NoError(t, err)

		// Omitted fields arrive as zero and overwrite.
		snapshot, err := env.health.Save(ctx, &dto.SaveHealthDataRequest{Steps: 2000})
		assert.NoError(t, err)
		assert.Equal(t, float64(0), snapshot.Weight)
	})

	t.Run("requires a session", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.health.Save(context.Background(), &dto.SaveHealthDataRequest{Steps: 100})

		assert.ErrorIs(t, err, ErrNoActiveSession)
	})
}

func TestHealthGetToday(t *testing.T) {
	t.Run("returns the saved snapshot", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.register(t, "Jane Roe", "jane@example.com")
		ctx := sessionCtx(user.User.ID)

		_, err := env.health.Save(ctx, &dto.SaveHealthDataRequest{Steps: 3000, WaterGlasses: 5})
		assert.NoError(t, err)

		snapshot, err := env.health.GetToday(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3000, snapshot.Steps)
		assert.Equal(t, 5, snapshot.WaterGlasses)
		assert.Equal(t, entity.Today(), snapshot.Date)
	})

	t.Run("defaults to zeros when nothing was saved", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.register(t, "Jane Roe", "jane@example.com")

		// Drop the registration row to simulate a day with no data.
		env.db.Where("user_id = ?", user.User.ID).Delete(&entity.HealthSnapshot{})

		snapshot, err := env.health.GetToday(sessionCtx(user.User.ID))

		assert.NoError(t, err)
		assert.Equal(t, 0, snapshot.Steps)
		assert.Equal(t, float64(0), snapshot.SleepHours)
		assert.Equal(t, entity.Today(), snapshot.Date)
	})
}
