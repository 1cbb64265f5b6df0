package usecase

import (
	"testing"

	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSymptomCreate(t *testing.T) {
	t.Run("date defaults to today", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.register(t, "Jane Roe", "jane@example.com")

		symptom, err := env.symptoms.Create(sessionCtx(user.User.ID), &dto.CreateSymptomRequest{
			Symptom:  "Headache",
			Severity: "Medium",
			Notes:    "After long screen time",
		})

		assert.NoError(t, err)
		assert.Equal(t, entity.Today(), symptom.Date)
		assert.Equal(t, "Medium", symptom.Severity)
	})

	t.Run("explicit date is kept", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.register(t, "Jane Roe", "jane@example.com")

		symptom, err := env.symptoms.Create(sessionCtx(user.User.ID), &dto.CreateSymptomRequest{
			Symptom:  "Sore throat",
			Severity: "Low",
			Date:     "2026-08-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-08-30", symptom.Date)
	})
}

func TestSymptomList(t *testing.T) {
	t.Run("newest day first", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.register(t, "Jane Roe", "jane@example.com")
		ctx := sessionCtx(user.User.ID)

		for _, s := range []struct {
			name string
			date string
		}{
			{"Fatigue", "2026-08-25"},
			{"Headache", "2026-08-29"},
			{"Nausea", "2026-08-27"},
		} {
			_, err := env.symptoms.Create(ctx, &dto.CreateSymptomRequest{
				Symptom:  s.name,
				Severity: "Low",
				Date:     s.date,
			})
			assert.NoError(t, err)
		}

		list, err := env.symptoms.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, "Headache", list.Symptoms[0].Symptom)
		assert.Equal(t, "Nausea", list.Symptoms[1].Symptom)
		assert.Equal(t, "Fatigue", list.Symptoms[2].Symptom)
	})
}
