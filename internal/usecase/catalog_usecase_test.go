package usecase

import (
	"context"
	"io"
	"testing"

	"healfinity-backend/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	env := newTestEnv(t)

	log := logrus.New()
	log.SetOutput(io.Discard)
	assert.NoError(t, seed.Run(env.db, log, false))

	t.Run("doctors sorted by rating descending", func(t *testing.T) {
		list, err := env.catalog.ListDoctors(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, "Dr. Sarah Johnson", list.Doctors[0].Name)
		assert.Equal(t, "4.9", list.Doctors[0].Rating.String())
		assert.Equal(t, "Dr. Michael Chen", list.Doctors[1].Name)
		assert.Equal(t, "Dr. Emily Rodriguez", list.Doctors[2].Name)
		assert.Contains(t, list.Doctors[0].Languages, "Spanish")
	})

	t.Run("instructors sorted by rating descending", func(t *testing.T) {
		list, err := env.catalog.ListInstructors(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, "Maya Patel", list.Instructors[0].Name)
		assert.Equal(t, "Priya Sharma", list.Instructors[2].Name)
	})

	t.Run("seeding again is a no-op", func(t *testing.T) {
		assert.NoError(t, seed.Run(env.db, log, false))

		list, err := env.catalog.ListDoctors(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 3, list.Total)
	})
}
