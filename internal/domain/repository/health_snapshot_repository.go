package repository

import (
	"healfinity-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthSnapshotRepository interface {
	// Upsert writes the snapshot for its (user, date) key, overwriting any
	// existing row for that day.
	Upsert(db *gorm.DB, snapshot *entity.HealthSnapshot) error
	// FindByUserAndDate returns (snapshot, found, error); absence is not an
	// error.
	FindByUserAndDate(db *gorm.DB, userID uuid.UUID, date string) (*entity.HealthSnapshot, bool, error)
}
