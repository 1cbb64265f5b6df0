package database

import (
	"fmt"

	"healfinity-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// Migrate applies the schema. AutoMigrate keeps the postgres and sqlite
// variants on the same logical schema without per-dialect migration files.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.HealthSnapshot{},
		&entity.Favorite{},
		&entity.Consultation{},
		&entity.YogaSession{},
		&entity.Symptom{},
		&entity.Doctor{},
		&entity.Instructor{},
		&entity.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
