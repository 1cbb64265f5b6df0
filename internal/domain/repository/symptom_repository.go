package repository

import (
	"healfinity-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SymptomRepository interface {
	Create(db *gorm.DB, symptom *entity.Symptom) error
	// ListByUser returns symptoms newest day first.
	ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Symptom, error)
}
