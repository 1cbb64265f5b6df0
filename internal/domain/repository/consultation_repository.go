package repository

import (
	"healfinity-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	// ListByUser returns consultations ordered by date ascending for display.
	ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Consultation, error)
}
