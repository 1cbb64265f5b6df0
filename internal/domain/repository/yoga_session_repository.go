package repository

import (
	"healfinity-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type YogaSessionRepository interface {
	Create(db *gorm.DB, session *entity.YogaSession) error
	// ListByUser returns sessions ordered by date ascending for display.
	ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.YogaSession, error)
}
