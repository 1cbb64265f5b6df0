package repository

import (
	"healfinity-backend/internal/domain/entity"
	domainRepo "healfinity-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type yogaSessionRepository struct{}

func NewYogaSessionRepository() domainRepo.YogaSessionRepository {
	return &yogaSessionRepository{}
}

func (r *yogaSessionRepository) Create(db *gorm.DB, session *entity.YogaSession) error {
	return db.Create(session).Error
}

func (r *yogaSessionRepository) ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.YogaSession, error) {
	sessions := make([]entity.YogaSession, 0)
	err := db.Where("user_id = ?", userID).Order("date ASC, time ASC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
