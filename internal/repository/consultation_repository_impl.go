package repository

import (
	"healfinity-backend/internal/domain/entity"
	domainRepo "healfinity-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Create(consultation).Error
}

func (r *consultationRepository) ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Consultation, error) {
	consultations := make([]entity.Consultation, 0)
	err := db.Where("user_id = ?", userID).Order("date ASC, time ASC").Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}
