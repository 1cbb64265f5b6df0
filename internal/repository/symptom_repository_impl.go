package repository

import (
	"healfinity-backend/internal/domain/entity"
	domainRepo "healfinity-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type symptomRepository struct{}

func NewSymptomRepository() domainRepo.SymptomRepository {
	return &symptomRepository{}
}

func (r *symptomRepository) Create(db *gorm.DB, symptom *entity.Symptom) error {
	return db.Create(symptom).Error
}

func (r *symptomRepository) ListByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Symptom, error) {
	symptoms := make([]entity.Symptom, 0)
	err := db.Where("user_id = ?", userID).Order("date DESC, created_at DESC").Find(&symptoms).Error
	if err != nil {
		return nil, err
	}
	return symptoms, nil
}
