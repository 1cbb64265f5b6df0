package repository

import (
	"healfinity-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	ListAll(db *gorm.DB) ([]entity.Doctor, error)
	Create(db *gorm.DB, doctor *entity.Doctor) error
}

type InstructorRepository interface {
	ListAll(db *gorm.DB) ([]entity.Instructor, error)
	Create(db *gorm.DB, instructor *entity.Instructor) error
}
