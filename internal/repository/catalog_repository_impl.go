package repository

import (
	"healfinity-backend/internal/domain/entity"
	domainRepo "healfinity-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) ListAll(db *gorm.DB) ([]entity.Doctor, error) {
	doctors := make([]entity.Doctor, 0)
	if err := db.Order("rating DESC, name ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

type instructorRepository struct{}

func NewInstructorRepository() domainRepo.InstructorRepository {
	return &instructorRepository{}
}

func (r *instructorRepository) ListAll(db *gorm.DB) ([]entity.Instructor, error) {
	instructors := make([]entity.Instructor, 0)
	if err := db.Order("rating DESC, name ASC").Find(&instructors).Error; err != nil {
		return nil, err
	}
	return instructors, nil
}

func (r *instructorRepository) Create(db *gorm.DB, instructor *entity.Instructor) error {
	return db.Create(instructor).Error
}
