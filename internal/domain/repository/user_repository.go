package repository

import (
	"healfinity-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repositories receive the *gorm.DB per call so usecases can hand them a
// transaction.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Count(db *gorm.DB) (int64, error)
}
