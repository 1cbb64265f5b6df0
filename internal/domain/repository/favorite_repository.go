package repository

import (
	"healfinity-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	// Insert atomically saves the favorite unless its (user, type, item) key
	// already exists. Returns false when the row was already present.
	Insert(db *gorm.DB, favorite *entity.Favorite) (bool, error)
	// Delete removes the favorite; deleting an absent row is not an error.
	Delete(db *gorm.DB, userID uuid.UUID, itemType entity.FavoriteType, itemID string) error
	// ListByUser returns favorites newest first, optionally filtered by type.
	ListByUser(db *gorm.DB, userID uuid.UUID, itemType *entity.FavoriteType) ([]entity.Favorite, error)
}
