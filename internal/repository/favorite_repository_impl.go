package repository

import (
	"healfinity-backend/internal/domain/entity"
	domainRepo "healfinity-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type favoriteRepository struct{}

func NewFavoriteRepository() domainRepo.FavoriteRepository {
	return &favoriteRepository{}
}

// Insert relies on ON CONFLICT DO NOTHING against the natural key, so the
// existence check and the insert are one statement with no race between them.
func (r *favoriteRepository) Insert(db *gorm.DB, favorite *entity.Favorite) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_type"}, {Name: "item_id"}},
		DoNothing: true,
	}).Create(favorite)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *favoriteRepository) Delete(db *gorm.DB, userID uuid.UUID, itemType entity.FavoriteType, itemID string) error {
	return db.
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Delete(&entity.Favorite{}).Error
}

func (r *favoriteRepository) ListByUser(db *gorm.DB, userID uuid.UUID, itemType *entity.FavoriteType) ([]entity.Favorite, error) {
	query := db.Where("user_id = ?", userID)
	if itemType != nil {
		query = query.Where("item_type = ?", *itemType)
	}

	favorites := make([]entity.Favorite, 0)
	if err := query.Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}
