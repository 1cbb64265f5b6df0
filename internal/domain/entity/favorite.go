package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteType scopes catalog item ids.
type FavoriteType string

const (
	FavoriteRemedy      FavoriteType = "remedy"
	FavoriteRecipe      FavoriteType = "recipe"
	FavoriteYogaSession FavoriteType = "yoga_session"
)

// Favorite is a saved catalog item. ItemData is a frozen copy of the item's
// fields at save time, so later catalog edits do not change saved favorites.
// Natural key (user_id, item_type, item_id): at most one save per item.
type Favorite struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_type_item" json:"user_id"`
	ItemType  FavoriteType `gorm:"type:varchar(20);not null;uniqueIndex:idx_favorites_user_type_item" json:"item_type"`
	ItemID    string       `gorm:"type:varchar(64);not null;uniqueIndex:idx_favorites_user_type_item" json:"item_id"`
	ItemData  JSON         `gorm:"type:json" json:"item_data"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
