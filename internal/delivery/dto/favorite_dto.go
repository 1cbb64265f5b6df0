package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddFavoriteRequest struct {
	ItemType string                 `json:"item_type" validate:"required,oneof=remedy recipe yoga_session"`
	ItemID   string                 `json:"item_id" validate:"required"`
	ItemData map[string]interface{} `json:"item_data" validate:"required"`
}

type FavoriteResponse struct {
	ID        uuid.UUID              `json:"id"`
	ItemType  string                 `json:"item_type"`
	ItemID    string                 `json:"item_id"`
	ItemData  map[string]interface{} `json:"item_data"`
	CreatedAt time.Time              `json:"created_at"`
}

type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	Total     int                `json:"total"`
}
