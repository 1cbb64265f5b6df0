package converter

import (
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
)

func FavoriteToResponse(favorite *entity.Favorite) dto.FavoriteResponse {
	return dto.FavoriteResponse{
		ID:        favorite.ID,
		ItemType:  string(favorite.ItemType),
		ItemID:    favorite.ItemID,
		ItemData:  map[string]interface{}(favorite.ItemData),
		CreatedAt: favorite.CreatedAt,
	}
}

func FavoritesToResponses(favorites []entity.Favorite) []dto.FavoriteResponse {
	responses := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		responses = append(responses, FavoriteToResponse(&favorites[i]))
	}
	return responses
}
