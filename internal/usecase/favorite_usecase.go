package usecase

import (
	"context"
	"errors"

	"healfinity-backend/internal/converter"
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
	"healfinity-backend/internal/domain/repository"
	"healfinity-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrFavoriteExists  = errors.New("item is already in favorites")
	ErrInvalidItemType = errors.New("invalid favorite item type")
)

type FavoriteUsecase interface {
	Add(ctx context.Context, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error)
	Remove(ctx context.Context, itemType, itemID string) error
	List(ctx context.Context, itemType string) (*dto.FavoriteListResponse, error)
}

type favoriteUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	favoriteRepo repository.FavoriteRepository
	audit        service.AuditService
}

func NewFavoriteUsecase(db *gorm.DB, log *logrus.Logger, favoriteRepo repository.FavoriteRepository, audit service.AuditService) FavoriteUsecase {
	return &favoriteUsecase{
		db:           db,
		log:          log,
		favoriteRepo: favoriteRepo,
		audit:        audit,
	}
}

func (u *favoriteUsecase) Add(ctx context.Context, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	itemType, err := parseFavoriteType(req.ItemType)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	favorite := &entity.Favorite{
		UserID:   userID,
		ItemType: itemType,
		ItemID:   req.ItemID,
		ItemData: entity.JSON(req.ItemData),
	}

	inserted, err := u.favoriteRepo.Insert(db, favorite)
	if err != nil {
		u.log.Warnf("Failed to add favorite: %+v", err)
		return nil, err
	}
	if !inserted {
		return nil, ErrFavoriteExists
	}

	u.audit.Record(db, &userID, entity.AuditActionFavoriteAdd, entity.JSON{
		"item_type": req.ItemType,
		"item_id":   req.ItemID,
	})

	resp := converter.FavoriteToResponse(favorite)
	return &resp, nil
}

// Remove is idempotent: removing an item that is not saved succeeds.
func (u *favoriteUsecase) Remove(ctx context.Context, itemType, itemID string) error {
	userID, err := requireUserID(ctx)
	if err != nil {
		return err
	}

	parsed, err := parseFavoriteType(itemType)
	if err != nil {
		return err
	}

	db := u.db.WithContext(ctx)

	if err := u.favoriteRepo.Delete(db, userID, parsed, itemID); err != nil {
		u.log.Warnf("Failed to remove favorite: %+v", err)
		return err
	}

	u.audit.Record(db, &userID, entity.AuditActionFavoriteRemove, entity.JSON{
		"item_type": itemType,
		"item_id":   itemID,
	})

	return nil
}

// List returns the user's favorites newest first. An empty itemType means all
// types.
func (u *favoriteUsecase) List(ctx context.Context, itemType string) (*dto.FavoriteListResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	var filter *entity.FavoriteType
	if itemType != "" {
		parsed, err := parseFavoriteType(itemType)
		if err != nil {
			return nil, err
		}
		filter = &parsed
	}

	favorites, err := u.favoriteRepo.ListByUser(u.db.WithContext(ctx), userID, filter)
	if err != nil {
		u.log.Warnf("Failed to list favorites: %+v", err)
		return nil, err
	}

	return &dto.FavoriteListResponse{
		Favorites: converter.FavoritesToResponses(favorites),
		Total:     len(favorites),
	}, nil
}

func parseFavoriteType(s string) (entity.FavoriteType, error) {
	switch entity.FavoriteType(s) {
	case entity.FavoriteRemedy, entity.FavoriteRecipe, entity.FavoriteYogaSession:
		return entity.FavoriteType(s), nil
	default:
		return "", ErrInvalidItemType
	}
}
