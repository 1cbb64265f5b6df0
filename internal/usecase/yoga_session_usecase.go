package usecase

import (
	"context"

	"healfinity-backend/internal/converter"
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
	"healfinity-backend/internal/domain/repository"
	"healfinity-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type YogaSessionUsecase interface {
	Create(ctx context.Context, req *dto.CreateYogaSessionRequest) (*dto.YogaSessionResponse, error)
	List(ctx context.Context) (*dto.YogaSessionListResponse, error)
}

type yogaSessionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	yogaSessionRepo repository.YogaSessionRepository
	audit           service.AuditService
}

func NewYogaSessionUsecase(db *gorm.DB, log *logrus.Logger, yogaSessionRepo repository.YogaSessionRepository, audit service.AuditService) YogaSessionUsecase {
	return &yogaSessionUsecase{
		db:              db,
		log:             log,
		yogaSessionRepo: yogaSessionRepo,
		audit:           audit,
	}
}

func (u *yogaSessionUsecase) Create(ctx context.Context, req *dto.CreateYogaSessionRequest) (*dto.YogaSessionResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	session := &entity.YogaSession{
		UserID:      userID,
		Instructor:  req.Instructor,
		SessionName: req.SessionName,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Status:      entity.BookingStatusConfirmed,
	}

	if err := u.yogaSessionRepo.Create(db, session); err != nil {
		u.log.Warnf("Failed to create yoga session: %+v", err)
		return nil, err
	}

	u.audit.Record(db, &userID, entity.AuditActionYogaSessionCreate, entity.JSON{
		"instructor": req.Instructor,
		"date":       req.Date,
	})

	resp := converter.YogaSessionToResponse(session)
	return &resp, nil
}

func (u *yogaSessionUsecase) List(ctx context.Context) (*dto.YogaSessionListResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := u.yogaSessionRepo.ListByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list yoga sessions: %+v", err)
		return nil, err
	}

	return &dto.YogaSessionListResponse{
		Sessions: converter.YogaSessionsToResponses(sessions),
		Total:    len(sessions),
	}, nil
}
