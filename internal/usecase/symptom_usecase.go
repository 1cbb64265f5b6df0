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

type SymptomUsecase interface {
	Create(ctx context.Context, req *dto.CreateSymptomRequest) (*dto.SymptomResponse, error)
	List(ctx context.Context) (*dto.SymptomListResponse, error)
}

type symptomUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	symptomRepo repository.SymptomRepository
	audit       service.AuditService
}

func NewSymptomUsecase(db *gorm.DB, log *logrus.Logger, symptomRepo repository.SymptomRepository, audit service.AuditService) SymptomUsecase {
	return &symptomUsecase{
		db:          db,
		log:         log,
		symptomRepo: symptomRepo,
		audit:       audit,
	}
}

func (u *symptomUsecase) Create(ctx context.Context, req *dto.CreateSymptomRequest) (*dto.SymptomResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = entity.Today()
	}

	db := u.db.WithContext(ctx)

	symptom := &entity.Symptom{
		UserID:   userID,
		Symptom:  req.Symptom,
		Severity: entity.Severity(req.Severity),
		Notes:    req.Notes,
		Date:     date,
	}

	if err := u.symptomRepo.Create(db, symptom); err != nil {
		u.log.Warnf("Failed to create symptom: %+v", err)
		return nil, err
	}

	u.audit.Record(db, &userID, entity.AuditActionSymptomCreate, entity.JSON{
		"severity": req.Severity,
		"date":     date,
	})

	resp := converter.SymptomToResponse(symptom)
	return &resp, nil
}

func (u *symptomUsecase) List(ctx context.Context) (*dto.SymptomListResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	symptoms, err := u.symptomRepo.ListByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list symptoms: %+v", err)
		return nil, err
	}

	return &dto.SymptomListResponse{
		Symptoms: converter.SymptomsToResponses(symptoms),
		Total:    len(symptoms),
	}, nil
}
