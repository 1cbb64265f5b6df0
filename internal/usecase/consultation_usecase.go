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

type ConsultationUsecase interface {
	Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	List(ctx context.Context) (*dto.ConsultationListResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	audit            service.AuditService
}

func NewConsultationUsecase(db *gorm.DB, log *logrus.Logger, consultationRepo repository.ConsultationRepository, audit service.AuditService) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
		audit:            audit,
	}
}

// Create books a consultation. Bookings are confirmed immediately; there is
// no approval step.
func (u *consultationUsecase) Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	consultation := &entity.Consultation{
		UserID:     userID,
		DoctorName: req.DoctorName,
		Date:       req.Date,
		Time:       req.Time,
		Modality:   entity.Modality(req.Type),
		Status:     entity.BookingStatusConfirmed,
	}

	if err := u.consultationRepo.Create(db, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	u.audit.Record(db, &userID, entity.AuditActionConsultationCreate, entity.JSON{
		"doctor_name": req.DoctorName,
		"date":        req.Date,
	})

	resp := converter.ConsultationToResponse(consultation)
	return &resp, nil
}

func (u *consultationUsecase) List(ctx context.Context) (*dto.ConsultationListResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	consultations, err := u.consultationRepo.ListByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list consultations: %+v", err)
		return nil, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToResponses(consultations),
		Total:         len(consultations),
	}, nil
}
