package usecase

import (
	"context"

	"healfinity-backend/internal/converter"
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogUsecase serves the read-only provider directory the booking screens
// are built from.
type CatalogUsecase interface {
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	ListInstructors(ctx context.Context) (*dto.InstructorListResponse, error)
}

type catalogUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	instructorRepo repository.InstructorRepository
}

func NewCatalogUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, instructorRepo repository.InstructorRepository) CatalogUsecase {
	return &catalogUsecase{
		db:             db,
		log:            log,
		doctorRepo:     doctorRepo,
		instructorRepo: instructorRepo,
	}
}

func (u *catalogUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.ListAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *catalogUsecase) ListInstructors(ctx context.Context) (*dto.InstructorListResponse, error) {
	instructors, err := u.instructorRepo.ListAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list instructors: %+v", err)
		return nil, err
	}

	return &dto.InstructorListResponse{
		Instructors: converter.InstructorsToResponses(instructors),
		Total:       len(instructors),
	}, nil
}
