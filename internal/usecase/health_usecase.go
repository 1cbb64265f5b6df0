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

type HealthUsecase interface {
	Save(ctx context.Context, req *dto.SaveHealthDataRequest) (*dto.HealthSnapshotResponse, error)
	GetToday(ctx context.Context) (*dto.HealthSnapshotResponse, error)
}

type healthUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	snapshotRepo repository.HealthSnapshotRepository
	audit        service.AuditService
}

func NewHealthUsecase(db *gorm.DB, log *logrus.Logger, snapshotRepo repository.HealthSnapshotRepository, audit service.AuditService) HealthUsecase {
	return &healthUsecase{
		db:           db,
		log:          log,
		snapshotRepo: snapshotRepo,
		audit:        audit,
	}
}

// Save writes the full set of today's metrics. The write replaces the day's
// snapshot as a whole, so saving twice in one day leaves a single row.
func (u *healthUsecase) Save(ctx context.Context, req *dto.SaveHealthDataRequest) (*dto.HealthSnapshotResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	snapshot := &entity.HealthSnapshot{
		UserID:       userID,
		Date:         entity.Today(),
		Steps:        req.Steps,
		HeartRate:    req.HeartRate,
		SleepHours:   req.SleepHours,
		WaterGlasses: req.WaterGlasses,
		Weight:       req.Weight,
	}

	if err := u.snapshotRepo.Upsert(db, snapshot); err != nil {
		u.log.Warnf("Failed to save health snapshot: %+v", err)
		return nil, err
	}

	u.audit.Record(db, &userID, entity.AuditActionHealthSave, entity.JSON{"date": snapshot.Date})

	saved, _, err := u.snapshotRepo.FindByUserAndDate(db, userID, snapshot.Date)
	if err != nil {
		u.log.Warnf("Failed to reload health snapshot: %+v", err)
		return nil, err
	}

	resp := converter.SnapshotToResponse(saved)
	return &resp, nil
}

// GetToday returns today's snapshot, or an all-zero one when the user has not
// saved anything yet.
func (u *healthUsecase) GetToday(ctx context.Context) (*dto.HealthSnapshotResponse, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, _, err := u.snapshotRepo.FindByUserAndDate(u.db.WithContext(ctx), userID, entity.Today())
	if err != nil {
		u.log.Warnf("Failed to load health snapshot: %+v", err)
		return nil, err
	}

	resp := converter.SnapshotToResponse(snapshot)
	return &resp, nil
}
