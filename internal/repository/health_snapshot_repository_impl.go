package repository

import (
	"healfinity-backend/internal/domain/entity"
	domainRepo "healfinity-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type healthSnapshotRepository struct{}

func NewHealthSnapshotRepository() domainRepo.HealthSnapshotRepository {
	return &healthSnapshotRepository{}
}

func (r *healthSnapshotRepository) Upsert(db *gorm.DB, snapshot *entity.HealthSnapshot) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"steps", "heart_rate", "sleep_hours", "water_glasses", "weight",
		}),
	}).Create(snapshot).Error
}

func (r *healthSnapshotRepository) FindByUserAndDate(db *gorm.DB, userID uuid.UUID, date string) (*entity.HealthSnapshot, bool, error) {
	var snapshot entity.HealthSnapshot
	result := db.Where("user_id = ? AND date = ?", userID, date).Limit(1).Find(&snapshot)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return &snapshot, true, nil
}
