package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SnapshotDateFormat is the calendar-day key for health_data rows.
const SnapshotDateFormat = "2006-01-02"

// HealthSnapshot is one user's daily metrics. Natural key (user_id, date):
// editing metrics twice on the same day overwrites the existing row.
type HealthSnapshot struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_health_data_user_date" json:"user_id"`
	Steps        int       `gorm:"not null;default:0" json:"steps"`
	HeartRate    int       `gorm:"not null;default:0" json:"heart_rate"`
	SleepHours   float64   `gorm:"not null;default:0" json:"sleep_hours"`
	WaterGlasses int       `gorm:"not null;default:0" json:"water_glasses"`
	Weight       float64   `gorm:"not null;default:0" json:"weight"`
	Date         string    `gorm:"type:date;not null;uniqueIndex:idx_health_data_user_date" json:"date"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (HealthSnapshot) TableName() string {
	return "health_data"
}

func (s *HealthSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Today returns the current calendar day in snapshot key format.
func Today() string {
	return time.Now().Format(SnapshotDateFormat)
}

// ZeroSnapshot is the all-zero snapshot a fresh account starts with and the
// default served when no row exists for the day.
func ZeroSnapshot(userID uuid.UUID, date string) *HealthSnapshot {
	return &HealthSnapshot{
		UserID: userID,
		Date:   date,
	}
}
