package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Severity grades a logged symptom.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Symptom is an append-only user log entry.
type Symptom struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Symptom   string    `gorm:"type:text;not null" json:"symptom"`
	Severity  Severity  `gorm:"type:varchar(10);not null" json:"severity"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	Date      string    `gorm:"type:date;not null;index" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Symptom) TableName() string {
	return "symptoms"
}

func (s *Symptom) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
