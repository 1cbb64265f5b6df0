package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// YogaSession is a booked class with an instructor. Same lifecycle as a
// consultation.
type YogaSession struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Instructor  string        `gorm:"type:varchar(255);not null" json:"instructor"`
	SessionName string        `gorm:"type:varchar(255);not null" json:"session_name"`
	Date        string        `gorm:"type:date;not null;index" json:"date"`
	Time        string        `gorm:"type:varchar(20);not null" json:"time"`
	Type        string        `gorm:"type:varchar(50)" json:"type"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (YogaSession) TableName() string {
	return "yoga_sessions"
}

func (y *YogaSession) BeforeCreate(tx *gorm.DB) error {
	if y.ID == uuid.Nil {
		y.ID = uuid.New()
	}
	return nil
}
