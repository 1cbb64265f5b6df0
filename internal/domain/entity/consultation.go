package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is shared by consultations and yoga sessions.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Modality is how a consultation takes place.
type Modality string

const (
	ModalityVideo Modality = "video"
	ModalityPhone Modality = "phone"
	ModalityChat  Modality = "chat"
)

// Consultation is a booked doctor appointment.
type Consultation struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	DoctorName string        `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Date       string        `gorm:"type:date;not null;index" json:"date"`
	Time       string        `gorm:"type:varchar(20);not null" json:"time"`
	Modality   Modality      `gorm:"type:varchar(10);not null" json:"type"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Consultation) TableName() string {
	return "consultations"
}

func (c *Consultation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// IsConfirmed checks if the booking is confirmed
func (c *Consultation) IsConfirmed() bool {
	return c.Status == BookingStatusConfirmed
}

// Cancel changes the booking status to cancelled
func (c *Consultation) Cancel() {
	c.Status = BookingStatusCancelled
}
