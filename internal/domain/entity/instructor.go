package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Instructor is a yoga catalog entry, seeded rather than user-created.
type Instructor struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Specialty  string          `gorm:"type:varchar(255);not null" json:"specialty"`
	Rating     decimal.Decimal `gorm:"type:decimal(2,1);not null" json:"rating"`
	Experience string          `gorm:"type:varchar(50)" json:"experience"`
	Price      string          `gorm:"type:varchar(20)" json:"price"`
	Bio        string          `gorm:"type:text" json:"bio"`
	ImageURL   string          `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Instructor) TableName() string {
	return "instructors"
}

func (i *Instructor) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
