package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Doctor is a consultation catalog entry, seeded rather than user-created.
type Doctor struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Specialty    string          `gorm:"type:varchar(255);not null" json:"specialty"`
	Rating       decimal.Decimal `gorm:"type:decimal(2,1);not null" json:"rating"`
	Reviews      int             `gorm:"default:0" json:"reviews"`
	Experience   string          `gorm:"type:varchar(50)" json:"experience"`
	Languages    StringList      `gorm:"type:json" json:"languages"`
	Availability string          `gorm:"type:varchar(100)" json:"availability"`
	Price        string          `gorm:"type:varchar(20)" json:"price"`
	Bio          string          `gorm:"type:text" json:"bio"`
	ImageURL     string          `gorm:"type:text" json:"image_url,omitempty"`
	VideoURL     string          `gorm:"type:text" json:"video_url,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// StringList persists a []string as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported string list column type")
	}
	return json.Unmarshal(bytes, l)
}
