package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account row every other table hangs off.
type User struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string      `gorm:"type:text;not null" json:"-"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string      `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Age         int         `json:"age,omitempty"`
	Avatar      string      `gorm:"type:varchar(16)" json:"avatar"`
	Preferences Preferences `gorm:"type:json" json:"preferences"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	HealthData    []HealthSnapshot `gorm:"foreignKey:UserID" json:"health_data,omitempty"`
	Consultations []Consultation   `gorm:"foreignKey:UserID" json:"consultations,omitempty"`
	YogaSessions  []YogaSession    `gorm:"foreignKey:UserID" json:"yoga_sessions,omitempty"`
	Symptoms      []Symptom        `gorm:"foreignKey:UserID" json:"symptoms,omitempty"`
	Favorites     []Favorite       `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the ID in Go so both the postgres and sqlite stores
// work without a database-side uuid function.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// DeriveAvatar builds the fallback avatar: uppercase initials of each
// whitespace-separated token of the name. "Jane Roe" -> "JR".
func DeriveAvatar(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(token)
		b.WriteString(strings.ToUpper(string(r)))
	}
	if b.Len() == 0 {
		return "U"
	}
	return b.String()
}

// Preferences is the per-user settings block stored as a JSON column.
type Preferences struct {
	Notifications NotificationPreferences `json:"notifications"`
	Privacy       PrivacyPreferences      `json:"privacy"`
}

type NotificationPreferences struct {
	Appointments bool `json:"appointments"`
	Medications  bool `json:"medications"`
	HealthTips   bool `json:"health_tips"`
	Yoga         bool `json:"yoga"`
	Diet         bool `json:"diet"`
}

type PrivacyPreferences struct {
	ShareHealthData bool `json:"share_health_data"`
	PublicProfile   bool `json:"public_profile"`
	DataAnalytics   bool `json:"data_analytics"`
}

// DefaultPreferences are applied at registration.
func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: NotificationPreferences{
			Appointments: true,
			Medications:  true,
			HealthTips:   true,
			Yoga:         false,
			Diet:         true,
		},
		Privacy: PrivacyPreferences{
			ShareHealthData: false,
			PublicProfile:   false,
			DataAnalytics:   true,
		},
	}
}

// Value implements driver.Valuer so Preferences persist as JSON.
func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *Preferences) Scan(value interface{}) error {
	if value == nil {
		*p = DefaultPreferences()
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported preferences column type")
	}
	return json.Unmarshal(bytes, p)
}
