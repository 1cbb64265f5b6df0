package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserRegister       = "user.register"
	AuditActionUserLogin          = "user.login"
	AuditActionUserLogout         = "user.logout"
	AuditActionProfileUpdate      = "profile.update"
	AuditActionHealthSave         = "health.save"
	AuditActionFavoriteAdd        = "favorite.add"
	AuditActionFavoriteRemove     = "favorite.remove"
	AuditActionConsultationCreate = "consultation.create"
	AuditActionYogaSessionCreate  = "yoga_session.create"
	AuditActionSymptomCreate      = "symptom.create"
)
