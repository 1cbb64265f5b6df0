package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Age      int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Avatar   string `json:"avatar" validate:"omitempty,max=16"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest carries a partial profile edit; nil fields stay
// untouched.
type UpdateProfileRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1"`
	Phone       *string             `json:"phone" validate:"omitempty,max=20"`
	Age         *int                `json:"age" validate:"omitempty,gte=0,lte=150"`
	Avatar      *string             `json:"avatar" validate:"omitempty,max=16"`
	Preferences *PreferencesPayload `json:"preferences"`
}

type PreferencesPayload struct {
	Notifications NotificationPreferencesPayload `json:"notifications"`
	Privacy       PrivacyPreferencesPayload      `json:"privacy"`
}

type NotificationPreferencesPayload struct {
	Appointments bool `json:"appointments"`
	Medications  bool `json:"medications"`
	HealthTips   bool `json:"health_tips"`
	Yoga         bool `json:"yoga"`
	Diet         bool `json:"diet"`
}

type PrivacyPreferencesPayload struct {
	ShareHealthData bool `json:"share_health_data"`
	PublicProfile   bool `json:"public_profile"`
	DataAnalytics   bool `json:"data_analytics"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ProfileResponse is the denormalized per-user aggregate the client renders
// from: profile fields plus today's metrics and the booking lists.
type ProfileResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Phone         string                 `json:"phone,omitempty"`
	Age           int                    `json:"age,omitempty"`
	Avatar        string                 `json:"avatar"`
	Preferences   PreferencesPayload     `json:"preferences"`
	HealthData    HealthSnapshotResponse `json:"health_data"`
	Consultations []ConsultationResponse `json:"consultations"`
	YogaSessions  []YogaSessionResponse  `json:"yoga_sessions"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// AuthResponse pairs the fresh session tokens with the hydrated aggregate.
type AuthResponse struct {
	User   *ProfileResponse `json:"user"`
	Tokens TokenResponse    `json:"tokens"`
}
