package dto

import (
	"github.com/google/uuid"
)

type CreateYogaSessionRequest struct {
	Instructor  string `json:"instructor" validate:"required"`
	SessionName string `json:"session_name" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required"`
	Type        string `json:"type" validate:"omitempty,max=50"`
}

type YogaSessionResponse struct {
	ID          uuid.UUID `json:"id"`
	Instructor  string    `json:"instructor"`
	SessionName string    `json:"session_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
}

type YogaSessionListResponse struct {
	Sessions []YogaSessionResponse `json:"sessions"`
	Total    int                   `json:"total"`
}
