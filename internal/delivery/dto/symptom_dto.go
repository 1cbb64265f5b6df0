package dto

import (
	"github.com/google/uuid"
)

type CreateSymptomRequest struct {
	Symptom  string `json:"symptom" validate:"required"`
	Severity string `json:"severity" validate:"required,oneof=Low Medium High"`
	Notes    string `json:"notes"`
	// Date defaults to today when omitted.
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type SymptomResponse struct {
	ID       uuid.UUID `json:"id"`
	Symptom  string    `json:"symptom"`
	Severity string    `json:"severity"`
	Notes    string    `json:"notes,omitempty"`
	Date     string    `json:"date"`
}

type SymptomListResponse struct {
	Symptoms []SymptomResponse `json:"symptoms"`
	Total    int               `json:"total"`
}
