package dto

import (
	"github.com/google/uuid"
)

type CreateConsultationRequest struct {
	DoctorName string `json:"doctor_name" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=video phone chat"`
}

type ConsultationResponse struct {
	ID         uuid.UUID `json:"id"`
	DoctorName string    `json:"doctor_name"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
	Total         int                    `json:"total"`
}
