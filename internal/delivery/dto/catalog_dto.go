package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DoctorResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Specialty    string          `json:"specialty"`
	Rating       decimal.Decimal `json:"rating"`
	Reviews      int             `json:"reviews"`
	Experience   string          `json:"experience"`
	Languages    []string        `json:"languages"`
	Availability string          `json:"availability"`
	Price        string          `json:"price"`
	Bio          string          `json:"bio"`
	ImageURL     string          `json:"image_url,omitempty"`
	VideoURL     string          `json:"video_url,omitempty"`
}

type InstructorResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Specialty  string          `json:"specialty"`
	Rating     decimal.Decimal `json:"rating"`
	Experience string          `json:"experience"`
	Price      string          `json:"price"`
	Bio        string          `json:"bio"`
	ImageURL   string          `json:"image_url,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type InstructorListResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
	Total       int                  `json:"total"`
}
