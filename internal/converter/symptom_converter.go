package converter

import (
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
)

func SymptomToResponse(symptom *entity.Symptom) dto.SymptomResponse {
	return dto.SymptomResponse{
		ID:       symptom.ID,
		Symptom:  symptom.Symptom,
		Severity: string(symptom.Severity),
		Notes:    symptom.Notes,
		Date:     symptom.Date,
	}
}

func SymptomsToResponses(symptoms []entity.Symptom) []dto.SymptomResponse {
	responses := make([]dto.SymptomResponse, 0, len(symptoms))
	for i := range symptoms {
		responses = append(responses, SymptomToResponse(&symptoms[i]))
	}
	return responses
}
