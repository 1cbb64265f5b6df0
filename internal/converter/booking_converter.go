package converter

import (
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
)

func ConsultationToResponse(consultation *entity.Consultation) dto.ConsultationResponse {
	return dto.ConsultationResponse{
		ID:         consultation.ID,
		DoctorName: consultation.DoctorName,
		Date:       consultation.Date,
		Time:       consultation.Time,
		Type:       string(consultation.Modality),
		Status:     string(consultation.Status),
	}
}

func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		responses = append(responses, ConsultationToResponse(&consultations[i]))
	}
	return responses
}

func YogaSessionToResponse(session *entity.YogaSession) dto.YogaSessionResponse {
	return dto.YogaSessionResponse{
		ID:          session.ID,
		Instructor:  session.Instructor,
		SessionName: session.SessionName,
		Date:        session.Date,
		Time:        session.Time,
		Type:        session.Type,
		Status:      string(session.Status),
	}
}

func YogaSessionsToResponses(sessions []entity.YogaSession) []dto.YogaSessionResponse {
	responses := make([]dto.YogaSessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, YogaSessionToResponse(&sessions[i]))
	}
	return responses
}
