package converter

import (
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Rating:       doctor.Rating,
		Reviews:      doctor.Reviews,
		Experience:   doctor.Experience,
		Languages:    doctor.Languages,
		Availability: doctor.Availability,
		Price:        doctor.Price,
		Bio:          doctor.Bio,
		ImageURL:     doctor.ImageURL,
		VideoURL:     doctor.VideoURL,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, DoctorToResponse(&doctors[i]))
	}
	return responses
}

func InstructorToResponse(instructor *entity.Instructor) dto.InstructorResponse {
	return dto.InstructorResponse{
		ID:         instructor.ID,
		Name:       instructor.Name,
		Specialty:  instructor.Specialty,
		Rating:     instructor.Rating,
		Experience: instructor.Experience,
		Price:      instructor.Price,
		Bio:        instructor.Bio,
		ImageURL:   instructor.ImageURL,
	}
}

func InstructorsToResponses(instructors []entity.Instructor) []dto.InstructorResponse {
	responses := make([]dto.InstructorResponse, 0, len(instructors))
	for i := range instructors {
		responses = append(responses, InstructorToResponse(&instructors[i]))
	}
	return responses
}
