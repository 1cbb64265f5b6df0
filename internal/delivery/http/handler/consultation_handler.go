package handler

import (
	"encoding/json"
	"net/http"

	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/usecase"
	"healfinity-backend/pkg/response"
	"healfinity-backend/pkg/validator"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to book consultation")
		return
	}

	response.Success(w, http.StatusCreated, "Consultation booked successfully", consultation)
}

func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	consultations, err := h.consultationUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list consultations")
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}
