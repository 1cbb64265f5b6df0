package handler

import (
	"encoding/json"
	"net/http"

	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/usecase"
	"healfinity-backend/pkg/response"
	"healfinity-backend/pkg/validator"
)

type SymptomHandler struct {
	symptomUsecase usecase.SymptomUsecase
	validator      *validator.CustomValidator
}

func NewSymptomHandler(symptomUsecase usecase.SymptomUsecase, validator *validator.CustomValidator) *SymptomHandler {
	return &SymptomHandler{
		symptomUsecase: symptomUsecase,
		validator:      validator,
	}
}

func (h *SymptomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSymptomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	symptom, err := h.symptomUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to log symptom")
		return
	}

	response.Success(w, http.StatusCreated, "Symptom logged successfully", symptom)
}

func (h *SymptomHandler) List(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.symptomUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list symptoms")
		return
	}

	response.Success(w, http.StatusOK, "Symptoms retrieved successfully", symptoms)
}
