package handler

import (
	"encoding/json"
	"net/http"

	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/usecase"
	"healfinity-backend/pkg/response"
	"healfinity-backend/pkg/validator"
)

type HealthHandler struct {
	healthUsecase usecase.HealthUsecase
	validator     *validator.CustomValidator
}

func NewHealthHandler(healthUsecase usecase.HealthUsecase, validator *validator.CustomValidator) *HealthHandler {
	return &HealthHandler{
		healthUsecase: healthUsecase,
		validator:     validator,
	}
}

func (h *HealthHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveHealthDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	snapshot, err := h.healthUsecase.Save(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save health data")
		return
	}

	response.Success(w, http.StatusOK, "Health data saved successfully", snapshot)
}

func (h *HealthHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.healthUsecase.GetToday(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load health data")
		return
	}

	response.Success(w, http.StatusOK, "Health data retrieved successfully", snapshot)
}
