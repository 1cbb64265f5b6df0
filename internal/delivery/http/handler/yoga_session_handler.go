package handler

import (
	"encoding/json"
	"net/http"

	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/usecase"
	"healfinity-backend/pkg/response"
	"healfinity-backend/pkg/validator"
)

type YogaSessionHandler struct {
	yogaSessionUsecase usecase.YogaSessionUsecase
	validator          *validator.CustomValidator
}

func NewYogaSessionHandler(yogaSessionUsecase usecase.YogaSessionUsecase, validator *validator.CustomValidator) *YogaSessionHandler {
	return &YogaSessionHandler{
		yogaSessionUsecase: yogaSessionUsecase,
		validator:          validator,
	}
}

func (h *YogaSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateYogaSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.yogaSessionUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to book yoga session")
		return
	}

	response.Success(w, http.StatusCreated, "Yoga session booked successfully", session)
}

func (h *YogaSessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.yogaSessionUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list yoga sessions")
		return
	}

	response.Success(w, http.StatusOK, "Yoga sessions retrieved successfully", sessions)
}
