package handler

import (
	"net/http"

	"healfinity-backend/internal/usecase"
	"healfinity-backend/pkg/response"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

func (h *CatalogHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.catalogUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *CatalogHandler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.catalogUsecase.ListInstructors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list instructors")
		return
	}

	response.Success(w, http.StatusOK, "Instructors retrieved successfully", instructors)
}
