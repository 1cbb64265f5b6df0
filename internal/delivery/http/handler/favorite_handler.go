package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/usecase"
	"healfinity-backend/pkg/response"
	"healfinity-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type FavoriteHandler struct {
	favoriteUsecase usecase.FavoriteUsecase
	validator       *validator.CustomValidator
}

func NewFavoriteHandler(favoriteUsecase usecase.FavoriteUsecase, validator *validator.CustomValidator) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUsecase: favoriteUsecase,
		validator:       validator,
	}
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	favorite, err := h.favoriteUsecase.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFavoriteExists):
			response.Conflict(w, "Item is already in favorites")
		case errors.Is(err, usecase.ErrInvalidItemType):
			response.Error(w, http.StatusBadRequest, "Invalid item type", nil)
		default:
			response.InternalServerError(w, "Failed to add favorite")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Favorite added successfully", favorite)
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	err := h.favoriteUsecase.Remove(r.Context(), vars["itemType"], vars["itemID"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidItemType):
			response.Error(w, http.StatusBadRequest, "Invalid item type", nil)
		default:
			response.InternalServerError(w, "Failed to remove favorite")
		}
		return
	}

	response.Success(w, http.StatusOK, "Favorite removed successfully", nil)
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	itemType := r.URL.Query().Get("type")

	favorites, err := h.favoriteUsecase.List(r.Context(), itemType)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidItemType):
			response.Error(w, http.StatusBadRequest, "Invalid item type", nil)
		default:
			response.InternalServerError(w, "Failed to list favorites")
		}
		return
	}

	response.Success(w, http.StatusOK, "Favorites retrieved successfully", favorites)
}
