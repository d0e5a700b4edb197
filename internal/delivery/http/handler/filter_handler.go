package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"
)

type FilterHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewFilterHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *FilterHandler {
	return &FilterHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// ApplyEvent turns one filter panel interaction into the next filter state
// and the query string the URL should carry.
func (h *FilterHandler) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.directoryUsecase.ApplyFilterEvent(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidFilterValue) {
			response.Error(w, http.StatusBadRequest, "Invalid filter value", map[string]string{"value": err.Error()})
			return
		}
		response.InternalServerError(w, "Failed to apply filter")
		return
	}

	response.Success(w, http.StatusOK, "Filters updated successfully", result)
}

func (h *FilterHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties := h.directoryUsecase.Specialties(r.Context())
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
