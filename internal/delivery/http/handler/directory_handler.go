package handler

import (
	"errors"
	"net/http"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDirectoryHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
	}
}

func (h *DirectoryHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.directoryUsecase.Status(r.Context())
	response.Success(w, http.StatusOK, "Directory status retrieved successfully", status)
}

// Refresh re-fetches the doctor records. This is the retry action offered
// after a failed load.
func (h *DirectoryHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	status, err := h.directoryUsecase.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrDirectoryUnavailable) {
			response.ServiceUnavailable(w, status.Error, status)
			return
		}
		response.InternalServerError(w, "Failed to refresh directory")
		return
	}

	response.Success(w, http.StatusOK, "Directory refreshed successfully", status)
}

type directoryError struct {
	Status    entity.LoadStatus `json:"status"`
	Retryable bool              `json:"retryable"`
}

// writeDirectoryError answers requests that need loaded records while the
// store is loading or failed. It reports false for any other error.
func writeDirectoryError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, usecase.ErrDirectoryLoading):
		response.ServiceUnavailable(w, "Loading doctors...", directoryError{
			Status: entity.LoadStatusLoading,
		})
		return true
	case errors.Is(err, usecase.ErrDirectoryUnavailable):
		response.ServiceUnavailable(w, "Failed to load doctors data. Please try again.", directoryError{
			Status:    entity.LoadStatusFailed,
			Retryable: true,
		})
		return true
	default:
		return false
	}
}
