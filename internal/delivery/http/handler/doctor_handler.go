package handler

import (
	"errors"
	"net/http"

	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const noDoctorsMessage = "No doctors found matching your criteria."

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	log              *logrus.Logger
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, log *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		log:              log,
	}
}

// ListDoctors filters and sorts the directory using the request's query
// parameters as the filter state.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryUsecase.ListDoctors(r.Context(), r.URL.Query())
	if err != nil {
		if writeDirectoryError(w, err) {
			return
		}
		h.log.Errorf("Failed to list doctors: %+v", err)
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	message := result.Summary
	if result.Found == 0 {
		message = noDoctorsMessage
	}

	response.SuccessWithMeta(w, http.StatusOK, message, result, &response.Meta{
		Found: result.Found,
		Total: result.Total,
		Query: result.Query,
	})
}

func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryUsecase.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.log.Errorf("Failed to get suggestions: %+v", err)
		response.InternalServerError(w, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", result)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		if writeDirectoryError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}
