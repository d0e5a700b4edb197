package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.ConfirmAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	confirmation, err := h.appointmentUsecase.ConfirmAppointment(r.Context(), vars["id"], &req)
	if err != nil {
		if writeDirectoryError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrAppointmentIncomplete):
			response.BadRequest(w, "Please select both date and time")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", confirmation)
}

func (h *AppointmentHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots := h.appointmentUsecase.TimeSlots(r.Context())
	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}
