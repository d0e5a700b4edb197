package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ConfirmAppointmentRequest struct {
	Date string `json:"date" validate:"required,notblank"`
	Time string `json:"time" validate:"required,notblank"`
}

// Response DTOs

type AppointmentConfirmationResponse struct {
	Reference   uuid.UUID `json:"reference"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Message     string    `json:"message"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type TimeSlotListResponse struct {
	Slots []string `json:"slots"`
}
