package converter

import (
	"fmt"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// AppointmentConfirmationToResponse converts a confirmation to its DTO,
// building the user-facing acknowledgment message.
func AppointmentConfirmationToResponse(c *entity.AppointmentConfirmation) *dto.AppointmentConfirmationResponse {
	if c == nil {
		return nil
	}

	return &dto.AppointmentConfirmationResponse{
		Reference:   c.Reference,
		DoctorID:    c.DoctorID,
		DoctorName:  c.DoctorName,
		Date:        c.Date,
		Time:        c.Time,
		Message:     fmt.Sprintf("Your appointment with %s on %s at %s has been confirmed.", c.DoctorName, c.Date, c.Time),
		ConfirmedAt: c.ConfirmedAt,
	}
}
