package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentTimeSlots are the fixed slots offered by the booking dialog.
var AppointmentTimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM",
	"02:00 PM", "03:00 PM", "04:00 PM",
}

// AppointmentConfirmation is a local acknowledgment of a mock booking.
// It is never persisted.
type AppointmentConfirmation struct {
	Reference   uuid.UUID
	DoctorID    string
	DoctorName  string
	Date        string
	Time        string
	ConfirmedAt time.Time
}
