package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/directory"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrAppointmentIncomplete = errors.New("appointment date and time are required")

const appointmentDateLayout = "2006-01-02"

type AppointmentUsecase interface {
	ConfirmAppointment(ctx context.Context, doctorID string, req *dto.ConfirmAppointmentRequest) (*dto.AppointmentConfirmationResponse, error)
	TimeSlots(ctx context.Context) *dto.TimeSlotListResponse
}

type appointmentUsecase struct {
	log   *logrus.Logger
	store *service.RecordStore
	now   func() time.Time
}

func NewAppointmentUsecase(log *logrus.Logger, store *service.RecordStore) AppointmentUsecase {
	return &appointmentUsecase{
		log:   log,
		store: store,
		now:   time.Now,
	}
}

// ConfirmAppointment acknowledges a mock booking. Only the presence of a date
// and a time is checked and nothing is stored.
func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, doctorID string, req *dto.ConfirmAppointmentRequest) (*dto.AppointmentConfirmationResponse, error) {
	date := strings.TrimSpace(req.Date)
	slot := strings.TrimSpace(req.Time)
	if date == "" || slot == "" {
		return nil, ErrAppointmentIncomplete
	}

	snapshot, err := loadedSnapshot(u.store)
	if err != nil {
		return nil, err
	}

	doctor, err := findDoctor(snapshot, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for appointment: %+v", err)
		return nil, err
	}

	confirmation := &entity.AppointmentConfirmation{
		Reference:   uuid.New(),
		DoctorID:    doctor.ID,
		DoctorName:  directory.DisplayName(doctor.Name),
		Date:        formatAppointmentDate(date),
		Time:        slot,
		ConfirmedAt: u.now().UTC(),
	}

	u.log.WithFields(logrus.Fields{
		"reference": confirmation.Reference.String(),
		"doctor_id": doctor.ID,
		"date":      date,
		"time":      slot,
	}).Info("Appointment booked")

	return converter.AppointmentConfirmationToResponse(confirmation), nil
}

func (u *appointmentUsecase) TimeSlots(ctx context.Context) *dto.TimeSlotListResponse {
	slots := make([]string, len(entity.AppointmentTimeSlots))
	copy(slots, entity.AppointmentTimeSlots)
	return &dto.TimeSlotListResponse{Slots: slots}
}

// formatAppointmentDate renders ISO dates as "January 2, 2006" and echoes
// anything else unchanged.
func formatAppointmentDate(date string) string {
	parsed, err := time.Parse(appointmentDateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("January 2, 2006")
}
