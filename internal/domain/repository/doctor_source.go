package repository

import (
	"context"
	"errors"

	"go-doctor-directory/internal/domain/entity"
)

var (
	ErrSourceUnavailable = errors.New("doctor source unavailable")
	ErrSourceMalformed   = errors.New("doctor source returned a malformed payload")
)

// DoctorSource fetches the full list of doctor records. Implementations
// return ErrSourceUnavailable or ErrSourceMalformed (possibly wrapped) on
// failure and never a partial list.
type DoctorSource interface {
	FetchDoctors(ctx context.Context) ([]entity.Doctor, error)
}
