package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Response DTOs

type ClinicResponse struct {
	Name         string `json:"name"`
	Locality     string `json:"locality"`
	City         string `json:"city"`
	AddressLine1 string `json:"address_line1"`
	Location     string `json:"location"`
	LogoURL      string `json:"logo_url,omitempty"`
}

type DoctorResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	DisplayName     string          `json:"display_name"`
	NameInitials    string          `json:"name_initials"`
	Photo           string          `json:"photo,omitempty"`
	Introduction    string          `json:"doctor_introduction,omitempty"`
	Specialties     []string        `json:"specialties"`
	Experience      string          `json:"experience"`
	ExperienceYears int64           `json:"experience_years"`
	Fees            string          `json:"fees"`
	FeeAmount       decimal.Decimal `json:"fee_amount"`
	Languages       []string        `json:"languages"`
	Clinic          ClinicResponse  `json:"clinic"`
	VideoConsult    bool            `json:"video_consult"`
	InClinic        bool            `json:"in_clinic"`
}

type SuggestionResponse struct {
	ID               string `json:"id"`
	DisplayName      string `json:"display_name"`
	NameInitials     string `json:"name_initials"`
	Photo            string `json:"photo,omitempty"`
	PrimarySpecialty string `json:"primary_specialty,omitempty"`
}

type SuggestionListResponse struct {
	Query       string               `json:"query"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type DoctorListResponse struct {
	Status  string           `json:"status"`
	Doctors []DoctorResponse `json:"doctors"`
	Filters FilterResponse   `json:"filters"`
	Query   string           `json:"query"`
	Found   int              `json:"found"`
	Total   int              `json:"total"`
	Summary string           `json:"summary"`
}

type DirectoryStatusResponse struct {
	Status     string     `json:"status"`
	Records    int        `json:"records"`
	Generation string     `json:"generation,omitempty"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	Error      string     `json:"error,omitempty"`
	Retryable  bool       `json:"retryable"`
}

type SpecialtyResponse struct {
	Name    string `json:"name"`
	Doctors int    `json:"doctors"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
}
