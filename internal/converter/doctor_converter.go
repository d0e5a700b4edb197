package converter

import (
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/directory"
	"go-doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := doctorToResponse(*doctor)
	return &response
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = doctorToResponse(doctor)
	}
	return responses
}

// DoctorsToSuggestions keeps only what the suggestion dropdown renders.
func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, doctor := range doctors {
		suggestion := dto.SuggestionResponse{
			ID:           doctor.ID,
			DisplayName:  directory.DisplayName(doctor.Name),
			NameInitials: doctor.NameInitials,
			Photo:        doctor.Photo,
		}
		if len(doctor.Specialities) > 0 {
			suggestion.PrimarySpecialty = doctor.Specialities[0].Name
		}
		suggestions[i] = suggestion
	}
	return suggestions
}

func doctorToResponse(doctor entity.Doctor) dto.DoctorResponse {
	languages := doctor.Languages
	if languages == nil {
		languages = []string{}
	}

	return dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		DisplayName:     directory.DisplayName(doctor.Name),
		NameInitials:    doctor.NameInitials,
		Photo:           doctor.Photo,
		Introduction:    doctor.Introduction,
		Specialties:     doctor.SpecialtyNames(),
		Experience:      doctor.Experience,
		ExperienceYears: directory.ParseExperience(doctor.Experience),
		Fees:            doctor.Fees,
		FeeAmount:       decimal.NewFromInt(directory.ParseFee(doctor.Fees)),
		Languages:       languages,
		Clinic: dto.ClinicResponse{
			Name:         doctor.Clinic.Name,
			Locality:     doctor.Clinic.Address.Locality,
			City:         doctor.Clinic.Address.City,
			AddressLine1: doctor.Clinic.Address.AddressLine1,
			Location:     doctor.Clinic.Address.Location,
			LogoURL:      doctor.Clinic.Address.LogoURL,
		},
		VideoConsult: doctor.VideoConsult,
		InClinic:     doctor.InClinic,
	}
}
