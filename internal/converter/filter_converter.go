package converter

import (
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// FilterStateToResponse converts a FilterState to its URL-shaped DTO
func FilterStateToResponse(f entity.FilterState) dto.FilterResponse {
	specialties := make([]string, len(f.Specialties))
	copy(specialties, f.Specialties)

	return dto.FilterResponse{
		ConsultationType: string(f.ConsultationMode),
		Specialties:      specialties,
		SortBy:           string(f.SortKey),
		Search:           f.SearchQuery,
	}
}
