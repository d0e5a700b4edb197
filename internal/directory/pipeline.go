package directory

import (
	"cmp"
	"slices"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// Apply derives the visible result list from records and filters. Stages run
// in a fixed order: search, consultation mode, specialty, sort. Sorting is
// stable and only sees the filtered set. records is never modified.
func Apply(records []entity.Doctor, filters entity.FilterState) []entity.Doctor {
	result := make([]entity.Doctor, 0, len(records))

	query := strings.ToLower(filters.SearchQuery)
	selected := lowerAll(filters.Specialties)

	for _, d := range records {
		if query != "" && !strings.Contains(strings.ToLower(d.Name), query) {
			continue
		}
		if !d.SupportsMode(filters.ConsultationMode) {
			continue
		}
		if len(selected) > 0 && !matchesAnySpecialty(d, selected) {
			continue
		}
		result = append(result, d)
	}

	sortDoctors(result, filters.SortKey)
	return result
}

// matchesAnySpecialty keeps a doctor when any of its specialty names contains
// any selected label. Upstream names may be compound ("Pediatric
// Cardiologist"), hence substring rather than equality.
func matchesAnySpecialty(d entity.Doctor, selected []string) bool {
	for _, sp := range d.Specialities {
		name := strings.ToLower(sp.Name)
		if name == "" {
			continue
		}
		for _, s := range selected {
			if strings.Contains(name, s) {
				return true
			}
		}
	}
	return false
}

func sortDoctors(doctors []entity.Doctor, key entity.SortKey) {
	switch key {
	case entity.SortKeyFeeAsc:
		slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
			return cmp.Compare(ParseFee(a.Fees), ParseFee(b.Fees))
		})
	case entity.SortKeyFeeDesc:
		slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
			return cmp.Compare(ParseFee(b.Fees), ParseFee(a.Fees))
		})
	case entity.SortKeyExperienceDesc:
		slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
			return cmp.Compare(ParseExperience(b.Experience), ParseExperience(a.Experience))
		})
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}
