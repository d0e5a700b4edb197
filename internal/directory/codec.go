package directory

import (
	"net/url"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// Query parameter names persisted in the address bar.
const (
	ParamConsultationType = "consultationType"
	ParamSpecialties      = "specialties"
	ParamSortBy           = "sortBy"
	ParamSearch           = "search"
)

const specialtySeparator = ","

// Encode maps a filter state to query parameters. Fields holding their
// default value produce no key.
func Encode(f entity.FilterState) url.Values {
	params := url.Values{}

	if f.ConsultationMode != entity.ConsultationModeNone {
		params.Set(ParamConsultationType, string(f.ConsultationMode))
	}

	specialties := make([]string, 0, len(f.Specialties))
	for _, s := range f.Specialties {
		if s != "" {
			specialties = append(specialties, s)
		}
	}
	if len(specialties) > 0 {
		params.Set(ParamSpecialties, strings.Join(specialties, specialtySeparator))
	}

	if f.SortKey != entity.SortKeyNone {
		params.Set(ParamSortBy, string(f.SortKey))
	}

	if f.SearchQuery != "" {
		params.Set(ParamSearch, f.SearchQuery)
	}

	return params
}

// Decode maps query parameters back to a filter state. It never fails:
// unknown consultation types and sort keys fall back to none, empty
// specialty segments are dropped.
func Decode(params url.Values) entity.FilterState {
	var specialties []string
	if raw := params.Get(ParamSpecialties); raw != "" {
		specialties = strings.Split(raw, specialtySeparator)
	}

	return entity.Update(entity.FilterState{}, entity.FilterPatch{
		ConsultationMode: ptr(entity.ParseConsultationMode(params.Get(ParamConsultationType))),
		Specialties:      &specialties,
		SortKey:          ptr(entity.ParseSortKey(params.Get(ParamSortBy))),
		SearchQuery:      ptr(params.Get(ParamSearch)),
	})
}

// CanonicalQuery returns the encoded query string for f, with keys sorted.
func CanonicalQuery(f entity.FilterState) string {
	return Encode(f).Encode()
}

func ptr[T any](v T) *T {
	return &v
}
