package entity

// ConsultationMode selects doctors by how they consult. The zero value means
// no filter.
type ConsultationMode string

const (
	ConsultationModeNone     ConsultationMode = ""
	ConsultationModeVideo    ConsultationMode = "video_consult"
	ConsultationModeInClinic ConsultationMode = "in_clinic"
)

// ParseConsultationMode maps unknown values to ConsultationModeNone.
func ParseConsultationMode(s string) ConsultationMode {
	switch m := ConsultationMode(s); m {
	case ConsultationModeVideo, ConsultationModeInClinic:
		return m
	default:
		return ConsultationModeNone
	}
}

// SortKey orders the result list. The zero value keeps the filtered order.
type SortKey string

const (
	SortKeyNone           SortKey = ""
	SortKeyFeeAsc         SortKey = "fees"
	SortKeyFeeDesc        SortKey = "fees-desc"
	SortKeyExperienceDesc SortKey = "experience"
)

// ParseSortKey maps unknown values to SortKeyNone.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortKeyFeeAsc, SortKeyFeeDesc, SortKeyExperienceDesc:
		return k
	default:
		return SortKeyNone
	}
}

// FilterState is the current search/filter/sort selection.
//
// Specialties behaves as a set: members are unique and non-empty, kept in
// insertion order so encoding is deterministic. A FilterState is treated as
// an immutable value; every change goes through Update.
type FilterState struct {
	ConsultationMode ConsultationMode `json:"consultationType"`
	Specialties      []string         `json:"specialties"`
	SortKey          SortKey          `json:"sortBy"`
	SearchQuery      string           `json:"searchQuery"`
}

// FilterPatch is a partial FilterState. Nil fields are left untouched by Update.
type FilterPatch struct {
	ConsultationMode *ConsultationMode
	Specialties      *[]string
	SortKey          *SortKey
	SearchQuery      *string
}

// Update merges patch into current and returns the result. Neither argument
// is modified.
func Update(current FilterState, patch FilterPatch) FilterState {
	next := FilterState{
		ConsultationMode: current.ConsultationMode,
		Specialties:      normalizeSpecialties(current.Specialties),
		SortKey:          current.SortKey,
		SearchQuery:      current.SearchQuery,
	}

	if patch.ConsultationMode != nil {
		next.ConsultationMode = *patch.ConsultationMode
	}
	if patch.Specialties != nil {
		next.Specialties = normalizeSpecialties(*patch.Specialties)
	}
	if patch.SortKey != nil {
		next.SortKey = *patch.SortKey
	}
	if patch.SearchQuery != nil {
		next.SearchQuery = *patch.SearchQuery
	}

	return next
}

// HasSpecialty reports whether the exact specialty label is selected.
func (f FilterState) HasSpecialty(specialty string) bool {
	for _, s := range f.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return f.ConsultationMode == ConsultationModeNone &&
		len(f.Specialties) == 0 &&
		f.SortKey == SortKeyNone &&
		f.SearchQuery == ""
}

// Equal compares two states, treating Specialties as a set.
func (f FilterState) Equal(other FilterState) bool {
	if f.ConsultationMode != other.ConsultationMode ||
		f.SortKey != other.SortKey ||
		f.SearchQuery != other.SearchQuery {
		return false
	}

	a := normalizeSpecialties(f.Specialties)
	b := normalizeSpecialties(other.Specialties)
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			return false
		}
	}
	return true
}

// ToggleConsultationMode selects mode, or clears it when it is already active.
func ToggleConsultationMode(current FilterState, mode ConsultationMode) FilterPatch {
	next := mode
	if current.ConsultationMode == mode {
		next = ConsultationModeNone
	}
	return FilterPatch{ConsultationMode: &next}
}

// ToggleSortKey selects key, or clears it when it is already active.
func ToggleSortKey(current FilterState, key SortKey) FilterPatch {
	next := key
	if current.SortKey == key {
		next = SortKeyNone
	}
	return FilterPatch{SortKey: &next}
}

// ToggleSpecialty adds specialty when absent and removes it when present.
func ToggleSpecialty(current FilterState, specialty string) FilterPatch {
	next := make([]string, 0, len(current.Specialties)+1)
	if !current.HasSpecialty(specialty) {
		next = append(next, current.Specialties...)
		next = append(next, specialty)
		return FilterPatch{Specialties: &next}
	}

	for _, s := range current.Specialties {
		if s != specialty {
			next = append(next, s)
		}
	}
	return FilterPatch{Specialties: &next}
}

// SetSearchQuery replaces the search text.
func SetSearchQuery(query string) FilterPatch {
	return FilterPatch{SearchQuery: &query}
}

// SelectSuggestion sets the search query to the suggestion's display name.
func SelectSuggestion(displayName string) FilterPatch {
	return SetSearchQuery(displayName)
}

// ClearFilters resets every field.
func ClearFilters() FilterPatch {
	mode := ConsultationModeNone
	key := SortKeyNone
	query := ""
	specialties := []string{}
	return FilterPatch{
		ConsultationMode: &mode,
		Specialties:      &specialties,
		SortKey:          &key,
		SearchQuery:      &query,
	}
}

// normalizeSpecialties copies in, dropping empty and duplicate members.
func normalizeSpecialties(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
