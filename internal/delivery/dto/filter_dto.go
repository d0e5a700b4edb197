package dto

// Filter event types emitted by the presentation layer.
const (
	FilterEventSearch             = "search"
	FilterEventSelectSuggestion   = "select_suggestion"
	FilterEventToggleConsultation = "toggle_consultation"
	FilterEventToggleSpecialty    = "toggle_specialty"
	FilterEventToggleSort         = "toggle_sort"
	FilterEventClear              = "clear"
)

// Request DTOs

// FilterEventRequest carries one user intent. Query is the current URL query
// string the event applies to.
type FilterEventRequest struct {
	Query string `json:"query"`
	Type  string `json:"type" validate:"required,oneof=search select_suggestion toggle_consultation toggle_specialty toggle_sort clear"`
	Value string `json:"value"`
}

// Response DTOs

type FilterResponse struct {
	ConsultationType string   `json:"consultationType,omitempty"`
	Specialties      []string `json:"specialties"`
	SortBy           string   `json:"sortBy,omitempty"`
	Search           string   `json:"search,omitempty"`
}

type FilterEventResponse struct {
	Filters FilterResponse `json:"filters"`
	Query   string         `json:"query"`
	Changed bool           `json:"changed"`
}
