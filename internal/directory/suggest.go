package directory

import (
	"regexp"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// SuggestionLimit caps the number of suggestions returned.
const SuggestionLimit = 3

var duplicatedTitle = regexp.MustCompile(`^Dr\.\s*Dr\.`)

// DisplayName collapses a repeated leading "Dr." so "Dr. Dr. Asha" displays
// as "Dr. Asha". The record itself is left untouched.
func DisplayName(name string) string {
	return duplicatedTitle.ReplaceAllLiteralString(name, "Dr.")
}

// Suggest returns up to SuggestionLimit records whose display name contains
// query, case-insensitively, in source order. A blank query yields nothing.
func Suggest(records []entity.Doctor, query string) []entity.Doctor {
	if strings.TrimSpace(query) == "" {
		return []entity.Doctor{}
	}

	needle := strings.ToLower(query)
	out := make([]entity.Doctor, 0, SuggestionLimit)
	for _, d := range records {
		if strings.Contains(strings.ToLower(DisplayName(d.Name)), needle) {
			out = append(out, d)
			if len(out) == SuggestionLimit {
				break
			}
		}
	}
	return out
}
