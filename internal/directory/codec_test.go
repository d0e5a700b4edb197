package directory

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-doctor-directory/internal/domain/entity"
)

func TestEncode_OmitsDefaults(t *testing.T) {
	assert.Empty(t, Encode(entity.FilterState{}))
	assert.Equal(t, "", CanonicalQuery(entity.FilterState{Specialties: []string{}}))
}

func TestEncode_AllFields(t *testing.T) {
	params := Encode(entity.FilterState{
		ConsultationMode: entity.ConsultationModeInClinic,
		Specialties:      []string{"Dentist", "ENT"},
		SortKey:          entity.SortKeyFeeDesc,
		SearchQuery:      "Dr. Asha",
	})

	assert.Equal(t, "in_clinic", params.Get(ParamConsultationType))
	assert.Equal(t, "Dentist,ENT", params.Get(ParamSpecialties))
	assert.Equal(t, "fees-desc", params.Get(ParamSortBy))
	assert.Equal(t, "Dr. Asha", params.Get(ParamSearch))
}

func TestDecode_ScenarioURL(t *testing.T) {
	params, err := url.ParseQuery("specialties=Cardio&sortBy=experience")
	require.NoError(t, err)

	f := Decode(params)

	assert.Equal(t, []string{"Cardio"}, f.Specialties)
	assert.Equal(t, entity.SortKeyExperienceDesc, f.SortKey)
	assert.Equal(t, entity.ConsultationModeNone, f.ConsultationMode)
	assert.Equal(t, "", f.SearchQuery)
}

func TestDecode_MalformedValuesFallBackToDefaults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  entity.FilterState
	}{
		{
			name:  "unknown consultation type",
			query: "consultationType=teleport",
			want:  entity.FilterState{},
		},
		{
			name:  "unknown sort key",
			query: "sortBy=rating&search=raj",
			want:  entity.FilterState{SearchQuery: "raj"},
		},
		{
			name:  "empty specialty segments dropped",
			query: "specialties=,Dentist,,ENT,",
			want:  entity.FilterState{Specialties: []string{"Dentist", "ENT"}},
		},
		{
			name:  "duplicate specialties collapse",
			query: "specialties=ENT,ENT",
			want:  entity.FilterState{Specialties: []string{"ENT"}},
		},
		{
			name:  "empty values",
			query: "consultationType=&specialties=&sortBy=&search=",
			want:  entity.FilterState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			got := Decode(params)
			assert.True(t, tt.want.Equal(got), "got %+v", got)
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	modes := []entity.ConsultationMode{entity.ConsultationModeNone, entity.ConsultationModeVideo, entity.ConsultationModeInClinic}
	sorts := []entity.SortKey{entity.SortKeyNone, entity.SortKeyFeeAsc, entity.SortKeyFeeDesc, entity.SortKeyExperienceDesc}
	specialtySets := [][]string{nil, {"Dentist"}, {"Dietitian/Nutritionist", "ENT", "General Physician"}}
	queries := []string{"", "asha", "Dr. Raj & Sons", "  spaced  ", "100%"}

	for _, m := range modes {
		for _, s := range sorts {
			for _, sp := range specialtySets {
				for _, q := range queries {
					f := entity.FilterState{ConsultationMode: m, Specialties: sp, SortKey: s, SearchQuery: q}

					got := Decode(Encode(f))
					require.True(t, f.Equal(got), "round trip of %+v gave %+v", f, got)

					// survive the trip through an actual query string too
					parsed, err := url.ParseQuery(CanonicalQuery(f))
					require.NoError(t, err)
					require.True(t, f.Equal(Decode(parsed)))
				}
			}
		}
	}
}

func TestCanonicalQuery_IsDeterministic(t *testing.T) {
	f := entity.FilterState{SearchQuery: "raj", SortKey: entity.SortKeyFeeAsc, Specialties: []string{"ENT", "Dentist"}}
	assert.Equal(t, "search=raj&sortBy=fees&specialties=ENT%2CDentist", CanonicalQuery(f))
	assert.Equal(t, CanonicalQuery(f), CanonicalQuery(f))
}
