package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Dr. Asha", DisplayName("Dr. Dr. Asha"))
	assert.Equal(t, "Dr. Asha", DisplayName("Dr.Dr. Asha"))
	assert.Equal(t, "Dr. Raj", DisplayName("Dr. Raj"))
	assert.Equal(t, "Asha Dr. Dr.", DisplayName("Asha Dr. Dr."))
	assert.Equal(t, "", DisplayName(""))
}

func TestSuggest_CollapsesDuplicatedTitle(t *testing.T) {
	records := scenarioDoctors()

	got := Suggest(records, "as")

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Dr. Asha", DisplayName(got[0].Name))
	assert.Equal(t, "Dr. Dr. Asha", records[0].Name, "record must not be rewritten")
}

func TestSuggest_BlankQueryReturnsNothing(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n"} {
		got := Suggest(directoryDoctors(), q)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSuggest_LimitAndSourceOrder(t *testing.T) {
	got := Suggest(directoryDoctors(), "dr. ")
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	got := Suggest(directoryDoctors(), "KAV")
	assert.Equal(t, []string{"c", "e"}, ids(got))
}

func TestSuggest_MatchesNormalizedNameOnly(t *testing.T) {
	// "dr. dr." only exists in the raw name
	assert.Empty(t, Suggest(directoryDoctors(), "dr. dr."))
}
