package repository

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-doctor-directory/config"
	domainRepo "go-doctor-directory/internal/domain/repository"
)

const samplePayload = `[
  {
    "id": "111111",
    "name": "Dr. Dr. Asha Verma",
    "name_initials": "AV",
    "photo": "https://example.test/asha.jpg",
    "doctor_introduction": "Dentist with a decade of practice",
    "specialities": [{"name": "Dentist"}],
    "fees": "₹ 500",
    "experience": "10 Years of experience",
    "languages": ["English", "Hindi"],
    "clinic": {
      "name": "Smile Clinic",
      "address": {"locality": "Indiranagar", "city": "Bangalore", "address_line1": "12 Main Rd", "location": "12.97,77.64", "logo_url": ""}
    },
    "video_consult": false,
    "in_clinic": true
  },
  {
    "id": 222222,
    "name": "Dr. Raj",
    "specialities": ["Cardiologist", {"name": ""}, 7, {"title": "x"}],
    "fees": 300,
    "experience": null,
    "languages": "English",
    "clinic": "not an object",
    "video_consult": "true",
    "in_clinic": "sometimes"
  },
  "garbage",
  42
]`

func newTestSource(t *testing.T, handler http.HandlerFunc) domainRepo.DoctorSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewHTTPDoctorSource(config.DirectoryConfig{SourceURL: server.URL, FetchTimeout: 2 * time.Second}, log)
}

func TestFetchDoctors_DecodesWellFormedRecord(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, samplePayload)
	})

	doctors, err := source.FetchDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 2, "non-object elements are skipped")

	asha := doctors[0]
	assert.Equal(t, "111111", asha.ID)
	assert.Equal(t, "Dr. Dr. Asha Verma", asha.Name)
	assert.Equal(t, "AV", asha.NameInitials)
	assert.Equal(t, []string{"Dentist"}, asha.SpecialtyNames())
	assert.Equal(t, "₹ 500", asha.Fees)
	assert.Equal(t, []string{"English", "Hindi"}, asha.Languages)
	assert.Equal(t, "Smile Clinic", asha.Clinic.Name)
	assert.Equal(t, "Indiranagar", asha.Clinic.Address.Locality)
	assert.True(t, asha.InClinic)
	assert.False(t, asha.VideoConsult)
}

func TestFetchDoctors_CoercesMismatchedShapesToAbsent(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, samplePayload)
	})

	doctors, err := source.FetchDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 2)

	raj := doctors[1]
	assert.Equal(t, "222222", raj.ID)
	assert.Equal(t, []string{"Cardiologist", "7"}, raj.SpecialtyNames())
	assert.Equal(t, "300", raj.Fees)
	assert.Equal(t, "", raj.Experience)
	assert.Empty(t, raj.Languages)
	assert.Equal(t, "", raj.Clinic.Name)
	assert.True(t, raj.VideoConsult)
	assert.False(t, raj.InClinic)
}

func TestFetchDoctors_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: domainRepo.ErrSourceUnavailable,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "<html>oops</html>")
			},
			wantErr: domainRepo.ErrSourceMalformed,
		},
		{
			name: "object instead of array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"doctors": []}`)
			},
			wantErr: domainRepo.ErrSourceMalformed,
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `null`)
			},
			wantErr: domainRepo.ErrSourceMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctors, err := newTestSource(t, tt.handler).FetchDoctors(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, doctors)
		})
	}
}

func TestFetchDoctors_EmptyArray(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	doctors, err := source.FetchDoctors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doctors)
	assert.Empty(t, doctors)
}

func TestFetchDoctors_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	source := NewHTTPDoctorSource(config.DirectoryConfig{SourceURL: url, FetchTimeout: time.Second}, log)

	_, err := source.FetchDoctors(context.Background())
	require.ErrorIs(t, err, domainRepo.ErrSourceUnavailable)
}
