package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-doctor-directory/config"
	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/metrics"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

const maxPayloadBytes = 16 << 20

type httpDoctorSource struct {
	httpClient *http.Client
	sourceURL  string
	log        *logrus.Logger
}

func NewHTTPDoctorSource(cfg config.DirectoryConfig, log *logrus.Logger) domainRepo.DoctorSource {
	return &httpDoctorSource{
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		sourceURL:  cfg.SourceURL,
		log:        log,
	}
}

// FetchDoctors issues a single GET against the configured endpoint.
func (s *httpDoctorSource) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domainRepo.ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	fetchStart := time.Now()
	resp, err := s.httpClient.Do(req)
	fetchDuration := time.Since(fetchStart)
	if err != nil {
		metrics.RecordDirectoryFetch("error", fetchDuration)
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordDirectoryFetch("error", fetchDuration)
		return nil, fmt.Errorf("%w: source returned status %d", domainRepo.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		metrics.RecordDirectoryFetch("error", time.Since(fetchStart))
		return nil, fmt.Errorf("%w: failed to read body: %v", domainRepo.ErrSourceUnavailable, err)
	}

	doctors, err := s.decodeDoctors(body)
	if err != nil {
		metrics.RecordDirectoryFetch("error", time.Since(fetchStart))
		return nil, err
	}

	metrics.RecordDirectoryFetch("success", time.Since(fetchStart))
	s.log.Infof("Fetched %d doctor records from %s", len(doctors), s.sourceURL)
	return doctors, nil
}

// decodeDoctors accepts any JSON array. Elements that are not objects are
// skipped; fields with an unexpected shape are left empty.
func (s *httpDoctorSource) decodeDoctors(body []byte) ([]entity.Doctor, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrSourceMalformed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", domainRepo.ErrSourceMalformed)
	}

	doctors := make([]entity.Doctor, 0, len(raw))
	for i, item := range raw {
		fields, err := cast.ToStringMapE(item)
		if err != nil {
			s.log.Warnf("Skipping doctor record at index %d: %+v", i, err)
			continue
		}
		doctors = append(doctors, coerceDoctor(fields))
	}
	return doctors, nil
}

func coerceDoctor(m map[string]any) entity.Doctor {
	clinic := objectField(m, "clinic")
	address := objectField(clinic, "address")

	return entity.Doctor{
		ID:           stringField(m, "id"),
		Name:         stringField(m, "name"),
		NameInitials: stringField(m, "name_initials"),
		Photo:        stringField(m, "photo"),
		Introduction: stringField(m, "doctor_introduction"),
		Specialities: specialtiesField(m, "specialities"),
		Fees:         stringField(m, "fees"),
		Experience:   stringField(m, "experience"),
		Languages:    stringSliceField(m, "languages"),
		Clinic: entity.Clinic{
			Name: stringField(clinic, "name"),
			Address: entity.Address{
				Locality:     stringField(address, "locality"),
				City:         stringField(address, "city"),
				AddressLine1: stringField(address, "address_line1"),
				Location:     stringField(address, "location"),
				LogoURL:      stringField(address, "logo_url"),
			},
		},
		VideoConsult: boolField(m, "video_consult"),
		InClinic:     boolField(m, "in_clinic"),
	}
}

func stringField(m map[string]any, key string) string {
	return scalarString(m[key])
}

// scalarString converts strings and numbers; anything else counts as absent.
func scalarString(v any) string {
	switch v.(type) {
	case string, json.Number, float64, int, int64:
		s, err := cast.ToStringE(v)
		if err != nil {
			return ""
		}
		return s
	default:
		return ""
	}
}

func boolField(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok || v == nil {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

func objectField(m map[string]any, key string) map[string]any {
	v, ok := m[key]
	if !ok || v == nil {
		return map[string]any{}
	}
	obj, err := cast.ToStringMapE(v)
	if err != nil {
		return map[string]any{}
	}
	return obj
}

func stringSliceField(m map[string]any, key string) []string {
	items, err := cast.ToSliceE(m[key])
	if err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := scalarString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// specialtiesField accepts both [{"name": "..."}] and ["..."].
func specialtiesField(m map[string]any, key string) []entity.Specialty {
	items, err := cast.ToSliceE(m[key])
	if err != nil {
		return []entity.Specialty{}
	}
	out := make([]entity.Specialty, 0, len(items))
	for _, item := range items {
		if name := scalarString(item); name != "" {
			out = append(out, entity.Specialty{Name: name})
			continue
		}
		obj, err := cast.ToStringMapE(item)
		if err != nil {
			continue
		}
		if name := stringField(obj, "name"); name != "" {
			out = append(out, entity.Specialty{Name: name})
		}
	}
	return out
}
