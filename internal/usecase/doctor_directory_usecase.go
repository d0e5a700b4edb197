package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/directory"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/metrics"
	"go-doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDirectoryLoading     = errors.New("doctor directory is still loading")
	ErrDirectoryUnavailable = errors.New("failed to load doctors data")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrInvalidFilterValue   = errors.New("invalid filter value")
)

type DoctorDirectoryUsecase interface {
	ListDoctors(ctx context.Context, params url.Values) (*dto.DoctorListResponse, error)
	Suggest(ctx context.Context, query string) (*dto.SuggestionListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	Refresh(ctx context.Context) (*dto.DirectoryStatusResponse, error)
	Status(ctx context.Context) *dto.DirectoryStatusResponse
	ApplyFilterEvent(ctx context.Context, req *dto.FilterEventRequest) (*dto.FilterEventResponse, error)
	Specialties(ctx context.Context) *dto.SpecialtyListResponse
}

type doctorDirectoryUsecase struct {
	log         *logrus.Logger
	store       *service.RecordStore
	resultCache service.ResultCache
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	store *service.RecordStore,
	resultCache service.ResultCache,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:         log,
		store:       store,
		resultCache: resultCache,
	}
}

// ListDoctors decodes the URL parameters into a filter state and runs the
// filter/sort pipeline over the loaded records.
func (u *doctorDirectoryUsecase) ListDoctors(ctx context.Context, params url.Values) (*dto.DoctorListResponse, error) {
	snapshot, err := loadedSnapshot(u.store)
	if err != nil {
		return nil, err
	}

	filters := directory.Decode(params)
	query := directory.CanonicalQuery(filters)
	doctors := u.apply(ctx, snapshot, filters, query)

	return &dto.DoctorListResponse{
		Status:  string(snapshot.Status),
		Doctors: converter.DoctorsToResponses(doctors),
		Filters: converter.FilterStateToResponse(filters),
		Query:   query,
		Found:   len(doctors),
		Total:   len(snapshot.Records),
		Summary: resultSummary(len(doctors), len(snapshot.Records), filters.SearchQuery),
	}, nil
}

// Suggest returns name suggestions. Nothing is suggested until records are loaded.
func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, query string) (*dto.SuggestionListResponse, error) {
	snapshot := u.store.Snapshot()

	return &dto.SuggestionListResponse{
		Query:       query,
		Suggestions: converter.DoctorsToSuggestions(directory.Suggest(snapshot.Records, query)),
	}, nil
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	snapshot, err := loadedSnapshot(u.store)
	if err != nil {
		return nil, err
	}

	doctor, err := findDoctor(snapshot, doctorID)
	if err != nil {
		u.log.Debugf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// Refresh re-fetches the records. It is the manual retry after a failed
// load; the fetch outlives the caller's cancellation so concurrent callers
// sharing it are not affected.
func (u *doctorDirectoryUsecase) Refresh(ctx context.Context) (*dto.DirectoryStatusResponse, error) {
	u.log.Info("Refreshing doctor directory")

	snapshot := u.store.Load(context.WithoutCancel(ctx))
	status := statusResponse(snapshot)
	if snapshot.Status.IsFailed() {
		return status, ErrDirectoryUnavailable
	}
	return status, nil
}

func (u *doctorDirectoryUsecase) Status(ctx context.Context) *dto.DirectoryStatusResponse {
	return statusResponse(u.store.Snapshot())
}

// ApplyFilterEvent applies one presentation event to the filter state held
// in req.Query and returns the new state with its canonical query string.
func (u *doctorDirectoryUsecase) ApplyFilterEvent(ctx context.Context, req *dto.FilterEventRequest) (*dto.FilterEventResponse, error) {
	// a malformed query keeps whatever parsed cleanly
	params, err := url.ParseQuery(strings.TrimPrefix(req.Query, "?"))
	if err != nil {
		u.log.Debugf("Ignoring malformed filter query %q: %+v", req.Query, err)
	}

	sync := directory.NewURLSync()
	before, _ := sync.ApplyURL(params)

	patch, err := u.eventPatch(before, req)
	if err != nil {
		return nil, err
	}

	after, next := sync.Dispatch(patch)

	return &dto.FilterEventResponse{
		Filters: converter.FilterStateToResponse(after),
		Query:   next.Encode(),
		Changed: !before.Equal(after),
	}, nil
}

// Specialties lists the filter catalog with the number of loaded doctors
// each entry would match.
func (u *doctorDirectoryUsecase) Specialties(ctx context.Context) *dto.SpecialtyListResponse {
	snapshot := u.store.Snapshot()

	specialties := make([]dto.SpecialtyResponse, len(entity.SpecialtyCatalog))
	for i, name := range entity.SpecialtyCatalog {
		matches := directory.Apply(snapshot.Records, entity.FilterState{Specialties: []string{name}})
		specialties[i] = dto.SpecialtyResponse{Name: name, Doctors: len(matches)}
	}

	return &dto.SpecialtyListResponse{Specialties: specialties}
}

func (u *doctorDirectoryUsecase) eventPatch(current entity.FilterState, req *dto.FilterEventRequest) (entity.FilterPatch, error) {
	switch req.Type {
	case dto.FilterEventSearch:
		return entity.SetSearchQuery(req.Value), nil

	case dto.FilterEventSelectSuggestion:
		// value may be a record id or a name
		name := req.Value
		if doctor, err := findDoctor(u.store.Snapshot(), req.Value); err == nil {
			name = doctor.Name
		}
		return entity.SelectSuggestion(directory.DisplayName(name)), nil

	case dto.FilterEventToggleConsultation:
		mode := entity.ParseConsultationMode(req.Value)
		if mode == entity.ConsultationModeNone {
			return entity.FilterPatch{}, fmt.Errorf("%w: consultation type %q", ErrInvalidFilterValue, req.Value)
		}
		return entity.ToggleConsultationMode(current, mode), nil

	case dto.FilterEventToggleSpecialty:
		if req.Value == "" || strings.Contains(req.Value, ",") {
			return entity.FilterPatch{}, fmt.Errorf("%w: specialty %q", ErrInvalidFilterValue, req.Value)
		}
		return entity.ToggleSpecialty(current, req.Value), nil

	case dto.FilterEventToggleSort:
		key := entity.ParseSortKey(req.Value)
		if key == entity.SortKeyNone {
			return entity.FilterPatch{}, fmt.Errorf("%w: sort key %q", ErrInvalidFilterValue, req.Value)
		}
		return entity.ToggleSortKey(current, key), nil

	case dto.FilterEventClear:
		return entity.ClearFilters(), nil

	default:
		return entity.FilterPatch{}, fmt.Errorf("%w: event type %q", ErrInvalidFilterValue, req.Type)
	}
}

// apply runs the pipeline, consulting the result cache first. Cached IDs
// that no longer resolve against the snapshot force a recomputation.
func (u *doctorDirectoryUsecase) apply(ctx context.Context, snapshot service.Snapshot, filters entity.FilterState, query string) []entity.Doctor {
	// the unfiltered list is the store itself
	if filters.IsZero() {
		return directory.Apply(snapshot.Records, filters)
	}

	key := service.ResultCacheKey(snapshot.Generation, query)

	if ids, ok := u.resultCache.Get(ctx, key); ok {
		if doctors, ok := materialize(snapshot.Records, ids); ok {
			return doctors
		}
		metrics.RecordResultCacheLookup("stale")
		u.log.Debugf("Result cache entry %s is stale, recomputing", key)
	}

	doctors := directory.Apply(snapshot.Records, filters)

	ids := make([]string, len(doctors))
	for i, d := range doctors {
		ids[i] = d.ID
	}
	u.resultCache.Set(ctx, key, ids)

	return doctors
}

func materialize(records []entity.Doctor, ids []string) ([]entity.Doctor, bool) {
	byID := make(map[string]int, len(records))
	for i, d := range records {
		byID[d.ID] = i
	}

	out := make([]entity.Doctor, 0, len(ids))
	for _, id := range ids {
		i, ok := byID[id]
		if !ok {
			return nil, false
		}
		out = append(out, records[i])
	}
	return out, true
}

func loadedSnapshot(store *service.RecordStore) (service.Snapshot, error) {
	snapshot := store.Snapshot()
	switch {
	case snapshot.Status.IsLoaded():
		return snapshot, nil
	case snapshot.Status.IsFailed():
		return snapshot, ErrDirectoryUnavailable
	default:
		return snapshot, ErrDirectoryLoading
	}
}

func findDoctor(snapshot service.Snapshot, doctorID string) (*entity.Doctor, error) {
	if doctorID == "" {
		return nil, ErrDoctorNotFound
	}
	for i := range snapshot.Records {
		if snapshot.Records[i].ID == doctorID {
			return &snapshot.Records[i], nil
		}
	}
	return nil, ErrDoctorNotFound
}

func statusResponse(snapshot service.Snapshot) *dto.DirectoryStatusResponse {
	status := &dto.DirectoryStatusResponse{
		Status:     string(snapshot.Status),
		Records:    len(snapshot.Records),
		Generation: snapshot.Generation,
		Retryable:  snapshot.Status.IsFailed(),
	}
	if !snapshot.LoadedAt.IsZero() {
		loadedAt := snapshot.LoadedAt
		status.LoadedAt = &loadedAt
	}
	if snapshot.Err != nil {
		status.Error = "Failed to load doctors data. Please try again."
	}
	return status
}

// resultSummary renders e.g. `Found 2 doctors matching "dr" (out of 10)`.
func resultSummary(found, total int, search string) string {
	noun := "doctors"
	if found == 1 {
		noun = "doctor"
	}

	summary := fmt.Sprintf("Found %d %s", found, noun)
	if search != "" {
		summary += fmt.Sprintf(" matching %q", search)
	}
	if total > found {
		summary += fmt.Sprintf(" (out of %d)", total)
	}
	return summary
}
