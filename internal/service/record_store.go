package service

import (
	"context"
	"sync"
	"time"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const loadKey = "doctors"

// Snapshot is an immutable view of the record store at one point in time.
// Records must be treated as read-only.
type Snapshot struct {
	Status     entity.LoadStatus
	Records    []entity.Doctor
	Generation string
	LoadedAt   time.Time
	Err        error
}

// RecordStore holds the doctor records for the process lifetime.
//
// The store is empty while a fetch is outstanding and after a failed fetch.
// A successful fetch replaces the whole content at once and gets a fresh
// generation id. There is no automatic retry: Load runs only when called.
type RecordStore struct {
	source repository.DoctorSource
	log    *logrus.Logger

	mu       sync.RWMutex
	snapshot Snapshot

	group singleflight.Group
}

func NewRecordStore(source repository.DoctorSource, log *logrus.Logger) *RecordStore {
	return &RecordStore{
		source: source,
		log:    log,
		snapshot: Snapshot{
			Status:  entity.LoadStatusLoading,
			Records: []entity.Doctor{},
		},
	}
}

// Snapshot returns the current state of the store.
func (s *RecordStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Load fetches the records and replaces the store content. Concurrent calls
// share one in-flight fetch. The returned snapshot reflects the outcome.
func (s *RecordStore) Load(ctx context.Context) Snapshot {
	result, _, _ := s.group.Do(loadKey, func() (any, error) {
		return s.load(ctx), nil
	})
	return result.(Snapshot)
}

func (s *RecordStore) load(ctx context.Context) Snapshot {
	s.replace(Snapshot{Status: entity.LoadStatusLoading, Records: []entity.Doctor{}})

	startTime := time.Now()
	doctors, err := s.source.FetchDoctors(ctx)
	if err != nil {
		s.log.Warnf("Failed to load doctors: %+v", err)
		return s.replace(Snapshot{
			Status:  entity.LoadStatusFailed,
			Records: []entity.Doctor{},
			Err:     err,
		})
	}

	if doctors == nil {
		doctors = []entity.Doctor{}
	}

	snapshot := s.replace(Snapshot{
		Status:     entity.LoadStatusLoaded,
		Records:    doctors,
		Generation: uuid.NewString(),
		LoadedAt:   time.Now().UTC(),
	})
	s.log.Infof("Doctor directory loaded: %d records in %v", len(doctors), time.Since(startTime))
	return snapshot
}

func (s *RecordStore) replace(next Snapshot) Snapshot {
	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()

	metrics.SetDirectoryRecords(len(next.Records))
	return next
}
