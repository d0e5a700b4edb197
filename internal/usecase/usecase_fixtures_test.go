package usecase

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"
)

type fakeSource struct {
	doctors []entity.Doctor
	err     error
}

func (s *fakeSource) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	return s.doctors, s.err
}

type fakeResultCache struct {
	mu      sync.Mutex
	entries map[string][]string
	gets    int
}

func newFakeResultCache() *fakeResultCache {
	return &fakeResultCache{entries: map[string][]string{}}
}

func (c *fakeResultCache) Get(ctx context.Context, key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	ids, ok := c.entries[key]
	return ids, ok
}

func (c *fakeResultCache) Set(ctx context.Context, key string, ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = ids
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "1", Name: "Dr. Dr. Asha Verma", Fees: "₹ 500", Experience: "10 Years of experience",
			Specialities: []entity.Specialty{{Name: "Dentist"}}, InClinic: true},
		{ID: "2", Name: "Dr. Raj Patel", Fees: "₹300", Experience: "5 Years of experience",
			Specialities: []entity.Specialty{{Name: "Cardiologist"}}, VideoConsult: true},
		{ID: "3", Name: "Dr. Rajesh Nair", Fees: "₹800", Experience: "20 Years of experience",
			Specialities: []entity.Specialty{{Name: "Dentist"}, {Name: "Orthodontist"}}, VideoConsult: true, InClinic: true},
	}
}

func loadedStore(source *fakeSource) *service.RecordStore {
	store := service.NewRecordStore(source, quietLogger())
	store.Load(context.Background())
	return store
}
