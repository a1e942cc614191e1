package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"tunereport/internal/models"
)

// In-memory stand-ins for the pgx and redis repositories, so the service
// layer can be exercised without containers.

type fakeRunStore struct {
	runs []models.TuningRun
}

func (f *fakeRunStore) Create(run *models.TuningRun) error {
	run.Prepare()
	run.CreatedAt = time.Now()
	f.runs = append(f.runs, *run)
	return nil
}

func (f *fakeRunStore) GetByID(id uuid.UUID) (*models.TuningRun, error) {
	for i := range f.runs {
		if f.runs[i].ID == id {
			run := f.runs[i]
			return &run, nil
		}
	}
	return nil, nil
}

func (f *fakeRunStore) GetByModel(model string) ([]models.TuningRun, error) {
	var out []models.TuningRun
	for _, r := range f.runs {
		if r.Model == model {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].F1 > out[j].F1 })
	return out, nil
}

func (f *fakeRunStore) GetAll() ([]models.TuningRun, error) {
	out := make([]models.TuningRun, len(f.runs))
	copy(out, f.runs)
	return out, nil
}

func (f *fakeRunStore) GetBestPerModel() ([]models.TuningRun, error) {
	best := map[string]models.TuningRun{}
	for _, r := range f.runs {
		b, ok := best[r.Model]
		if !ok || r.F1 > b.F1 ||
			(r.F1 == b.F1 && r.AUC > b.AUC) ||
			(r.F1 == b.F1 && r.AUC == b.AUC && r.TrainingTimeS < b.TrainingTimeS) {
			best[r.Model] = r
		}
	}

	var out []models.TuningRun
	for _, r := range best {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRunStore) Delete(id uuid.UUID) error {
	for i := range f.runs {
		if f.runs[i].ID == id {
			f.runs = append(f.runs[:i], f.runs[i+1:]...)
			return nil
		}
	}
	return errors.New("tuning run not found")
}

type fakeCache struct {
	entries       map[string]string
	ttls          map[string]time.Duration
	invalidations int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: map[string]string{},
		ttls:    map[string]time.Duration{},
	}
}

func (c *fakeCache) StoreReport(ctx context.Context, format string, content string, ttl time.Duration) error {
	c.entries[format] = content
	c.ttls[format] = ttl
	return nil
}

func (c *fakeCache) GetReport(ctx context.Context, format string) (string, bool, error) {
	content, ok := c.entries[format]
	return content, ok, nil
}

func (c *fakeCache) InvalidateReports(ctx context.Context) error {
	c.entries = map[string]string{}
	c.invalidations++
	return nil
}

type fakeSnapshotStore struct {
	snapshots []models.ReportSnapshot
}

func (s *fakeSnapshotStore) Create(snapshot *models.ReportSnapshot) error {
	snapshot.Prepare()
	snapshot.CreatedAt = time.Now()
	s.snapshots = append(s.snapshots, *snapshot)
	return nil
}

func (s *fakeSnapshotStore) GetByID(id uuid.UUID) (*models.ReportSnapshot, error) {
	for i := range s.snapshots {
		if s.snapshots[i].ID == id {
			snapshot := s.snapshots[i]
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (s *fakeSnapshotStore) GetLatestByFormat(format string) (*models.ReportSnapshot, error) {
	for i := len(s.snapshots) - 1; i >= 0; i-- {
		if s.snapshots[i].Format == format {
			snapshot := s.snapshots[i]
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (s *fakeSnapshotStore) List(limit int) ([]models.ReportSnapshot, error) {
	if limit > len(s.snapshots) {
		limit = len(s.snapshots)
	}
	out := make([]models.ReportSnapshot, limit)
	copy(out, s.snapshots[:limit])
	return out, nil
}
