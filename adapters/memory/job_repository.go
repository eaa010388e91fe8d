// Package memory provides in-process adapter implementations used when
// no database is configured.
package memory

import (
	"context"
	"sync"

	"welltwin/domain/core"
	"welltwin/internal/errors"
	"welltwin/ports"
)

// JobRepository keeps job runs in memory, newest first. It is the
// fallback store when DATABASE_URL is unset.
type JobRepository struct {
	mu   sync.RWMutex
	runs []*ports.JobRun
	byID map[core.JobID]*ports.JobRun
}

func NewJobRepository() *JobRepository {
	return &JobRepository{
		byID: make(map[core.JobID]*ports.JobRun),
	}
}

func (r *JobRepository) Create(ctx context.Context, run *ports.JobRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *run
	r.runs = append([]*ports.JobRun{&stored}, r.runs...)
	r.byID[run.ID] = &stored
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id core.JobID) (*ports.JobRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("job run", string(id))
	}
	copied := *run
	return &copied, nil
}

func (r *JobRepository) ListRecent(ctx context.Context, limit int) ([]*ports.JobRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.runs) {
		limit = len(r.runs)
	}
	out := make([]*ports.JobRun, 0, limit)
	for _, run := range r.runs[:limit] {
		copied := *run
		out = append(out, &copied)
	}
	return out, nil
}

func (r *JobRepository) CountBySlurry(ctx context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, run := range r.runs {
		counts[run.SlurryName]++
	}
	return counts, nil
}

var _ ports.JobRepository = (*JobRepository)(nil)
