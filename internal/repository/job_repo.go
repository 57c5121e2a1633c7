package repository

import (
	"context"
	"strings"
	"sync"

	"talent-match/internal/domain"
)

type JobRepository interface {
	List(ctx context.Context) ([]domain.Job, error)
	GetByID(ctx context.Context, id string) (domain.Job, error)
	Upsert(ctx context.Context, job domain.Job) error
}

type MemoryJobRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]domain.Job
}

func NewMemoryJobRepository(seed ...domain.Job) *MemoryJobRepository {
	r := &MemoryJobRepository{items: make(map[string]domain.Job)}
	for _, j := range seed {
		_ = r.Upsert(context.Background(), j)
	}
	return r
}

func (r *MemoryJobRepository) List(_ context.Context) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Job, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *MemoryJobRepository) GetByID(_ context.Context, id string) (domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.items[strings.TrimSpace(id)]
	if !ok {
		return domain.Job{}, ErrNotFound
	}
	return j, nil
}

func (r *MemoryJobRepository) Upsert(_ context.Context, job domain.Job) error {
	id := strings.TrimSpace(job.ID)
	if id == "" {
		return ErrInvalidID
	}
	job.ID = id
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = job
	return nil
}
