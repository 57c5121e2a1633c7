package repository

import (
	"context"
	"strings"
	"sync"

	"talent-match/internal/domain"
)

type TeamRepository interface {
	List(ctx context.Context) ([]domain.Team, error)
	GetByID(ctx context.Context, id string) (domain.Team, error)
	Upsert(ctx context.Context, team domain.Team) error
}

type MemoryTeamRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]domain.Team
}

func NewMemoryTeamRepository(seed ...domain.Team) *MemoryTeamRepository {
	r := &MemoryTeamRepository{items: make(map[string]domain.Team)}
	for _, t := range seed {
		_ = r.Upsert(context.Background(), t)
	}
	return r
}

func (r *MemoryTeamRepository) List(_ context.Context) ([]domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *MemoryTeamRepository) GetByID(_ context.Context, id string) (domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.items[strings.TrimSpace(id)]
	if !ok {
		return domain.Team{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryTeamRepository) Upsert(_ context.Context, team domain.Team) error {
	id := strings.TrimSpace(team.ID)
	if id == "" {
		return ErrInvalidID
	}
	team.ID = id
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = team
	return nil
}
