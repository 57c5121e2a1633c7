package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"talent-match/internal/domain"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.EmployeeProfile, error)
	GetByID(ctx context.Context, id string) (domain.EmployeeProfile, error)
	GetMany(ctx context.Context, ids []string) ([]domain.EmployeeProfile, error)
	Upsert(ctx context.Context, employee domain.EmployeeProfile) error
}

// MemoryEmployeeRepository conserva el orden de insercion en List.
type MemoryEmployeeRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]domain.EmployeeProfile
}

func NewMemoryEmployeeRepository(seed ...domain.EmployeeProfile) *MemoryEmployeeRepository {
	r := &MemoryEmployeeRepository{items: make(map[string]domain.EmployeeProfile)}
	for _, e := range seed {
		_ = r.Upsert(context.Background(), e)
	}
	return r
}

func (r *MemoryEmployeeRepository) List(_ context.Context) ([]domain.EmployeeProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.EmployeeProfile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *MemoryEmployeeRepository) GetByID(_ context.Context, id string) (domain.EmployeeProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[strings.TrimSpace(id)]
	if !ok {
		return domain.EmployeeProfile{}, ErrNotFound
	}
	return e, nil
}

// GetMany ignora IDs desconocidos y respeta el orden pedido.
func (r *MemoryEmployeeRepository) GetMany(_ context.Context, ids []string) ([]domain.EmployeeProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.EmployeeProfile, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.items[strings.TrimSpace(id)]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryEmployeeRepository) Upsert(_ context.Context, employee domain.EmployeeProfile) error {
	id := strings.TrimSpace(employee.ID)
	if id == "" {
		return ErrInvalidID
	}
	employee.ID = id
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = employee
	return nil
}
