package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"talent-match/internal/domain"
)

// AssessmentRepository guarda resultados independientes del perfil del empleado.
type AssessmentRepository interface {
	Create(ctx context.Context, result domain.AssessmentResult) error
	GetByID(ctx context.Context, id string) (domain.AssessmentResult, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.AssessmentResult, error)
	MarkMerged(ctx context.Context, id string, at time.Time) error
}

type MemoryAssessmentRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]domain.AssessmentResult
}

func NewMemoryAssessmentRepository() *MemoryAssessmentRepository {
	return &MemoryAssessmentRepository{items: make(map[string]domain.AssessmentResult)}
}

func (r *MemoryAssessmentRepository) Create(_ context.Context, result domain.AssessmentResult) error {
	id := strings.TrimSpace(result.ID)
	if id == "" {
		return ErrInvalidID
	}
	result.ID = id
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = result
	return nil
}

func (r *MemoryAssessmentRepository) GetByID(_ context.Context, id string) (domain.AssessmentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[strings.TrimSpace(id)]
	if !ok {
		return domain.AssessmentResult{}, ErrNotFound
	}
	return res, nil
}

func (r *MemoryAssessmentRepository) ListByEmployee(_ context.Context, employeeID string) ([]domain.AssessmentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AssessmentResult
	for _, id := range r.order {
		if res := r.items[id]; res.EmployeeID == employeeID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *MemoryAssessmentRepository) MarkMerged(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.items[strings.TrimSpace(id)]
	if !ok {
		return ErrNotFound
	}
	at = at.UTC()
	res.MergedAt = &at
	r.items[res.ID] = res
	return nil
}
