package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"adoptme/internal/domain/adoptions"
)

// adoptionRepo es append-only: las adopciones son inmutables.
type adoptionRepo struct {
	mu    sync.RWMutex
	items []adoptions.Adoption
	byID  map[string]int // id -> índice en items
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{
		byID: make(map[string]int),
	}
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("adoption already exists")
	}
	r.byID[a.ID] = len(r.items)
	r.items = append(r.items, a)
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return r.items[i], nil
}

func (r *adoptionRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, len(r.items))
	copy(out, r.items)
	return out, nil
}
