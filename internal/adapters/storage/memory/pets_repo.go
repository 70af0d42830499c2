package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"adoptme/internal/domain/pets"
)

type petRepo struct {
	mu    sync.RWMutex
	byID  map[string]pets.Pet
	order []string // orden de inserción
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[p.ID]
	if !exists {
		return pets.ErrNotFound
	}
	// adopted/owner solo cambian vía MarkAdopted.
	p.Adopted = current.Adopted
	p.Owner = current.Owner
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return nil
}

// MarkAdopted chequea y escribe bajo el mismo lock: dos adopciones concurrentes
// de la misma mascota no pueden ganar ambas.
func (r *petRepo) MarkAdopted(ctx context.Context, petID, ownerID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[petID]
	if !ok {
		return pets.ErrNotFound
	}
	if p.Adopted {
		return pets.ErrAlreadyAdopted
	}
	p.Adopted = true
	p.Owner = ownerID
	p.UpdatedAt = at
	r.byID[petID] = p
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
