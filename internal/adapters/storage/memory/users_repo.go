package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"adoptme/internal/domain/users"
)

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string // email -> id
	order   []string
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	if _, taken := r.byEmail[u.Email]; taken {
		return users.ErrEmailTaken
	}

	u.Pets = cloneIDs(u.Pets)
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.order = append(r.order, u.ID)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	u.Pets = cloneIDs(u.Pets)
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	u := r.byID[id]
	u.Pets = cloneIDs(u.Pets)
	return u, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.byID[id]
		u.Pets = cloneIDs(u.Pets)
		out = append(out, u)
	}
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[u.ID]
	if !ok {
		return users.ErrNotFound
	}
	if u.Email != current.Email {
		if owner, taken := r.byEmail[u.Email]; taken && owner != u.ID {
			return users.ErrEmailTaken
		}
		delete(r.byEmail, current.Email)
		r.byEmail[u.Email] = u.ID
	}

	// la colección de mascotas solo crece vía AddPet.
	u.Pets = current.Pets
	r.byID[u.ID] = u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	r.order = removeID(r.order, id)
	return nil
}

func (r *userRepo) AddPet(ctx context.Context, userID, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return users.ErrNotFound
	}
	u.Pets = append(cloneIDs(u.Pets), petID)
	r.byID[userID] = u
	return nil
}

func cloneIDs(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
