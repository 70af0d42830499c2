package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/users"
	"adoptme/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPetNotFound       = errors.New("pet not found")
	ErrPetAlreadyAdopted = errors.New("pet is already adopted")
)

// UserDirectory es lo que la adopción necesita de users (lo cumple *users.Service).
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (users.User, error)
	AddPet(ctx context.Context, userID, petID string) error
}

// PetRegistry es lo que la adopción necesita de pets (lo cumple *pets.Service).
type PetRegistry interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	MarkAdopted(ctx context.Context, petID, ownerID string) error
}

type Service struct {
	repo  Repository
	users UserDirectory
	pets  PetRegistry
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

func WithIDGenerator(f func() string) Option {
	return func(s *Service) {
		if f != nil {
			s.newID = f
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo Repository, userDir UserDirectory, petReg PetRegistry, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		users: userDir,
		pets:  petReg,
		log:   logger.Nop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate resuelve user y pet y chequea que la mascota siga disponible.
// Es el único lugar que traduce misses del store a ErrUserNotFound / ErrPetNotFound.
// No tiene efectos secundarios.
func (s *Service) Validate(ctx context.Context, userID, petID string) (users.User, pets.Pet, error) {
	u, err := s.users.GetByID(ctx, strings.TrimSpace(userID))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return users.User{}, pets.Pet{}, ErrUserNotFound
		}
		return users.User{}, pets.Pet{}, fmt.Errorf("load user: %w", err)
	}

	p, err := s.pets.GetByID(ctx, strings.TrimSpace(petID))
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return users.User{}, pets.Pet{}, ErrPetNotFound
		}
		return users.User{}, pets.Pet{}, fmt.Errorf("load pet: %w", err)
	}

	if p.Adopted {
		return users.User{}, pets.Pet{}, ErrPetAlreadyAdopted
	}
	return u, p, nil
}

// Adopt valida y ejecuta la transición available -> adopted.
func (s *Service) Adopt(ctx context.Context, userID, petID string) error {
	u, p, err := s.Validate(ctx, userID, petID)
	if err != nil {
		return err
	}
	return s.transition(ctx, u, p)
}

// transition asume entradas validadas. Tres escrituras:
//  1. pet.adopted=true, pet.owner=user (compare-and-set: si otra adopción ganó, ErrPetAlreadyAdopted)
//  2. pet agregado a user.pets
//  3. registro Adoption
//
// 2 y 3 no van en una transacción multi-registro: si fallan después de 1, la mascota queda
// adoptada sin reflejo en el usuario/log. Se loguea con los ids para reparar a mano.
func (s *Service) transition(ctx context.Context, u users.User, p pets.Pet) error {
	if err := s.pets.MarkAdopted(ctx, p.ID, u.ID); err != nil {
		switch {
		case errors.Is(err, pets.ErrAlreadyAdopted):
			return ErrPetAlreadyAdopted
		case errors.Is(err, pets.ErrNotFound):
			return ErrPetNotFound
		}
		return fmt.Errorf("mark pet adopted: %w", err)
	}

	if err := s.users.AddPet(ctx, u.ID, p.ID); err != nil {
		s.log.Error("adoption partially applied: pet adopted but user not updated", map[string]any{
			"user_id": u.ID,
			"pet_id":  p.ID,
			"err":     err.Error(),
		})
		return fmt.Errorf("attach pet to user: %w", err)
	}

	a := Adoption{
		ID:        s.newID(),
		Owner:     u.ID,
		Pet:       p.ID,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("adoption partially applied: adoption record not created", map[string]any{
			"user_id": u.ID,
			"pet_id":  p.ID,
			"err":     err.Error(),
		})
		return fmt.Errorf("create adoption: %w", err)
	}

	s.log.Info("pet adopted", map[string]any{
		"adoption_id": a.ID,
		"user_id":     u.ID,
		"pet_id":      p.ID,
	})
	return nil
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	return s.repo.List(ctx)
}

// GetByID: ids inexistentes o mal formados => ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adoption{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
