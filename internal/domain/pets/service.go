package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

// WithIDGenerator fija el formato de ids del store (uuid, ObjectID, ...).
func WithIDGenerator(f func() string) Option {
	return func(s *Service) {
		if f != nil {
			s.newID = f
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	Name      string
	Specie    string
	BirthDate *time.Time
	Image     string
}

// Create registra una mascota disponible (adopted=false, sin owner).
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	specie := strings.TrimSpace(in.Specie)
	if name == "" || specie == "" || in.BirthDate == nil {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:        s.newID(),
		Name:      name,
		Specie:    specie,
		BirthDate: in.BirthDate,
		Image:     strings.TrimSpace(in.Image),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// UpdateInput no expone adopted/owner: solo la adopción puede cambiarlos.
type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string
	Specie    *string
	BirthDate *time.Time
	Image     *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = v
	}
	if in.Specie != nil {
		v := strings.TrimSpace(*in.Specie)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Specie = v
	}
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.Image != nil {
		p.Image = strings.TrimSpace(*in.Image)
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

// MarkAdopted es el paso 1 de la adopción (compare-and-set sobre adopted).
func (s *Service) MarkAdopted(ctx context.Context, petID, ownerID string) error {
	return s.repo.MarkAdopted(ctx, petID, ownerID, s.now())
}

// ParseBirthDate acepta YYYY-MM-DD o RFC3339.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}
