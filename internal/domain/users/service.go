package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"adoptme/internal/platform/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRole   = errors.New("invalid role")
	ErrWrongPassword = errors.New("incorrect password")
)

type Service struct {
	repo     Repository
	now      func() time.Time
	newID    func() string
	hashCost int
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

// WithHashCost permite bajar el cost de bcrypt (tests / seeding masivo).
func WithHashCost(cost int) Option {
	return func(s *Service) { s.hashCost = cost }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		now:      time.Now,
		newID:    uuid.NewString,
		hashCost: password.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string

	// Password en texto plano; se hashea acá.
	Password string
	// PasswordHash permite crear usuarios ya hasheados (mocks). Tiene prioridad.
	PasswordHash string

	Role Role
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	email := normalizeEmail(in.Email)

	if first == "" || last == "" || email == "" {
		return User{}, ErrInvalidInput
	}
	if in.Password == "" && in.PasswordHash == "" {
		return User{}, ErrInvalidInput
	}

	role := in.Role
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return User{}, ErrInvalidRole
	}

	hash := in.PasswordHash
	if hash == "" {
		h, err := password.Hash(in.Password, s.hashCost)
		if err != nil {
			return User{}, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	now := s.now()
	u := User{
		ID:        s.newID(),
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  hash,
		Role:      role,
		Pets:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// Punteros: nil = no tocar.
	FirstName *string
	LastName  *string
	Email     *string
	Role      *Role
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	u, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return User{}, err
	}

	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		if v == "" {
			return User{}, ErrInvalidInput
		}
		u.FirstName = v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		if v == "" {
			return User{}, ErrInvalidInput
		}
		u.LastName = v
	}
	if in.Email != nil {
		v := normalizeEmail(*in.Email)
		if v == "" {
			return User{}, ErrInvalidInput
		}
		u.Email = v
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return User{}, ErrInvalidRole
		}
		u.Role = *in.Role
	}

	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

// AddPet agrega la mascota a la colección del usuario (paso 2 de la adopción).
func (s *Service) AddPet(ctx context.Context, userID, petID string) error {
	return s.repo.AddPet(ctx, userID, petID)
}

// Authenticate resuelve email + password. ErrNotFound si no existe el usuario,
// ErrWrongPassword si el hash no coincide.
func (s *Service) Authenticate(ctx context.Context, email, plain string) (User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if !password.Check(plain, u.Password) {
		return User{}, ErrWrongPassword
	}
	return u, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
