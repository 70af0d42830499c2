package sessions

import (
	"context"
	"errors"
	"strings"
	"time"

	"adoptme/internal/domain/users"
	"adoptme/internal/ports/auth"
)

var (
	ErrIncomplete  = errors.New("incomplete values")
	ErrUserExists  = errors.New("user already exists")
	ErrNoSuchUser  = errors.New("user doesn't exist")
	ErrBadPassword = errors.New("incorrect password")
)

// TokenIssuer lo implementa adapters/auth/jwtsession.
type TokenIssuer interface {
	Issue(c auth.Claims) (string, auth.Claims, error)
	Revoke(ctx context.Context, token string) error
	TTL() time.Duration
}

type Service struct {
	users  *users.Service
	issuer TokenIssuer
}

func NewService(usersSvc *users.Service, issuer TokenIssuer) *Service {
	return &Service{users: usersSvc, issuer: issuer}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register crea un usuario con rol user y password hasheado.
func (s *Service) Register(ctx context.Context, in RegisterInput) (users.User, error) {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		in.Password == "" {
		return users.User{}, ErrIncomplete
	}

	u, err := s.users.Create(ctx, users.CreateInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      users.RoleUser,
	})
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, users.ErrEmailTaken):
		return users.User{}, ErrUserExists
	case errors.Is(err, users.ErrInvalidInput):
		return users.User{}, ErrIncomplete
	default:
		return users.User{}, err
	}
}

// Login valida credenciales y emite un token de sesión.
func (s *Service) Login(ctx context.Context, email, password string) (string, auth.Claims, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", auth.Claims{}, ErrIncomplete
	}

	u, err := s.users.Authenticate(ctx, email, password)
	switch {
	case errors.Is(err, users.ErrNotFound):
		return "", auth.Claims{}, ErrNoSuchUser
	case errors.Is(err, users.ErrWrongPassword):
		return "", auth.Claims{}, ErrBadPassword
	case err != nil:
		return "", auth.Claims{}, err
	}

	return s.issuer.Issue(auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.FullName(),
		Role:   string(u.Role),
	})
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.issuer.Revoke(ctx, token)
}

func (s *Service) SessionTTL() time.Duration {
	return s.issuer.TTL()
}
