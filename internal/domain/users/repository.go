package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound lo devuelven los adapters cuando el id no existe o no tiene formato válido.
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already in use")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error

	// AddPet agrega petID al final de la colección del usuario.
	AddPet(ctx context.Context, userID, petID string) error
}
