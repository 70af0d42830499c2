package adoptions

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los adapters cuando el id no existe o no tiene formato válido.
var ErrNotFound = errors.New("adoption not found")

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)
	// List devuelve las adopciones en orden de inserción.
	List(ctx context.Context) ([]Adoption, error)
}
