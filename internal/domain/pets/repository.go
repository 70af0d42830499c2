package pets

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound lo devuelven los adapters cuando el id no existe o no tiene formato válido.
	ErrNotFound = errors.New("pet not found")
	// ErrAlreadyAdopted lo devuelve MarkAdopted cuando el compare-and-set pierde.
	ErrAlreadyAdopted = errors.New("pet is already adopted")
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error

	// MarkAdopted es un compare-and-set: solo escribe si adopted=false.
	// Devuelve ErrAlreadyAdopted si otra adopción ganó, ErrNotFound si no existe.
	MarkAdopted(ctx context.Context, petID, ownerID string, at time.Time) error
}
