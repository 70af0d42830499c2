package adoptions

import "time"

// Adoption es el registro inmutable de una adopción exitosa.
// Es un log histórico: no se deduplica contra el estado actual del Pet.
type Adoption struct {
	ID    string
	Owner string // user id
	Pet   string // pet id

	CreatedAt time.Time
}
