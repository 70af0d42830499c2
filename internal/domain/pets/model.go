package pets

import "time"

// Species es el vocabulario habitual de especies. El campo Specie del Pet es libre;
// estas constantes las usan los mocks.
type Species string

const (
	SpeciesDog     Species = "Perro"
	SpeciesCat     Species = "Gato"
	SpeciesRabbit  Species = "Conejo"
	SpeciesHamster Species = "Hamster"
	SpeciesBird    Species = "Pájaro"
)

// KnownSpecies en orden estable.
var KnownSpecies = []Species{SpeciesDog, SpeciesCat, SpeciesRabbit, SpeciesHamster, SpeciesBird}

// Pet representa una mascota del refugio.
//
// Ciclo de vida: available -> adopted, una sola vez. Owner es "" mientras Adopted sea false.
type Pet struct {
	ID string

	Name      string
	Specie    string
	BirthDate *time.Time

	Adopted bool
	Owner   string // id del usuario que la adoptó

	// Image es la referencia devuelta por el image store (path o URL).
	Image string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Available indica si la mascota todavía puede adoptarse.
func (p Pet) Available() bool {
	return !p.Adopted
}
