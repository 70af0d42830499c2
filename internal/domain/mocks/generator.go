// Package mocks genera usuarios y mascotas de prueba y los inserta a pedido.
package mocks

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/users"
	"adoptme/internal/platform/password"
)

// DefaultPassword es el password en claro de todos los usuarios mock.
const DefaultPassword = "coder123"

var mockRoles = []users.Role{users.RoleUser, users.RoleAdmin}

// Generator arma datos mock. No persiste nada.
// Es seguro para uso concurrente: el router comparte una instancia entre requests.
type Generator struct {
	mu       sync.Mutex // protege rnd
	rnd      *rand.Rand
	hashCost int
}

type GeneratorOption func(*Generator)

// WithRand fija la fuente aleatoria (tests deterministas).
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) { g.rnd = r }
}

func WithHashCost(cost int) GeneratorOption {
	return func(g *Generator) { g.hashCost = cost }
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rnd:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		hashCost: password.DefaultCost,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Users genera n usuarios Usuario{i}/Apellido{i}. emailTag, si no está vacío,
// se agrega a la parte local del email (user{i}+tag@example.com).
func (g *Generator) Users(n int, emailTag string) ([]users.User, error) {
	out := make([]users.User, 0, n)
	if n <= 0 {
		return out, nil
	}

	// mismo password para todos: se hashea una vez por lote.
	hash, err := password.Hash(DefaultPassword, g.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash mock password: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 1; i <= n; i++ {
		local := fmt.Sprintf("user%d", i)
		if emailTag != "" {
			local += "+" + emailTag
		}
		out = append(out, users.User{
			FirstName: fmt.Sprintf("Usuario%d", i),
			LastName:  fmt.Sprintf("Apellido%d", i),
			Email:     local + "@example.com",
			Password:  hash,
			Role:      mockRoles[g.rnd.IntN(len(mockRoles))],
			Pets:      []string{},
		})
	}
	return out, nil
}

// Pets genera n mascotas Mascota{i}, disponibles, nacidas entre 2020 y 2023.
func (g *Generator) Pets(n int) []pets.Pet {
	out := make([]pets.Pet, 0, max(n, 0))

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 1; i <= n; i++ {
		bd := time.Date(
			2020+g.rnd.IntN(4),
			time.Month(1+g.rnd.IntN(12)),
			1+g.rnd.IntN(28),
			0, 0, 0, 0, time.UTC,
		)
		out = append(out, pets.Pet{
			Name:      fmt.Sprintf("Mascota%d", i),
			Specie:    string(pets.KnownSpecies[g.rnd.IntN(len(pets.KnownSpecies))]),
			BirthDate: &bd,
		})
	}
	return out
}
