package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost es 10, el mismo cost de los hashes ya guardados.
const DefaultCost = bcrypt.DefaultCost

var ErrEmpty = errors.New("password is empty")

// Hash devuelve el hash bcrypt (salt incluido) de plain.
// Si cost es inválido se usa DefaultCost.
func Hash(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check compara plain contra un hash bcrypt guardado.
func Check(plain, hashed string) bool {
	if plain == "" || hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
