package users

import "time"

// Role define los roles soportados.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User es una cuenta registrada (por registro o por seeding de mocks).
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string // único

	// Password guarda siempre el hash bcrypt, nunca el texto plano.
	Password string
	Role     Role

	// Pets son ids de mascotas en orden de adopción.
	Pets []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasPet indica si petID ya figura en la colección del usuario.
func (u User) HasPet(petID string) bool {
	for _, id := range u.Pets {
		if id == petID {
			return true
		}
	}
	return false
}
