package mocks

import (
	"context"
	"fmt"
	"strings"

	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/users"
	"adoptme/internal/platform/logger"

	"github.com/google/uuid"
)

// DefaultSampleSize es la cantidad que devuelven /mockingpets y /mockingusers.
const DefaultSampleSize = 50

type Service struct {
	gen   *Generator
	users *users.Service
	pets  *pets.Service
	log   logger.Logger
}

func NewService(gen *Generator, usersSvc *users.Service, petsSvc *pets.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{gen: gen, users: usersSvc, pets: petsSvc, log: log}
}

func (s *Service) SamplePets() []pets.Pet {
	return s.gen.Pets(DefaultSampleSize)
}

func (s *Service) SampleUsers() ([]users.User, error) {
	return s.gen.Users(DefaultSampleSize, "")
}

type GenerateResult struct {
	Users int `json:"users"`
	Pets  int `json:"pets"`
}

// Generate inserta nUsers usuarios y nPets mascotas. Los emails llevan un tag del lote
// para que correr varias veces no choque con el índice único.
// Si falla a mitad de camino, lo ya insertado queda.
func (s *Service) Generate(ctx context.Context, nUsers, nPets int) (GenerateResult, error) {
	var res GenerateResult

	tag := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	genUsers, err := s.gen.Users(nUsers, tag)
	if err != nil {
		return res, err
	}
	for _, u := range genUsers {
		if _, err := s.users.Create(ctx, users.CreateInput{
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Email:        u.Email,
			PasswordHash: u.Password,
			Role:         u.Role,
		}); err != nil {
			return res, fmt.Errorf("insert mock user %s: %w", u.Email, err)
		}
		res.Users++
	}

	for _, p := range s.gen.Pets(nPets) {
		if _, err := s.pets.Create(ctx, pets.CreateInput{
			Name:      p.Name,
			Specie:    p.Specie,
			BirthDate: p.BirthDate,
		}); err != nil {
			return res, fmt.Errorf("insert mock pet %s: %w", p.Name, err)
		}
		res.Pets++
	}

	s.log.Info("mock data generated", map[string]any{"users": res.Users, "pets": res.Pets, "batch": tag})
	return res, nil
}
