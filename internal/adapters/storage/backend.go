// Package storage elige el backend de persistencia según la config.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"adoptme/internal/adapters/storage/memory"
	mongostore "adoptme/internal/adapters/storage/mongo"
	pg "adoptme/internal/adapters/storage/postgres"
	"adoptme/internal/config"
	"adoptme/internal/domain/adoptions"
	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/users"

	"github.com/google/uuid"
)

// Backend agrupa los repos de un mismo store y el generador de ids que ese store acepta.
type Backend struct {
	Driver string

	Users     users.Repository
	Pets      pets.Repository
	Adoptions adoptions.Repository

	NewID func() string

	migrate func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// NewMemory arma un backend en memoria (dev y tests).
func NewMemory() *Backend {
	return &Backend{
		Driver:    config.StorageMemory,
		Users:     memory.NewUserRepo(),
		Pets:      memory.NewPetRepo(),
		Adoptions: memory.NewAdoptionRepo(),
		NewID:     uuid.NewString,
	}
}

// Open conecta al store configurado. El caller es dueño del Backend y debe cerrarlo.
func Open(ctx context.Context, cfg config.StorageConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		return NewMemory(), nil

	case config.StoragePostgres:
		db, err := pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver:    config.StoragePostgres,
			Users:     pg.NewUsersRepo(db),
			Pets:      pg.NewPetsRepo(db),
			Adoptions: pg.NewAdoptionsRepo(db),
			NewID:     uuid.NewString,
			migrate:   func(ctx context.Context) error { return pg.Migrate(ctx, db) },
			close:     func(context.Context) error { return closeDB(db) },
		}, nil

	case config.StorageMongo:
		client, db, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver:    config.StorageMongo,
			Users:     mongostore.NewUsersRepo(db),
			Pets:      mongostore.NewPetsRepo(db),
			Adoptions: mongostore.NewAdoptionsRepo(db),
			NewID:     mongostore.NewID,
			migrate:   func(ctx context.Context) error { return mongostore.Migrate(ctx, db) },
			close:     client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

// Migrate aplica schema/índices. En memoria no hace nada.
func (b *Backend) Migrate(ctx context.Context) error {
	if b == nil || b.migrate == nil {
		return nil
	}
	return b.migrate(ctx)
}

func (b *Backend) Close(ctx context.Context) error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close(ctx)
}

func closeDB(db *sql.DB) error {
	if err := db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	return nil
}
