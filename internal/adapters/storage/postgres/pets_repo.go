package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"adoptme/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, name, specie, birth_date, adopted, owner_id, image, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		p.Specie,
		toNullDate(p.BirthDate),
		p.Adopted,
		toNullString(p.Owner),
		p.Image,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Update no toca adopted/owner_id: solo MarkAdopted los cambia.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	if !validID(p.ID) {
		return pets.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			specie = $3,
			birth_date = $4,
			image = $5,
			updated_at = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Specie,
		toNullDate(p.BirthDate),
		p.Image,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return pets.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// MarkAdopted: UPDATE condicional (adopted = false). Si no afecta filas, distingue
// entre "no existe" y "otra adopción ganó".
func (r *PetsRepo) MarkAdopted(ctx context.Context, petID, ownerID string, at time.Time) error {
	if !validID(petID) {
		return pets.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted = TRUE, owner_id = $2, updated_at = $3
		WHERE id = $1 AND adopted = FALSE
	`, petID, ownerID, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, petID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return pets.ErrNotFound
	}
	return pets.ErrAlreadyAdopted
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var (
		p     pets.Pet
		bd    sql.NullTime
		owner sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Specie,
		&bd,
		&p.Adopted,
		&owner,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	if bd.Valid {
		// ojo: birth_date es date, pgx lo mapea a time.Time midnight UTC
		t := bd.Time
		p.BirthDate = &t
	}
	if owner.Valid {
		p.Owner = owner.String
	}
	return p, nil
}
