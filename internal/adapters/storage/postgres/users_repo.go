package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"adoptme/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, first_name, last_name, email, password, role, created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrEmailTaken
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return users.User{}, users.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg string) (users.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	petIDs, err := r.petsOf(ctx, []string{u.ID})
	if err != nil {
		return users.User{}, err
	}
	u.Pets = petIDs[u.ID]
	if u.Pets == nil {
		u.Pets = []string{}
	}
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	ids := make([]string, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
		ids = append(ids, u.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	petIDs, err := r.petsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Pets = petIDs[out[i].ID]
		if out[i].Pets == nil {
			out[i].Pets = []string{}
		}
	}
	return out, nil
}

// Update no toca user_pets: la colección solo crece vía AddPet.
func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	if !validID(u.ID) {
		return users.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, role = $5, updated_at = $6
		WHERE id = $1
	`, u.ID, u.FirstName, u.LastName, u.Email, string(u.Role), u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return users.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) AddPet(ctx context.Context, userID, petID string) error {
	if !validID(userID) || !validID(petID) {
		return users.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO user_pets (user_id, pet_id)
		SELECT id, $2 FROM users WHERE id = $1
		ON CONFLICT (user_id, pet_id) DO NOTHING
	`, userID, petID)
	if err != nil {
		return fmt.Errorf("insert user_pets: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return users.ErrNotFound
		}
	}
	return nil
}

// petsOf trae las colecciones de mascotas de varios usuarios en una sola query.
func (r *UsersRepo) petsOf(ctx context.Context, userIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, pet_id
		FROM user_pets
		WHERE user_id = ANY($1::uuid[])
		ORDER BY seq ASC
	`, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var uid, pid string
		if err := rows.Scan(&uid, &pid); err != nil {
			return nil, err
		}
		out[uid] = append(out[uid], pid)
	}
	return out, rows.Err()
}

func scanUser(s rowScanner) (users.User, error) {
	var (
		u    users.User
		role string
	)
	if err := s.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, err
	}
	u.Role = users.Role(role)
	return u, nil
}
