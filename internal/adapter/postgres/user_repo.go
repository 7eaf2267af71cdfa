package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitness/internal/domain"
)

const userColumns = "id, name, email, password_hash, age, gender, height_cm, weight_kg, goal, created_at"

// CreateUser inserts a user and returns the new id.
func (d *DB) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (name, email, password_hash, age, gender, height_cm, weight_kg, goal, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id",
		u.Name, u.Email, u.PasswordHash, u.Age, string(u.Gender), u.HeightCm, u.WeightKg, u.Goal.String(), u.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// GetUser retrieves a user by ID. A missing user is (nil, nil).
func (d *DB) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(d.sql.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns all users ordered by id.
func (d *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u      domain.User
		gender string
		goal   string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Age, &gender, &u.HeightCm, &u.WeightKg, &goal, &u.CreatedAt); err != nil {
		return nil, err
	}
	g, err := domain.ParseGoal(goal)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", u.ID, err)
	}
	u.Goal = g
	u.Gender = domain.Gender(gender)
	return &u, nil
}
