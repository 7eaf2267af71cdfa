package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitness/internal/domain"
)

// UpsertFood inserts a food or updates the calories of the one with the same name.
func (d *DB) UpsertFood(ctx context.Context, name string, caloriesPerUnit float64) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO foods (name, calories) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET calories = EXCLUDED.calories RETURNING id",
		name, caloriesPerUnit,
	).Scan(&id)
	return id, err
}

// UpsertExercise inserts an exercise or updates the burn rate of the one with the same name.
func (d *DB) UpsertExercise(ctx context.Context, name string, caloriesBurnedPerHour float64) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO exercises (name, calories_burned) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET calories_burned = EXCLUDED.calories_burned RETURNING id",
		name, caloriesBurnedPerHour,
	).Scan(&id)
	return id, err
}

// GetFood retrieves a food by ID.
func (d *DB) GetFood(ctx context.Context, id int64) (*domain.Food, error) {
	var f domain.Food
	err := d.sql.QueryRowContext(ctx, "SELECT id, name, calories FROM foods WHERE id = $1", id).
		Scan(&f.ID, &f.Name, &f.CaloriesPerUnit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetExercise retrieves an exercise by ID.
func (d *DB) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	var e domain.Exercise
	err := d.sql.QueryRowContext(ctx, "SELECT id, name, calories_burned FROM exercises WHERE id = $1", id).
		Scan(&e.ID, &e.Name, &e.CaloriesBurnedPerHour)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListFoods returns the food catalog sorted by name.
func (d *DB) ListFoods(ctx context.Context) ([]domain.Food, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, name, calories FROM foods ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Food, 0)
	for rows.Next() {
		var f domain.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.CaloriesPerUnit); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ListExercises returns the exercise catalog sorted by name.
func (d *DB) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, name, calories_burned FROM exercises ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Exercise, 0)
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.CaloriesBurnedPerHour); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
