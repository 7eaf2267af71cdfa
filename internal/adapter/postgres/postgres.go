// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"fitness/internal/domain"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

var _ domain.UserRepository = (*DB)(nil)
var _ domain.CatalogRepository = (*DB)(nil)
var _ domain.WorkoutRepository = (*DB)(nil)
var _ domain.MealRepository = (*DB)(nil)
var _ domain.LogReader = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, email TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, age INTEGER NOT NULL CHECK(age BETWEEN 10 AND 100), gender TEXT NOT NULL CHECK(gender IN ('Male','Female','Other')), height_cm DOUBLE PRECISION NOT NULL, weight_kg DOUBLE PRECISION NOT NULL, goal TEXT NOT NULL CHECK(goal IN ('lose_weight','gain_muscle','maintain')), created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS foods (id BIGSERIAL PRIMARY KEY, name TEXT UNIQUE NOT NULL, calories DOUBLE PRECISION NOT NULL CHECK(calories > 0));",
		"CREATE TABLE IF NOT EXISTS exercises (id BIGSERIAL PRIMARY KEY, name TEXT UNIQUE NOT NULL, calories_burned DOUBLE PRECISION NOT NULL CHECK(calories_burned > 0));",
		"CREATE TABLE IF NOT EXISTS workouts (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, day TEXT NOT NULL);",
		"CREATE TABLE IF NOT EXISTS workout_exercises (workout_id BIGINT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE, exercise_id BIGINT NOT NULL REFERENCES exercises(id), duration_minutes DOUBLE PRECISION NOT NULL CHECK(duration_minutes > 0), PRIMARY KEY (workout_id, exercise_id));",
		"CREATE INDEX IF NOT EXISTS idx_workouts_user_id ON workouts(user_id);",
		"CREATE TABLE IF NOT EXISTS meals (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, meal_type TEXT NOT NULL CHECK(meal_type IN ('Breakfast','Lunch','Dinner','Snack')), day TEXT NOT NULL);",
		"CREATE TABLE IF NOT EXISTS meal_items (meal_id BIGINT NOT NULL REFERENCES meals(id) ON DELETE CASCADE, food_id BIGINT NOT NULL REFERENCES foods(id), quantity DOUBLE PRECISION NOT NULL CHECK(quantity > 0), PRIMARY KEY (meal_id, food_id));",
		"CREATE INDEX IF NOT EXISTS idx_meals_user_id ON meals(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_meal_items_food_id ON meal_items(food_id);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
