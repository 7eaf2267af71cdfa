// Package sqlite implements the domain repositories on an embedded SQLite
// database. It backs local runs that have no PostgreSQL server.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

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

// Open opens (creating if needed) the database at path and runs migrations.
// Use ":memory:" for a throwaway database.
func Open(path string) (*DB, error) {
	s, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, err
	}
	// One connection: SQLite has a single writer, and an in-memory database
	// exists only on the connection that created it.
	s.SetMaxOpenConns(1)
	s.SetConnMaxLifetime(0)

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

func dsn(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL, email TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, age INTEGER NOT NULL CHECK(age BETWEEN 10 AND 100), gender TEXT NOT NULL CHECK(gender IN ('Male','Female','Other')), height_cm REAL NOT NULL, weight_kg REAL NOT NULL, goal TEXT NOT NULL CHECK(goal IN ('lose_weight','gain_muscle','maintain')), created_at DATETIME NOT NULL);",
		"CREATE TABLE IF NOT EXISTS foods (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT UNIQUE NOT NULL, calories REAL NOT NULL CHECK(calories > 0));",
		"CREATE TABLE IF NOT EXISTS exercises (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT UNIQUE NOT NULL, calories_burned REAL NOT NULL CHECK(calories_burned > 0));",
		"CREATE TABLE IF NOT EXISTS workouts (id INTEGER PRIMARY KEY AUTOINCREMENT, user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE, day TEXT NOT NULL);",
		"CREATE TABLE IF NOT EXISTS workout_exercises (workout_id INTEGER NOT NULL REFERENCES workouts(id) ON DELETE CASCADE, exercise_id INTEGER NOT NULL REFERENCES exercises(id), duration_minutes REAL NOT NULL CHECK(duration_minutes > 0), PRIMARY KEY (workout_id, exercise_id));",
		"CREATE INDEX IF NOT EXISTS idx_workouts_user_id ON workouts(user_id);",
		"CREATE TABLE IF NOT EXISTS meals (id INTEGER PRIMARY KEY AUTOINCREMENT, user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE, meal_type TEXT NOT NULL CHECK(meal_type IN ('Breakfast','Lunch','Dinner','Snack')), day TEXT NOT NULL);",
		"CREATE TABLE IF NOT EXISTS meal_items (meal_id INTEGER NOT NULL REFERENCES meals(id) ON DELETE CASCADE, food_id INTEGER NOT NULL REFERENCES foods(id), quantity REAL NOT NULL CHECK(quantity > 0), PRIMARY KEY (meal_id, food_id));",
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
