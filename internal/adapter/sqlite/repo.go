package sqlite

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
		"INSERT INTO users (name, email, password_hash, age, gender, height_cm, weight_kg, goal, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id",
		u.Name, u.Email, u.PasswordHash, u.Age, string(u.Gender), u.HeightCm, u.WeightKg, u.Goal.String(), u.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// GetUser retrieves a user by ID. A missing user is (nil, nil).
func (d *DB) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(d.sql.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
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

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
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

// UpsertFood inserts a food or updates the calories of the one with the same name.
func (d *DB) UpsertFood(ctx context.Context, name string, caloriesPerUnit float64) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO foods (name, calories) VALUES (?, ?) ON CONFLICT (name) DO UPDATE SET calories = excluded.calories RETURNING id",
		name, caloriesPerUnit,
	).Scan(&id)
	return id, err
}

// UpsertExercise inserts an exercise or updates the burn rate of the one with the same name.
func (d *DB) UpsertExercise(ctx context.Context, name string, caloriesBurnedPerHour float64) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO exercises (name, calories_burned) VALUES (?, ?) ON CONFLICT (name) DO UPDATE SET calories_burned = excluded.calories_burned RETURNING id",
		name, caloriesBurnedPerHour,
	).Scan(&id)
	return id, err
}

// GetFood retrieves a food by ID.
func (d *DB) GetFood(ctx context.Context, id int64) (*domain.Food, error) {
	var f domain.Food
	err := d.sql.QueryRowContext(ctx, "SELECT id, name, calories FROM foods WHERE id = ?", id).
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
	err := d.sql.QueryRowContext(ctx, "SELECT id, name, calories_burned FROM exercises WHERE id = ?", id).
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

// AddWorkout inserts a workout and its exercise row in one transaction.
func (d *DB) AddWorkout(ctx context.Context, userID int64, day string, exerciseID int64, durationMinutes float64) (int64, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	if err := tx.QueryRowContext(ctx, "INSERT INTO workouts (user_id, day) VALUES (?, ?) RETURNING id", userID, day).Scan(&id); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO workout_exercises (workout_id, exercise_id, duration_minutes) VALUES (?, ?, ?)",
		id, exerciseID, durationMinutes,
	); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// AddMeal inserts a meal and its item row in one transaction.
func (d *DB) AddMeal(ctx context.Context, userID int64, mealType domain.MealType, day string, foodID int64, quantity float64) (int64, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	if err := tx.QueryRowContext(ctx,
		"INSERT INTO meals (user_id, meal_type, day) VALUES (?, ?, ?) RETURNING id",
		userID, string(mealType), day,
	).Scan(&id); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO meal_items (meal_id, food_id, quantity) VALUES (?, ?, ?)",
		id, foodID, quantity,
	); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

const foodLogQuery = `SELECT m.id, u.id, u.name, m.meal_type, m.day, f.id, f.name, mi.quantity, f.calories
	FROM meals m
	JOIN users u ON u.id = m.user_id
	JOIN meal_items mi ON mi.meal_id = m.id
	JOIN foods f ON f.id = mi.food_id`

const exerciseLogQuery = `SELECT w.id, u.id, u.name, w.day, e.id, e.name, we.duration_minutes, e.calories_burned
	FROM workouts w
	JOIN users u ON u.id = w.user_id
	JOIN workout_exercises we ON we.workout_id = w.id
	JOIN exercises e ON e.id = we.exercise_id`

// FoodLog returns every meal item joined with its user and food, newest first.
func (d *DB) FoodLog(ctx context.Context) ([]domain.FoodLogEntry, error) {
	return d.queryFoodLog(ctx, foodLogQuery+" ORDER BY m.day DESC, m.id DESC")
}

// FoodLogForUser returns the meal items of one user, newest first.
func (d *DB) FoodLogForUser(ctx context.Context, userID int64) ([]domain.FoodLogEntry, error) {
	return d.queryFoodLog(ctx, foodLogQuery+" WHERE m.user_id = ? ORDER BY m.day DESC, m.id DESC", userID)
}

// ExerciseLog returns every workout exercise joined with its user and exercise, newest first.
func (d *DB) ExerciseLog(ctx context.Context) ([]domain.ExerciseLogEntry, error) {
	return d.queryExerciseLog(ctx, exerciseLogQuery+" ORDER BY w.day DESC, w.id DESC")
}

// ExerciseLogForUser returns the workout exercises of one user, newest first.
func (d *DB) ExerciseLogForUser(ctx context.Context, userID int64) ([]domain.ExerciseLogEntry, error) {
	return d.queryExerciseLog(ctx, exerciseLogQuery+" WHERE w.user_id = ? ORDER BY w.day DESC, w.id DESC", userID)
}

func (d *DB) queryFoodLog(ctx context.Context, query string, args ...any) ([]domain.FoodLogEntry, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FoodLogEntry, 0)
	for rows.Next() {
		var (
			e        domain.FoodLogEntry
			mealType string
		)
		if err := rows.Scan(&e.MealID, &e.UserID, &e.UserName, &mealType, &e.Day, &e.FoodID, &e.FoodName, &e.Quantity, &e.CaloriesPerUnit); err != nil {
			return nil, err
		}
		e.MealType = domain.MealType(mealType)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (d *DB) queryExerciseLog(ctx context.Context, query string, args ...any) ([]domain.ExerciseLogEntry, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.ExerciseLogEntry, 0)
	for rows.Next() {
		var e domain.ExerciseLogEntry
		if err := rows.Scan(&e.WorkoutID, &e.UserID, &e.UserName, &e.Day, &e.ExerciseID, &e.ExerciseName, &e.DurationMinutes, &e.CaloriesBurnedPerHour); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
