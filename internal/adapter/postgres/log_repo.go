package postgres

import (
	"context"

	"fitness/internal/domain"
)

// AddWorkout inserts a workout and its exercise row in one transaction and
// returns the workout id produced by the insert.
func (d *DB) AddWorkout(ctx context.Context, userID int64, day string, exerciseID int64, durationMinutes float64) (int64, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	if err := tx.QueryRowContext(ctx,
		"INSERT INTO workouts (user_id, day) VALUES ($1, $2) RETURNING id;",
		userID, day,
	).Scan(&id); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO workout_exercises (workout_id, exercise_id, duration_minutes) VALUES ($1, $2, $3);",
		id, exerciseID, durationMinutes,
	); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// AddMeal inserts a meal and its item row in one transaction and returns the
// meal id produced by the insert.
func (d *DB) AddMeal(ctx context.Context, userID int64, mealType domain.MealType, day string, foodID int64, quantity float64) (int64, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	if err := tx.QueryRowContext(ctx,
		"INSERT INTO meals (user_id, meal_type, day) VALUES ($1, $2, $3) RETURNING id;",
		userID, string(mealType), day,
	).Scan(&id); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO meal_items (meal_id, food_id, quantity) VALUES ($1, $2, $3);",
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
	return d.queryFoodLog(ctx, foodLogQuery+" ORDER BY m.day DESC, m.id DESC;")
}

// FoodLogForUser returns the meal items of one user, newest first.
func (d *DB) FoodLogForUser(ctx context.Context, userID int64) ([]domain.FoodLogEntry, error) {
	return d.queryFoodLog(ctx, foodLogQuery+" WHERE m.user_id = $1 ORDER BY m.day DESC, m.id DESC;", userID)
}

// ExerciseLog returns every workout exercise joined with its user and exercise, newest first.
func (d *DB) ExerciseLog(ctx context.Context) ([]domain.ExerciseLogEntry, error) {
	return d.queryExerciseLog(ctx, exerciseLogQuery+" ORDER BY w.day DESC, w.id DESC;")
}

// ExerciseLogForUser returns the workout exercises of one user, newest first.
func (d *DB) ExerciseLogForUser(ctx context.Context, userID int64) ([]domain.ExerciseLogEntry, error) {
	return d.queryExerciseLog(ctx, exerciseLogQuery+" WHERE w.user_id = $1 ORDER BY w.day DESC, w.id DESC;", userID)
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
