// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"fitness/internal/domain"
)

type workoutRow struct {
	id         int64
	userID     int64
	day        string
	exerciseID int64
	duration   float64
}

type mealRow struct {
	id       int64
	userID   int64
	mealType domain.MealType
	day      string
	foodID   int64
	quantity float64
}

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	users     []domain.User
	foods     []domain.Food
	exercises []domain.Exercise
	workouts  []workoutRow
	meals     []mealRow

	userIDCounter     int64
	foodIDCounter     int64
	exerciseIDCounter int64
	workoutIDCounter  int64
	mealIDCounter     int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.CatalogRepository = (*DB)(nil)
var _ domain.WorkoutRepository = (*DB)(nil)
var _ domain.MealRepository = (*DB)(nil)
var _ domain.LogReader = (*DB)(nil)

// Close is a no-op.
func (db *DB) Close() error { return nil }

// --- UserRepository ---

// CreateUser stores a user and returns its id.
func (db *DB) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.users {
		if existing.Email == u.Email {
			return 0, fmt.Errorf("email %q already registered", u.Email)
		}
	}
	db.userIDCounter++
	u.ID = db.userIDCounter
	db.users = append(db.users, u)
	return u.ID, nil
}

// GetUser retrieves a user by ID. A missing user is (nil, nil).
func (db *DB) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

// ListUsers returns all users ordered by id.
func (db *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := slices.Clone(db.users)
	if out == nil {
		out = []domain.User{}
	}
	return out, nil
}

// --- CatalogRepository ---

// UpsertFood inserts a food or updates the calories of the one with the same name.
func (db *DB) UpsertFood(ctx context.Context, name string, caloriesPerUnit float64) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.foods {
		if db.foods[i].Name == name {
			db.foods[i].CaloriesPerUnit = caloriesPerUnit
			return db.foods[i].ID, nil
		}
	}
	db.foodIDCounter++
	db.foods = append(db.foods, domain.Food{ID: db.foodIDCounter, Name: name, CaloriesPerUnit: caloriesPerUnit})
	return db.foodIDCounter, nil
}

// UpsertExercise inserts an exercise or updates the burn rate of the one with the same name.
func (db *DB) UpsertExercise(ctx context.Context, name string, caloriesBurnedPerHour float64) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.exercises {
		if db.exercises[i].Name == name {
			db.exercises[i].CaloriesBurnedPerHour = caloriesBurnedPerHour
			return db.exercises[i].ID, nil
		}
	}
	db.exerciseIDCounter++
	db.exercises = append(db.exercises, domain.Exercise{ID: db.exerciseIDCounter, Name: name, CaloriesBurnedPerHour: caloriesBurnedPerHour})
	return db.exerciseIDCounter, nil
}

// GetFood retrieves a food by ID.
func (db *DB) GetFood(ctx context.Context, id int64) (*domain.Food, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if f, ok := db.food(id); ok {
		return &f, nil
	}
	return nil, nil
}

// GetExercise retrieves an exercise by ID.
func (db *DB) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if e, ok := db.exercise(id); ok {
		return &e, nil
	}
	return nil, nil
}

// ListFoods returns the food catalog sorted by name.
func (db *DB) ListFoods(ctx context.Context) ([]domain.Food, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := slices.Clone(db.foods)
	slices.SortFunc(out, func(a, b domain.Food) int { return cmp.Compare(a.Name, b.Name) })
	if out == nil {
		out = []domain.Food{}
	}
	return out, nil
}

// ListExercises returns the exercise catalog sorted by name.
func (db *DB) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := slices.Clone(db.exercises)
	slices.SortFunc(out, func(a, b domain.Exercise) int { return cmp.Compare(a.Name, b.Name) })
	if out == nil {
		out = []domain.Exercise{}
	}
	return out, nil
}

// --- WorkoutRepository / MealRepository ---

// AddWorkout stores a workout and returns its id.
func (db *DB) AddWorkout(ctx context.Context, userID int64, day string, exerciseID int64, durationMinutes float64) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.user(userID); !ok {
		return 0, fmt.Errorf("user %d does not exist", userID)
	}
	if _, ok := db.exercise(exerciseID); !ok {
		return 0, fmt.Errorf("exercise %d does not exist", exerciseID)
	}
	db.workoutIDCounter++
	db.workouts = append(db.workouts, workoutRow{
		id: db.workoutIDCounter, userID: userID, day: day, exerciseID: exerciseID, duration: durationMinutes,
	})
	return db.workoutIDCounter, nil
}

// AddMeal stores a meal and returns its id.
func (db *DB) AddMeal(ctx context.Context, userID int64, mealType domain.MealType, day string, foodID int64, quantity float64) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.user(userID); !ok {
		return 0, fmt.Errorf("user %d does not exist", userID)
	}
	if _, ok := db.food(foodID); !ok {
		return 0, fmt.Errorf("food %d does not exist", foodID)
	}
	db.mealIDCounter++
	db.meals = append(db.meals, mealRow{
		id: db.mealIDCounter, userID: userID, mealType: mealType, day: day, foodID: foodID, quantity: quantity,
	})
	return db.mealIDCounter, nil
}

// --- LogReader ---

// FoodLog returns every meal item joined with its user and food, newest first.
func (db *DB) FoodLog(ctx context.Context) ([]domain.FoodLogEntry, error) {
	return db.foodLog(func(mealRow) bool { return true }), nil
}

// FoodLogForUser returns the meal items of one user, newest first.
func (db *DB) FoodLogForUser(ctx context.Context, userID int64) ([]domain.FoodLogEntry, error) {
	return db.foodLog(func(m mealRow) bool { return m.userID == userID }), nil
}

// ExerciseLog returns every workout exercise joined with its user and exercise, newest first.
func (db *DB) ExerciseLog(ctx context.Context) ([]domain.ExerciseLogEntry, error) {
	return db.exerciseLog(func(workoutRow) bool { return true }), nil
}

// ExerciseLogForUser returns the workout exercises of one user, newest first.
func (db *DB) ExerciseLogForUser(ctx context.Context, userID int64) ([]domain.ExerciseLogEntry, error) {
	return db.exerciseLog(func(w workoutRow) bool { return w.userID == userID }), nil
}

func (db *DB) foodLog(keep func(mealRow) bool) []domain.FoodLogEntry {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.FoodLogEntry, 0, len(db.meals))
	for _, m := range db.meals {
		if !keep(m) {
			continue
		}
		u, uok := db.user(m.userID)
		f, fok := db.food(m.foodID)
		if !uok || !fok {
			continue
		}
		out = append(out, domain.FoodLogEntry{
			MealID:          m.id,
			UserID:          u.ID,
			UserName:        u.Name,
			MealType:        m.mealType,
			Day:             m.day,
			FoodID:          f.ID,
			FoodName:        f.Name,
			Quantity:        m.quantity,
			CaloriesPerUnit: f.CaloriesPerUnit,
		})
	}
	slices.SortFunc(out, func(a, b domain.FoodLogEntry) int {
		if c := cmp.Compare(b.Day, a.Day); c != 0 {
			return c
		}
		return cmp.Compare(b.MealID, a.MealID)
	})
	return out
}

func (db *DB) exerciseLog(keep func(workoutRow) bool) []domain.ExerciseLogEntry {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.ExerciseLogEntry, 0, len(db.workouts))
	for _, w := range db.workouts {
		if !keep(w) {
			continue
		}
		u, uok := db.user(w.userID)
		e, eok := db.exercise(w.exerciseID)
		if !uok || !eok {
			continue
		}
		out = append(out, domain.ExerciseLogEntry{
			WorkoutID:             w.id,
			UserID:                u.ID,
			UserName:              u.Name,
			Day:                   w.day,
			ExerciseID:            e.ID,
			ExerciseName:          e.Name,
			DurationMinutes:       w.duration,
			CaloriesBurnedPerHour: e.CaloriesBurnedPerHour,
		})
	}
	slices.SortFunc(out, func(a, b domain.ExerciseLogEntry) int {
		if c := cmp.Compare(b.Day, a.Day); c != 0 {
			return c
		}
		return cmp.Compare(b.WorkoutID, a.WorkoutID)
	})
	return out
}

// lookups below expect db.mu to be held.

func (db *DB) user(id int64) (domain.User, bool) {
	for _, u := range db.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (db *DB) food(id int64) (domain.Food, bool) {
	for _, f := range db.foods {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Food{}, false
}

func (db *DB) exercise(id int64) (domain.Exercise, bool) {
	for _, e := range db.exercises {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Exercise{}, false
}
