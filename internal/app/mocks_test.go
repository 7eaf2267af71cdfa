package app_test

import (
	"context"
	"testing"

	"go.uber.org/goleak"

	"fitness/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockUserRepo struct {
	createFn func(ctx context.Context, u domain.User) (int64, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	listFn   func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return 1, nil
}

func (m *mockUserRepo) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &domain.User{ID: id, Name: "ana", Goal: domain.GoalMaintain}, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockCatalogRepo struct {
	upsertFoodFn     func(ctx context.Context, name string, cal float64) (int64, error)
	upsertExerciseFn func(ctx context.Context, name string, cal float64) (int64, error)
	getFoodFn        func(ctx context.Context, id int64) (*domain.Food, error)
	getExerciseFn    func(ctx context.Context, id int64) (*domain.Exercise, error)
}

func (m *mockCatalogRepo) UpsertFood(ctx context.Context, name string, cal float64) (int64, error) {
	if m.upsertFoodFn != nil {
		return m.upsertFoodFn(ctx, name, cal)
	}
	return 1, nil
}

func (m *mockCatalogRepo) UpsertExercise(ctx context.Context, name string, cal float64) (int64, error) {
	if m.upsertExerciseFn != nil {
		return m.upsertExerciseFn(ctx, name, cal)
	}
	return 1, nil
}

func (m *mockCatalogRepo) GetFood(ctx context.Context, id int64) (*domain.Food, error) {
	if m.getFoodFn != nil {
		return m.getFoodFn(ctx, id)
	}
	return &domain.Food{ID: id, Name: "oats", CaloriesPerUnit: 100}, nil
}

func (m *mockCatalogRepo) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	if m.getExerciseFn != nil {
		return m.getExerciseFn(ctx, id)
	}
	return &domain.Exercise{ID: id, Name: "run", CaloriesBurnedPerHour: 600}, nil
}

func (m *mockCatalogRepo) ListFoods(ctx context.Context) ([]domain.Food, error) {
	return nil, nil
}

func (m *mockCatalogRepo) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return nil, nil
}

type mockLogReader struct {
	foodFn            func(ctx context.Context) ([]domain.FoodLogEntry, error)
	foodForUserFn     func(ctx context.Context, userID int64) ([]domain.FoodLogEntry, error)
	exerciseFn        func(ctx context.Context) ([]domain.ExerciseLogEntry, error)
	exerciseForUserFn func(ctx context.Context, userID int64) ([]domain.ExerciseLogEntry, error)
}

func (m *mockLogReader) FoodLog(ctx context.Context) ([]domain.FoodLogEntry, error) {
	if m.foodFn != nil {
		return m.foodFn(ctx)
	}
	return nil, nil
}

func (m *mockLogReader) FoodLogForUser(ctx context.Context, userID int64) ([]domain.FoodLogEntry, error) {
	if m.foodForUserFn != nil {
		return m.foodForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockLogReader) ExerciseLog(ctx context.Context) ([]domain.ExerciseLogEntry, error) {
	if m.exerciseFn != nil {
		return m.exerciseFn(ctx)
	}
	return nil, nil
}

func (m *mockLogReader) ExerciseLogForUser(ctx context.Context, userID int64) ([]domain.ExerciseLogEntry, error) {
	if m.exerciseForUserFn != nil {
		return m.exerciseForUserFn(ctx, userID)
	}
	return nil, nil
}

type mockWorkoutRepo struct {
	addFn func(ctx context.Context, userID int64, day string, exerciseID int64, minutes float64) (int64, error)
}

func (m *mockWorkoutRepo) AddWorkout(ctx context.Context, userID int64, day string, exerciseID int64, minutes float64) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, day, exerciseID, minutes)
	}
	return 1, nil
}

type mockMealRepo struct {
	addFn func(ctx context.Context, userID int64, mt domain.MealType, day string, foodID int64, qty float64) (int64, error)
}

func (m *mockMealRepo) AddMeal(ctx context.Context, userID int64, mt domain.MealType, day string, foodID int64, qty float64) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, mt, day, foodID, qty)
	}
	return 1, nil
}
