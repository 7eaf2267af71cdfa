package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitness/internal/app"
	"fitness/internal/domain"
)

func TestLogWorkout_Validation(t *testing.T) {
	svc := app.NewWorkoutService(&mockWorkoutRepo{}, &mockUserRepo{}, &mockCatalogRepo{}, &mockLogReader{})

	tests := []struct {
		name     string
		day      string
		duration float64
	}{
		{"zero duration", "2026-02-08", 0},
		{"under a minute", "2026-02-08", 0.5},
		{"bad day", "08/02/2026", 30},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.LogWorkout(context.Background(), 1, tc.day, 1, tc.duration)
			if !errors.Is(err, app.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLogWorkout_UnknownReferences(t *testing.T) {
	noUser := &mockUserRepo{getFn: func(_ context.Context, _ int64) (*domain.User, error) { return nil, nil }}
	svc := app.NewWorkoutService(&mockWorkoutRepo{}, noUser, &mockCatalogRepo{}, &mockLogReader{})
	if _, err := svc.LogWorkout(context.Background(), 1, "", 1, 30); !errors.Is(err, app.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	noExercise := &mockCatalogRepo{getExerciseFn: func(_ context.Context, _ int64) (*domain.Exercise, error) { return nil, nil }}
	svc = app.NewWorkoutService(&mockWorkoutRepo{}, &mockUserRepo{}, noExercise, &mockLogReader{})
	if _, err := svc.LogWorkout(context.Background(), 1, "", 1, 30); !errors.Is(err, app.ErrExerciseNotFound) {
		t.Fatalf("expected ErrExerciseNotFound, got %v", err)
	}
}

func TestLogWorkout_Success(t *testing.T) {
	today := time.Now().In(time.Local).Format("2006-01-02")
	repo := &mockWorkoutRepo{
		addFn: func(_ context.Context, userID int64, day string, exerciseID int64, minutes float64) (int64, error) {
			if userID != 3 || exerciseID != 4 || minutes != 45 {
				t.Fatalf("unexpected args %d %d %v", userID, exerciseID, minutes)
			}
			if day != today {
				t.Fatalf("expected default day %s, got %s", today, day)
			}
			return 77, nil
		},
	}
	svc := app.NewWorkoutService(repo, &mockUserRepo{}, &mockCatalogRepo{}, &mockLogReader{})
	id, err := svc.LogWorkout(context.Background(), 3, "", 4, 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 77 {
		t.Fatalf("expected id 77, got %d", id)
	}
}

func TestLogWorkout_StoreFailure(t *testing.T) {
	repo := &mockWorkoutRepo{
		addFn: func(_ context.Context, _ int64, _ string, _ int64, _ float64) (int64, error) {
			return 0, errors.New("constraint violation")
		},
	}
	svc := app.NewWorkoutService(repo, &mockUserRepo{}, &mockCatalogRepo{}, &mockLogReader{})
	_, err := svc.LogWorkout(context.Background(), 1, "2026-02-08", 1, 30)
	var dae *app.DataAccessError
	if !errors.As(err, &dae) || dae.Op != "add workout" {
		t.Fatalf("expected add workout DataAccessError, got %v", err)
	}
}
