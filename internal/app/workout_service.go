package app

import (
	"context"
	"time"

	"fitness/internal/domain"
)

// WorkoutService encapsulates workout-logging use cases.
type WorkoutService struct {
	workouts domain.WorkoutRepository
	users    domain.UserRepository
	catalog  domain.CatalogRepository
	logs     domain.LogReader
}

// NewWorkoutService creates a WorkoutService.
func NewWorkoutService(workouts domain.WorkoutRepository, users domain.UserRepository, catalog domain.CatalogRepository, logs domain.LogReader) *WorkoutService {
	return &WorkoutService{workouts: workouts, users: users, catalog: catalog, logs: logs}
}

// LogWorkout validates and stores a workout of one exercise, returning the
// new workout id. An empty day means today.
func (s *WorkoutService) LogWorkout(ctx context.Context, userID int64, day string, exerciseID int64, durationMinutes float64) (int64, error) {
	if durationMinutes < 1 {
		return 0, invalid("durationMinutes must be >= 1")
	}
	day, err := normalizeDay(day)
	if err != nil {
		return 0, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return 0, dataErr("get user", err)
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	ex, err := s.catalog.GetExercise(ctx, exerciseID)
	if err != nil {
		return 0, dataErr("get exercise", err)
	}
	if ex == nil {
		return 0, ErrExerciseNotFound
	}

	id, err := s.workouts.AddWorkout(ctx, userID, day, exerciseID, durationMinutes)
	if err != nil {
		return 0, dataErr("add workout", err)
	}
	return id, nil
}

// ListLogs returns every logged exercise, newest first.
func (s *WorkoutService) ListLogs(ctx context.Context) ([]domain.ExerciseLogEntry, error) {
	entries, err := s.logs.ExerciseLog(ctx)
	if err != nil {
		return nil, dataErr("read exercise log", err)
	}
	return entries, nil
}

const dayLayout = "2006-01-02"

func normalizeDay(day string) (string, error) {
	if day == "" {
		return time.Now().In(time.Local).Format(dayLayout), nil
	}
	t, err := time.ParseInLocation(dayLayout, day, time.Local)
	if err != nil {
		return "", invalid("day must be YYYY-MM-DD")
	}
	return t.Format(dayLayout), nil
}
