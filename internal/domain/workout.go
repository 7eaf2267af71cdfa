package domain

import "context"

// ExerciseLogEntry is one exercise performed in a workout, joined with the
// user who logged it and the burn rate of the exercise.
type ExerciseLogEntry struct {
	WorkoutID             int64   `json:"workoutId"`
	UserID                int64   `json:"userId"`
	UserName              string  `json:"userName"`
	Day                   string  `json:"day"`
	ExerciseID            int64   `json:"exerciseId"`
	ExerciseName          string  `json:"exerciseName"`
	DurationMinutes       float64 `json:"durationMinutes"`
	CaloriesBurnedPerHour float64 `json:"caloriesBurnedPerHour"`
}

// Calories returns the calories burned by this entry.
func (e ExerciseLogEntry) Calories() float64 {
	return CaloriesBurned(e.DurationMinutes, e.CaloriesBurnedPerHour)
}

// WorkoutRepository is the port for workout persistence. AddWorkout stores the
// workout and its exercise row together and returns the new workout id.
type WorkoutRepository interface {
	AddWorkout(ctx context.Context, userID int64, day string, exerciseID int64, durationMinutes float64) (int64, error)
}
