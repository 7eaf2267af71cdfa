package domain

import "context"

// Food is a catalog item that can be added to a meal.
type Food struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	CaloriesPerUnit float64 `json:"caloriesPerUnit"`
}

// Exercise is a catalog activity that can be logged in a workout.
type Exercise struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	CaloriesBurnedPerHour float64 `json:"caloriesBurnedPerHour"`
}

// CatalogRepository is the port for food and exercise persistence. The Upsert
// methods insert or update by name and return the row id.
type CatalogRepository interface {
	UpsertFood(ctx context.Context, name string, caloriesPerUnit float64) (int64, error)
	UpsertExercise(ctx context.Context, name string, caloriesBurnedPerHour float64) (int64, error)
	GetFood(ctx context.Context, id int64) (*Food, error)
	GetExercise(ctx context.Context, id int64) (*Exercise, error)
	ListFoods(ctx context.Context) ([]Food, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
}
