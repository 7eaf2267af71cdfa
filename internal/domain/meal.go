package domain

import (
	"context"
	"fmt"
	"strings"
)

// MealType is the slot of the day a meal was eaten in.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// ParseMealType matches s against the known meal types, ignoring case.
func ParseMealType(s string) (MealType, error) {
	for _, m := range []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack} {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// FoodLogEntry is one food item eaten in a meal, joined with the user who
// logged it and the calorie density of the food.
type FoodLogEntry struct {
	MealID          int64    `json:"mealId"`
	UserID          int64    `json:"userId"`
	UserName        string   `json:"userName"`
	MealType        MealType `json:"mealType"`
	Day             string   `json:"day"`
	FoodID          int64    `json:"foodId"`
	FoodName        string   `json:"foodName"`
	Quantity        float64  `json:"quantity"`
	CaloriesPerUnit float64  `json:"caloriesPerUnit"`
}

// Calories returns the calories consumed by this entry.
func (e FoodLogEntry) Calories() float64 {
	return CaloriesConsumed(e.Quantity, e.CaloriesPerUnit)
}

// MealRepository is the port for meal persistence. AddMeal stores the meal and
// its item row together and returns the new meal id.
type MealRepository interface {
	AddMeal(ctx context.Context, userID int64, mealType MealType, day string, foodID int64, quantity float64) (int64, error)
}

// LogReader is the read side the aggregation engine depends on. Each method
// returns an empty slice, not an error, when nothing matches. Rows come back
// newest first.
type LogReader interface {
	FoodLog(ctx context.Context) ([]FoodLogEntry, error)
	FoodLogForUser(ctx context.Context, userID int64) ([]FoodLogEntry, error)
	ExerciseLog(ctx context.Context) ([]ExerciseLogEntry, error)
	ExerciseLogForUser(ctx context.Context, userID int64) ([]ExerciseLogEntry, error)
}
