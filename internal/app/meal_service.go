package app

import (
	"context"

	"fitness/internal/domain"
)

// MealService encapsulates meal-logging use cases.
type MealService struct {
	meals   domain.MealRepository
	users   domain.UserRepository
	catalog domain.CatalogRepository
	logs    domain.LogReader
}

// NewMealService creates a MealService.
func NewMealService(meals domain.MealRepository, users domain.UserRepository, catalog domain.CatalogRepository, logs domain.LogReader) *MealService {
	return &MealService{meals: meals, users: users, catalog: catalog, logs: logs}
}

// LogMeal validates and stores a meal of one food item, returning the new
// meal id. An empty day means today.
func (s *MealService) LogMeal(ctx context.Context, userID int64, day, mealType string, foodID int64, quantity float64) (int64, error) {
	if quantity < 0.1 {
		return 0, invalid("quantity must be >= 0.1")
	}
	mt, err := domain.ParseMealType(mealType)
	if err != nil {
		return 0, invalid("%v", err)
	}
	day, err = normalizeDay(day)
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
	food, err := s.catalog.GetFood(ctx, foodID)
	if err != nil {
		return 0, dataErr("get food", err)
	}
	if food == nil {
		return 0, ErrFoodNotFound
	}

	id, err := s.meals.AddMeal(ctx, userID, mt, day, foodID, quantity)
	if err != nil {
		return 0, dataErr("add meal", err)
	}
	return id, nil
}

// ListLogs returns every logged meal item, newest first.
func (s *MealService) ListLogs(ctx context.Context) ([]domain.FoodLogEntry, error) {
	entries, err := s.logs.FoodLog(ctx)
	if err != nil {
		return nil, dataErr("read food log", err)
	}
	return entries, nil
}
