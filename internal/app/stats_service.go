package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fitness/internal/domain"
)

// StatsService computes calorie summaries from the meal and workout logs.
// Every call reads the store afresh; nothing is cached between calls.
type StatsService struct {
	logs domain.LogReader
}

// NewStatsService creates a StatsService backed by the given log reader.
func NewStatsService(logs domain.LogReader) *StatsService {
	return &StatsService{logs: logs}
}

// Overview bundles the population summaries shown on the statistics page.
type Overview struct {
	CaloriesIn  []domain.UserCalories  `json:"caloriesIn"`
	CaloriesOut []domain.UserCalories  `json:"caloriesOut"`
	TopFoods    []domain.FoodFrequency `json:"topFoods"`
}

// CaloriesInByUser returns calories consumed per user, highest first. Users
// who never logged a meal are not listed.
func (s *StatsService) CaloriesInByUser(ctx context.Context) ([]domain.UserCalories, error) {
	entries, err := s.logs.FoodLog(ctx)
	if err != nil {
		return nil, dataErr("read food log", err)
	}
	return domain.RankCaloriesIn(entries), nil
}

// CaloriesOutByUser returns calories burned per user, highest first. Users
// who never logged a workout are not listed.
func (s *StatsService) CaloriesOutByUser(ctx context.Context) ([]domain.UserCalories, error) {
	entries, err := s.logs.ExerciseLog(ctx)
	if err != nil {
		return nil, dataErr("read exercise log", err)
	}
	return domain.RankCaloriesOut(entries), nil
}

// TopFoods returns the k most frequently logged foods.
func (s *StatsService) TopFoods(ctx context.Context, k int) ([]domain.FoodFrequency, error) {
	if k <= 0 {
		return []domain.FoodFrequency{}, nil
	}
	entries, err := s.logs.FoodLog(ctx)
	if err != nil {
		return nil, dataErr("read food log", err)
	}
	return domain.TopFoods(entries, k), nil
}

// UserTotals returns the calories consumed and burned by one user. A user
// with no meals or no workouts gets zero on that side.
func (s *StatsService) UserTotals(ctx context.Context, userID int64) (domain.Totals, error) {
	foods, err := s.logs.FoodLogForUser(ctx, userID)
	if err != nil {
		return domain.Totals{}, dataErr("read food log for user", err)
	}
	exercises, err := s.logs.ExerciseLogForUser(ctx, userID)
	if err != nil {
		return domain.Totals{}, dataErr("read exercise log for user", err)
	}
	return domain.SumTotals(foods, exercises), nil
}

// Overview computes all population summaries. The reads run concurrently and
// the first failure discards the whole overview.
func (s *StatsService) Overview(ctx context.Context, topK int) (*Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.CaloriesIn, err = s.CaloriesInByUser(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.CaloriesOut, err = s.CaloriesOutByUser(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.TopFoods, err = s.TopFoods(gctx, topK)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
