package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"fitness/internal/domain"
)

// CatalogService manages the foods and exercises users can log.
type CatalogService struct {
	repo domain.CatalogRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// AddFood stores a food, replacing the calories of an existing food with the
// same name.
func (s *CatalogService) AddFood(ctx context.Context, name string, caloriesPerUnit float64) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, invalid("food name is required")
	}
	if caloriesPerUnit <= 0 {
		return 0, invalid("calories must be > 0")
	}
	id, err := s.repo.UpsertFood(ctx, name, caloriesPerUnit)
	if err != nil {
		return 0, dataErr("upsert food", err)
	}
	return id, nil
}

// AddExercise stores an exercise, replacing the burn rate of an existing
// exercise with the same name.
func (s *CatalogService) AddExercise(ctx context.Context, name string, caloriesBurnedPerHour float64) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, invalid("exercise name is required")
	}
	if caloriesBurnedPerHour <= 0 {
		return 0, invalid("caloriesBurned must be > 0")
	}
	id, err := s.repo.UpsertExercise(ctx, name, caloriesBurnedPerHour)
	if err != nil {
		return 0, dataErr("upsert exercise", err)
	}
	return id, nil
}

// Foods lists the food catalog ordered by name.
func (s *CatalogService) Foods(ctx context.Context) ([]domain.Food, error) {
	foods, err := s.repo.ListFoods(ctx)
	if err != nil {
		return nil, dataErr("list foods", err)
	}
	return foods, nil
}

// Exercises lists the exercise catalog ordered by name.
func (s *CatalogService) Exercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, dataErr("list exercises", err)
	}
	return exercises, nil
}

// catalogFile is the YAML layout accepted by Import.
type catalogFile struct {
	Foods []struct {
		Name     string  `yaml:"name"`
		Calories float64 `yaml:"calories"`
	} `yaml:"foods"`
	Exercises []struct {
		Name           string  `yaml:"name"`
		CaloriesBurned float64 `yaml:"calories_burned"`
	} `yaml:"exercises"`
}

// ImportResult counts the rows written by Import.
type ImportResult struct {
	Foods     int `json:"foods"`
	Exercises int `json:"exercises"`
}

// Import reads a YAML catalog and upserts every food and exercise in it. The
// whole document is validated before anything is written.
func (s *CatalogService) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return ImportResult{}, fmt.Errorf("%w: catalog: %v", ErrValidation, err)
	}

	for i, f := range doc.Foods {
		if strings.TrimSpace(f.Name) == "" || f.Calories <= 0 {
			return ImportResult{}, invalid("catalog: food #%d needs a name and calories > 0", i+1)
		}
	}
	for i, e := range doc.Exercises {
		if strings.TrimSpace(e.Name) == "" || e.CaloriesBurned <= 0 {
			return ImportResult{}, invalid("catalog: exercise #%d needs a name and calories_burned > 0", i+1)
		}
	}

	var res ImportResult
	for _, f := range doc.Foods {
		if _, err := s.AddFood(ctx, f.Name, f.Calories); err != nil {
			return res, err
		}
		res.Foods++
	}
	for _, e := range doc.Exercises {
		if _, err := s.AddExercise(ctx, e.Name, e.CaloriesBurned); err != nil {
			return res, err
		}
		res.Exercises++
	}
	return res, nil
}
