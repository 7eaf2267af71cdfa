package domain

import (
	"cmp"
	"slices"
)

// CaloriesConsumed returns the calories in quantity units of a food.
func CaloriesConsumed(quantity, caloriesPerUnit float64) float64 {
	return quantity * caloriesPerUnit
}

// CaloriesBurned returns the calories burned by durationMinutes of an exercise
// rated in calories per hour.
func CaloriesBurned(durationMinutes, caloriesPerHour float64) float64 {
	return durationMinutes * caloriesPerHour / 60
}

// Totals is the calorie balance of one user.
type Totals struct {
	In  float64 `json:"caloriesIn"`
	Out float64 `json:"caloriesOut"`
}

// Net returns calories consumed minus calories burned.
func (t Totals) Net() float64 {
	return t.In - t.Out
}

// UserCalories is a per-user calorie sum.
type UserCalories struct {
	UserID   int64   `json:"userId"`
	UserName string  `json:"userName"`
	Calories float64 `json:"calories"`
}

// FoodFrequency counts how many meal items reference a food.
type FoodFrequency struct {
	FoodID      int64  `json:"foodId"`
	FoodName    string `json:"foodName"`
	TimesLogged int    `json:"timesLogged"`
}

// SumTotals adds up every entry in foods and exercises. Both sides are zero
// when there is nothing to add.
func SumTotals(foods []FoodLogEntry, exercises []ExerciseLogEntry) Totals {
	var t Totals
	for _, f := range foods {
		t.In += f.Calories()
	}
	for _, e := range exercises {
		t.Out += e.Calories()
	}
	return t
}

// RankCaloriesIn sums consumed calories per user, highest first. Users with
// no entries are absent from the result.
func RankCaloriesIn(entries []FoodLogEntry) []UserCalories {
	return rankByUser(entries, func(e FoodLogEntry) (int64, string, float64) {
		return e.UserID, e.UserName, e.Calories()
	})
}

// RankCaloriesOut sums burned calories per user, highest first. Users with no
// entries are absent from the result.
func RankCaloriesOut(entries []ExerciseLogEntry) []UserCalories {
	return rankByUser(entries, func(e ExerciseLogEntry) (int64, string, float64) {
		return e.UserID, e.UserName, e.Calories()
	})
}

func rankByUser[E any](entries []E, key func(E) (int64, string, float64)) []UserCalories {
	index := make(map[int64]int)
	out := make([]UserCalories, 0)
	for _, e := range entries {
		id, name, cal := key(e)
		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, UserCalories{UserID: id, UserName: name})
		}
		out[i].Calories += cal
	}
	slices.SortStableFunc(out, func(a, b UserCalories) int {
		if c := cmp.Compare(b.Calories, a.Calories); c != 0 {
			return c
		}
		if c := cmp.Compare(a.UserName, b.UserName); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	return out
}

// TopFoods returns the k foods that appear in the most meal items, most
// frequent first. Quantity is ignored. k <= 0 yields an empty slice.
func TopFoods(entries []FoodLogEntry, k int) []FoodFrequency {
	if k <= 0 {
		return []FoodFrequency{}
	}
	index := make(map[int64]int)
	out := make([]FoodFrequency, 0)
	for _, e := range entries {
		i, ok := index[e.FoodID]
		if !ok {
			i = len(out)
			index[e.FoodID] = i
			out = append(out, FoodFrequency{FoodID: e.FoodID, FoodName: e.FoodName})
		}
		out[i].TimesLogged++
	}
	slices.SortStableFunc(out, func(a, b FoodFrequency) int {
		if c := cmp.Compare(b.TimesLogged, a.TimesLogged); c != 0 {
			return c
		}
		if c := cmp.Compare(a.FoodName, b.FoodName); c != 0 {
			return c
		}
		return cmp.Compare(a.FoodID, b.FoodID)
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}
