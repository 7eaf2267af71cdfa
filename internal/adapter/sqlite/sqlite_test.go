package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fitness/internal/adapter/sqlite"
	"fitness/internal/app"
	"fitness/internal/domain"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "fitness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newUser(name, email string, goal domain.Goal) domain.User {
	return domain.User{
		Name: name, Email: email, PasswordHash: "x", Age: 30, Gender: domain.GenderOther,
		HeightCm: 170, WeightKg: 70, Goal: goal, CreatedAt: time.Now(),
	}
}

func TestUsers(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	id, err := db.CreateUser(ctx, newUser("ana", "ana@example.com", domain.GoalGainMuscle))
	require.NoError(t, err)
	require.NotZero(t, id)

	_, err = db.CreateUser(ctx, newUser("dup", "ana@example.com", domain.GoalMaintain))
	require.Error(t, err, "duplicate email must violate the unique constraint")

	u, err := db.GetUser(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "ana", u.Name)
	require.Equal(t, domain.GoalGainMuscle, u.Goal)
	require.Equal(t, domain.GenderOther, u.Gender)

	missing, err := db.GetUser(ctx, 999)
	require.NoError(t, err)
	require.Nil(t, missing)

	users, err := db.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestCatalogUpsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	id1, err := db.UpsertFood(ctx, "rice", 130)
	require.NoError(t, err)
	id2, err := db.UpsertFood(ctx, "rice", 135)
	require.NoError(t, err)
	require.Equal(t, id1, id2)

	f, err := db.GetFood(ctx, id1)
	require.NoError(t, err)
	require.InDelta(t, 135, f.CaloriesPerUnit, 1e-9)

	_, err = db.UpsertExercise(ctx, "cycling", 500)
	require.NoError(t, err)
	exercises, err := db.ListExercises(ctx)
	require.NoError(t, err)
	require.Len(t, exercises, 1)

	none, err := db.GetExercise(ctx, 42)
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestAddMeal_ForeignKeys(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.AddMeal(ctx, 999, domain.MealLunch, "2026-02-08", 1, 1)
	require.Error(t, err)

	meals, err := db.FoodLog(ctx)
	require.NoError(t, err)
	require.Empty(t, meals, "failed insert must not leave a parent row behind")
}

func TestAggregationOverSQL(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	ana, err := db.CreateUser(ctx, newUser("ana", "ana@example.com", domain.GoalLoseWeight))
	require.NoError(t, err)
	bo, err := db.CreateUser(ctx, newUser("bo", "bo@example.com", domain.GoalMaintain))
	require.NoError(t, err)
	idle, err := db.CreateUser(ctx, newUser("idle", "idle@example.com", domain.GoalGainMuscle))
	require.NoError(t, err)

	toast, err := db.UpsertFood(ctx, "toast", 100)
	require.NoError(t, err)
	pasta, err := db.UpsertFood(ctx, "pasta", 400)
	require.NoError(t, err)
	rowing, err := db.UpsertExercise(ctx, "rowing", 300)
	require.NoError(t, err)

	m1, err := db.AddMeal(ctx, ana, domain.MealBreakfast, "2026-02-07", toast, 2)
	require.NoError(t, err)
	m2, err := db.AddMeal(ctx, ana, domain.MealLunch, "2026-02-08", toast, 1.5)
	require.NoError(t, err)
	require.Greater(t, m2, m1)
	_, err = db.AddMeal(ctx, bo, domain.MealDinner, "2026-02-08", pasta, 1)
	require.NoError(t, err)
	_, err = db.AddWorkout(ctx, ana, "2026-02-08", rowing, 30)
	require.NoError(t, err)

	stats := app.NewStatsService(db)

	in, err := stats.CaloriesInByUser(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.UserCalories{
		{UserID: bo, UserName: "bo", Calories: 400},
		{UserID: ana, UserName: "ana", Calories: 350},
	}, in)

	out, err := stats.CaloriesOutByUser(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.UserCalories{{UserID: ana, UserName: "ana", Calories: 150}}, out)

	top, err := stats.TopFoods(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, []domain.FoodFrequency{
		{FoodID: toast, FoodName: "toast", TimesLogged: 2},
		{FoodID: pasta, FoodName: "pasta", TimesLogged: 1},
	}, top)

	totals, err := stats.UserTotals(ctx, idle)
	require.NoError(t, err)
	require.Zero(t, totals.In)
	require.Zero(t, totals.Out)

	rep, err := app.NewGoalService(db, stats).Check(ctx, ana)
	require.NoError(t, err)
	require.InDelta(t, 200, rep.Net, 1e-9)
	require.Equal(t, domain.OnTrack, rep.Verdict)

	again, err := stats.CaloriesInByUser(ctx)
	require.NoError(t, err)
	require.Equal(t, in, again)

	log, err := db.FoodLog(ctx)
	require.NoError(t, err)
	require.Len(t, log, 3)
	require.Equal(t, "2026-02-08", log[0].Day)
	require.Equal(t, "2026-02-07", log[2].Day)
}
