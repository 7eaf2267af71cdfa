// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"fitness/internal/app"
)

// Services bundles the application services the HTTP adapter drives.
type Services struct {
	Users    *app.UserService
	Catalog  *app.CatalogService
	Workouts *app.WorkoutService
	Meals    *app.MealService
	Stats    *app.StatsService
	Goals    *app.GoalService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	users    *app.UserService
	catalog  *app.CatalogService
	workouts *app.WorkoutService
	meals    *app.MealService
	stats    *app.StatsService
	goals    *app.GoalService

	log          *zap.Logger
	queryTimeout time.Duration
	topFoods     int
}

// New creates a Server wired to the given application services. A nil logger
// discards output.
func New(svc Services, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		users:    svc.Users,
		catalog:  svc.Catalog,
		workouts: svc.Workouts,
		meals:    svc.Meals,
		stats:    svc.Stats,
		goals:    svc.Goals,
		log:      log,
		topFoods: 3,
	}
}

// WithQueryTimeout bounds the context of every API request. Zero disables the
// bound.
func (s *Server) WithQueryTimeout(d time.Duration) *Server {
	s.queryTimeout = d
	return s
}

// WithTopFoods sets the default number of foods in the stats overview.
func (s *Server) WithTopFoods(k int) *Server {
	s.topFoods = k
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/users", s.handleUsers)
	api.HandleFunc("/foods", s.handleFoods)
	api.HandleFunc("/exercises", s.handleExercises)
	api.HandleFunc("/workouts", s.handleWorkouts)
	api.HandleFunc("/meals", s.handleMeals)

	api.HandleFunc("/stats", s.handleStatsOverview)
	api.HandleFunc("/stats/calories-in", s.handleCaloriesIn)
	api.HandleFunc("/stats/calories-out", s.handleCaloriesOut)
	api.HandleFunc("/stats/top-foods", s.handleTopFoods)
	api.HandleFunc("/goal-check", s.handleGoalCheck)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", withTimeout(s.queryTimeout, api)))

	return withNoCache(s.loggingMiddleware(root))
}
