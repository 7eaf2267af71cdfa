package adapthttp

import "net/http"

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		items, err := s.workouts.ListLogs(ctx)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			UserID          int64   `json:"userId"`
			Day             string  `json:"day"`
			ExerciseID      int64   `json:"exerciseId"`
			DurationMinutes float64 `json:"durationMinutes"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.workouts.LogWorkout(ctx, body.UserID, body.Day, body.ExerciseID, body.DurationMinutes)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleMeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		items, err := s.meals.ListLogs(ctx)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			UserID   int64   `json:"userId"`
			Day      string  `json:"day"`
			MealType string  `json:"mealType"`
			FoodID   int64   `json:"foodId"`
			Quantity float64 `json:"quantity"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.meals.LogMeal(ctx, body.UserID, body.Day, body.MealType, body.FoodID, body.Quantity)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
