package adapthttp

import "net/http"

func (s *Server) handleFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		foods, err := s.catalog.Foods(ctx)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": foods})

	case http.MethodPost:
		var body struct {
			Name            string  `json:"name"`
			CaloriesPerUnit float64 `json:"caloriesPerUnit"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.catalog.AddFood(ctx, body.Name, body.CaloriesPerUnit)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		exercises, err := s.catalog.Exercises(ctx)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": exercises})

	case http.MethodPost:
		var body struct {
			Name                  string  `json:"name"`
			CaloriesBurnedPerHour float64 `json:"caloriesBurnedPerHour"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.catalog.AddExercise(ctx, body.Name, body.CaloriesBurnedPerHour)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
