package adapthttp

import (
	"net/http"

	"fitness/internal/app"
)

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Has("id") {
			id, err := idQuery(r, "id")
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			user, err := s.users.Get(ctx, id)
			if err != nil {
				s.writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"user": user})
			return
		}
		users, err := s.users.List(ctx)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": users})

	case http.MethodPost:
		var body app.NewUser
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		user, err := s.users.Register(ctx, body)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"user": user})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
