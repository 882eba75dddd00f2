package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Srujan578/travel-planner-website/internal/planner"
)

// suggestionsResponse carries the highlight list for a destination.
type suggestionsResponse struct {
	Destination string   `json:"destination"`
	Suggestions []string `json:"suggestions"`
}

// Suggestions handles GET /api/destinations/{name}/suggestions. The lookup is
// a pure table read, so the handler calls the planner directly rather than
// going through a service.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("destination is required"))
		return
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Destination: name,
		Suggestions: planner.Suggest(name),
	})
}
