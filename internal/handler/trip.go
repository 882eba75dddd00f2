package handler

import (
	"net/http"
	"strconv"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// listTripsResponse wraps the trip summaries returned by the list endpoint.
type listTripsResponse struct {
	Trips []domain.TripSummary `json:"trips"`
}

// ListTrips handles GET /api/trips with optional page and limit query params.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	trips, err := s.trips.List(r.Context(), domain.NewPaginationParams(page, limit))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listTripsResponse{Trips: trips})
}

// GetTrip handles GET /api/trips/{tripID}, returning the full itinerary.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	it, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, it)
}

// DeleteTrip handles DELETE /api/trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an optional integer query parameter, returning nil when the
// parameter is absent or not a number so pagination falls back to defaults.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
