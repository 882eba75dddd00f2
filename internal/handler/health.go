package handler

import "net/http"

// healthResponse reports service liveness and which optional collaborators
// have credentials configured. A false flag means the corresponding fallback
// (synthetic forecast, built-in exchange rates, template replies) is active.
type healthResponse struct {
	Status        string        `json:"status"`
	Collaborators Collaborators `json:"collaborators"`
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Collaborators: s.collaborators})
}
