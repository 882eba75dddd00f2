// Package handler implements the HTTP handlers for the travel planner API.
// All handlers are methods on Server; methods are split into domain-specific
// files (chat.go, trip.go, export.go, ...) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/service"
)

// ChatServicer defines the conversational operations the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the engine or the database.
type ChatServicer interface {
	Chat(ctx context.Context, req service.ChatRequest) (service.ChatResult, error)
	FollowUp(ctx context.Context, tripID uuid.UUID, message string) (service.ChatResult, error)
	Conversation(ctx context.Context, tripID uuid.UUID) ([]domain.ConversationEntry, error)
}

// TripServicer defines the saved-trip operations the handler depends on.
type TripServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	List(ctx context.Context, page domain.PaginationParams) ([]domain.TripSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExportServicer renders a saved trip as a downloadable document.
type ExportServicer interface {
	Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error)
}

// Collaborators reports which optional external services are configured.
// Surfaced by the health endpoint so a deployment can see at a glance which
// fallbacks are active.
type Collaborators struct {
	Weather  bool `json:"weather"`
	Currency bool `json:"currency"`
	Narrator bool `json:"narrator"`
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	chat          ChatServicer
	trips         TripServicer
	export        ExportServicer
	collaborators Collaborators
}

// NewServer constructs the Server with all its dependencies.
func NewServer(chat ChatServicer, trips TripServicer, export ExportServicer, collaborators Collaborators) *Server {
	return &Server{chat: chat, trips: trips, export: export, collaborators: collaborators}
}

// Routes returns the API router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.Chat)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Delete("/", s.DeleteTrip)
				r.Post("/followup", s.FollowUp)
				r.Get("/conversation", s.Conversation)
				r.Get("/export", s.ExportTrip)
			})
		})

		r.Get("/destinations/{name}/suggestions", s.Suggestions)
	})

	return r
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// tripIDParam parses the {tripID} path parameter; a malformed value is
// reported as not found rather than echoing the raw input back.
func tripIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return uuid.Nil, false
	}
	return id, true
}
