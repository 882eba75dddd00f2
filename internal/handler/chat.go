package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/service"
)

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Message   string `json:"message"`
	GroupSize int    `json:"group_size"`
	GroupType string `json:"group_type"`
}

// chatResponse carries the freshly planned itinerary and the assistant reply.
type chatResponse struct {
	Itinerary domain.Itinerary `json:"itinerary"`
	Reply     string           `json:"reply"`
}

// Chat handles POST /api/chat: it plans a new trip from a free-text request,
// persists it, and returns the itinerary with a conversational reply.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("message is required"))
		return
	}

	result, err := s.chat.Chat(r.Context(), service.ChatRequest{
		Message:   req.Message,
		GroupSize: req.GroupSize,
		GroupType: req.GroupType,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, chatResponse{Itinerary: result.Itinerary, Reply: result.Reply})
}

// followUpRequest is the body of POST /api/trips/{tripID}/followup.
type followUpRequest struct {
	Message string `json:"message"`
}

// FollowUp handles POST /api/trips/{tripID}/followup: it applies a follow-up
// mutation to a saved trip and returns the updated itinerary.
func (s *Server) FollowUp(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var req followUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("message is required"))
		return
	}

	result, err := s.chat.FollowUp(r.Context(), id, req.Message)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Itinerary: result.Itinerary, Reply: result.Reply})
}

// conversationResponse wraps the transcript of a trip's chat history.
type conversationResponse struct {
	Entries []domain.ConversationEntry `json:"entries"`
}

// Conversation handles GET /api/trips/{tripID}/conversation.
func (s *Server) Conversation(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	entries, err := s.chat.Conversation(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, conversationResponse{Entries: entries})
}
