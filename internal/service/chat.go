// Package service contains the business logic for the travel planner API.
// Services validate inputs, enforce business rules, and orchestrate the
// planning engine, repos, and narration. No SQL lives here; services depend
// on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/planner"
	"github.com/Srujan578/travel-planner-website/internal/repo"
)

// Engine is the planning core as the chat service consumes it.
// *planner.Planner satisfies it; tests substitute a mock.
type Engine interface {
	Plan(ctx context.Context, req planner.PlanRequest) (domain.Itinerary, error)
	FollowUp(ctx context.Context, it domain.Itinerary, message string) (domain.Itinerary, error)
}

// Narrator writes the assistant-voice reply for a planned or mutated
// itinerary. Implementations must not fail; narration degrades to a template
// internally.
type Narrator interface {
	Narrate(ctx context.Context, it domain.Itinerary) string
	NarrateFollowUp(ctx context.Context, it domain.Itinerary, changeSummary string) string
}

// ChatRequest is a new-trip planning message.
type ChatRequest struct {
	Message   string
	GroupSize int
	GroupType string
}

// ChatResult pairs the produced itinerary with the assistant reply.
type ChatResult struct {
	Itinerary domain.Itinerary
	Reply     string
}

// ChatService runs the conversational planning flow: plan or mutate an
// itinerary, persist it, and keep the per-trip transcript.
type ChatService struct {
	engine        Engine
	narrator      Narrator
	trips         repo.TripRepo
	conversations repo.ConversationRepo
}

// NewChatService constructs a ChatService.
func NewChatService(engine Engine, narrator Narrator, trips repo.TripRepo, conversations repo.ConversationRepo) *ChatService {
	return &ChatService{engine: engine, narrator: narrator, trips: trips, conversations: conversations}
}

// Chat plans a new trip from a free-form message, persists it, and starts its
// transcript. Clarification-class errors (unparseable dates, missing
// destination) are returned unwrapped for the handler to surface as prompts.
func (s *ChatService) Chat(ctx context.Context, req ChatRequest) (ChatResult, error) {
	if req.GroupSize < 1 {
		req.GroupSize = 1
	}

	it, err := s.engine.Plan(ctx, planner.PlanRequest{
		Text:      req.Message,
		GroupSize: req.GroupSize,
		GroupType: domain.ParseGroupType(req.GroupType),
	})
	if err != nil {
		return ChatResult{}, fmt.Errorf("service.ChatService.Chat: %w", err)
	}

	if err := s.trips.Create(ctx, it); err != nil {
		return ChatResult{}, fmt.Errorf("service.ChatService.Chat: %w", err)
	}

	reply := s.narrator.Narrate(ctx, it)
	s.logExchange(ctx, it.ID, req.Message, reply)

	return ChatResult{Itinerary: it, Reply: reply}, nil
}

// FollowUp applies a mutation message to a saved trip. The transcript records
// the exchange whether or not the itinerary changed; the stored snapshot is
// only rewritten on success.
func (s *ChatService) FollowUp(ctx context.Context, tripID uuid.UUID, message string) (ChatResult, error) {
	current, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return ChatResult{}, fmt.Errorf("service.ChatService.FollowUp: %w", err)
	}

	updated, err := s.engine.FollowUp(ctx, current, message)
	if err != nil {
		s.logExchange(ctx, tripID, message, clarificationFor(err))
		return ChatResult{}, fmt.Errorf("service.ChatService.FollowUp: %w", err)
	}

	if err := s.trips.Update(ctx, updated); err != nil {
		return ChatResult{}, fmt.Errorf("service.ChatService.FollowUp: %w", err)
	}

	reply := s.narrator.NarrateFollowUp(ctx, updated, lastChangeSummary(updated))
	s.logExchange(ctx, tripID, message, reply)

	return ChatResult{Itinerary: updated, Reply: reply}, nil
}

// Conversation returns a trip's transcript, oldest first.
func (s *ChatService) Conversation(ctx context.Context, tripID uuid.UUID) ([]domain.ConversationEntry, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ChatService.Conversation: %w", err)
	}

	entries, err := s.conversations.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ChatService.Conversation: %w", err)
	}
	if entries == nil {
		entries = []domain.ConversationEntry{}
	}
	return entries, nil
}

// logExchange appends the user message and assistant reply to the transcript.
// Transcript writes are best-effort: a failed log line never fails the chat
// request that produced it.
func (s *ChatService) logExchange(ctx context.Context, tripID uuid.UUID, userMessage, reply string) {
	_, _ = s.conversations.Append(ctx, domain.ConversationEntry{
		TripID:  tripID,
		Role:    domain.RoleUser,
		Message: userMessage,
	})
	_, _ = s.conversations.Append(ctx, domain.ConversationEntry{
		TripID:  tripID,
		Role:    domain.RoleAssistant,
		Message: reply,
	})
}

func lastChangeSummary(it domain.Itinerary) string {
	if len(it.History) == 0 {
		return "Updated the itinerary"
	}
	return it.History[len(it.History)-1].Summary
}

// clarificationFor turns an engine error into the assistant's transcript
// entry for a follow-up that could not be applied.
func clarificationFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrDateParse):
		return "I couldn't work out the new dates. Try a format like \"06-10 to 06-14\" or \"06-10 for 5 days\"."
	case errors.Is(err, domain.ErrActivityNotFound):
		return "I couldn't find that activity in the itinerary. Could you name it the way it appears in the plan?"
	case errors.Is(err, domain.ErrIntentResolution):
		return "I couldn't match that to a day in the itinerary. Which day did you mean?"
	case errors.Is(err, domain.ErrUnknownIntent):
		return "I'm not sure what change you'd like. You can adjust the budget, dates, activities, or a day's pace."
	default:
		return "Something went wrong applying that change. Please try again."
	}
}
