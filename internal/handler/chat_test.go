package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/handler"
	"github.com/Srujan578/travel-planner-website/internal/service"
)

// mockChatServicer is a test double for handler.ChatServicer.
type mockChatServicer struct {
	chat         func(ctx context.Context, req service.ChatRequest) (service.ChatResult, error)
	followUp     func(ctx context.Context, tripID uuid.UUID, message string) (service.ChatResult, error)
	conversation func(ctx context.Context, tripID uuid.UUID) ([]domain.ConversationEntry, error)
}

func (m *mockChatServicer) Chat(ctx context.Context, req service.ChatRequest) (service.ChatResult, error) {
	return m.chat(ctx, req)
}
func (m *mockChatServicer) FollowUp(ctx context.Context, tripID uuid.UUID, message string) (service.ChatResult, error) {
	return m.followUp(ctx, tripID, message)
}
func (m *mockChatServicer) Conversation(ctx context.Context, tripID uuid.UUID) ([]domain.ConversationEntry, error) {
	return m.conversation(ctx, tripID)
}

var _ handler.ChatServicer = (*mockChatServicer)(nil)

// ---- POST /api/chat ----------------------------------------------------------

func TestChat(t *testing.T) {
	fixture := itineraryFixture()
	mock := &mockChatServicer{
		chat: func(ctx context.Context, req service.ChatRequest) (service.ChatResult, error) {
			assert.Equal(t, "Plan a trip to Tokyo from 06-01 to 06-03", req.Message)
			assert.Equal(t, 2, req.GroupSize)
			assert.Equal(t, "couple", req.GroupType)
			return service.ChatResult{Itinerary: fixture, Reply: "Here's your trip!"}, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"message":    "Plan a trip to Tokyo from 06-01 to 06-03",
		"group_size": 2,
		"group_type": "couple",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(mock, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Itinerary domain.Itinerary `json:"itinerary"`
		Reply     string           `json:"reply"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Itinerary.ID)
	assert.Equal(t, "Here's your trip!", resp.Reply)
}

func TestChat_EmptyMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", jsonBody(t, map[string]any{"message": ""}))
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockChatServicer{}, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	code, _ := decodeError(t, rec.Body)
	assert.Equal(t, "validation_error", code)
}

func TestChat_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockChatServicer{}, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_DateParseError(t *testing.T) {
	mock := &mockChatServicer{
		chat: func(ctx context.Context, req service.ChatRequest) (service.ChatResult, error) {
			return service.ChatResult{}, fmt.Errorf("service.ChatService.Chat: %w", domain.ErrDateParse)
		},
	}

	body := jsonBody(t, map[string]any{"message": "Plan a trip to Tokyo sometime nice"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(mock, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	code, message := decodeError(t, rec.Body)
	assert.Equal(t, "date_parse", code)
	assert.Contains(t, message, "unrecognized date expression")
}

// ---- POST /api/trips/{tripID}/followup ----------------------------------------

func TestFollowUp(t *testing.T) {
	fixture := itineraryFixture()
	fixture.BudgetLevel = domain.BudgetLuxury
	mock := &mockChatServicer{
		followUp: func(ctx context.Context, tripID uuid.UUID, message string) (service.ChatResult, error) {
			assert.Equal(t, fixture.ID, tripID)
			assert.Equal(t, "make it more luxurious", message)
			return service.ChatResult{Itinerary: fixture, Reply: "Done!"}, nil
		},
	}

	body := jsonBody(t, map[string]any{"message": "make it more luxurious"})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/trips/%s/followup", fixture.ID), body)
	rec := httptest.NewRecorder()
	newHTTPHandler(mock, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Itinerary domain.Itinerary `json:"itinerary"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.BudgetLuxury, resp.Itinerary.BudgetLevel)
}

func TestFollowUp_ClarificationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"unknown intent", domain.ErrUnknownIntent, "unknown_intent"},
		{"activity not found", domain.ErrActivityNotFound, "activity_not_found"},
		{"day out of range", domain.ErrIntentResolution, "intent_resolution"},
		{"bad date expression", domain.ErrDateParse, "date_parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockChatServicer{
				followUp: func(ctx context.Context, tripID uuid.UUID, message string) (service.ChatResult, error) {
					return service.ChatResult{}, fmt.Errorf("service.ChatService.FollowUp: %w", tt.err)
				},
			}

			body := jsonBody(t, map[string]any{"message": "do something"})
			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/trips/%s/followup", uuid.New()), body)
			rec := httptest.NewRecorder()
			newHTTPHandler(mock, nil, nil).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			code, _ := decodeError(t, rec.Body)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestFollowUp_TripNotFound(t *testing.T) {
	mock := &mockChatServicer{
		followUp: func(ctx context.Context, tripID uuid.UUID, message string) (service.ChatResult, error) {
			return service.ChatResult{}, fmt.Errorf("service.ChatService.FollowUp: %w", domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{"message": "remove the temple"})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/trips/%s/followup", uuid.New()), body)
	rec := httptest.NewRecorder()
	newHTTPHandler(mock, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /api/trips/{tripID}/conversation --------------------------------------

func TestConversation(t *testing.T) {
	tripID := uuid.New()
	entries := []domain.ConversationEntry{
		{ID: uuid.New(), TripID: tripID, Role: domain.RoleUser, Message: "plan a trip", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), TripID: tripID, Role: domain.RoleAssistant, Message: "here you go", CreatedAt: time.Now().UTC()},
	}
	mock := &mockChatServicer{
		conversation: func(ctx context.Context, id uuid.UUID) ([]domain.ConversationEntry, error) {
			assert.Equal(t, tripID, id)
			return entries, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/trips/%s/conversation", tripID), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(mock, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Entries []domain.ConversationEntry `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, domain.RoleUser, resp.Entries[0].Role)
}

func TestConversation_TripNotFound(t *testing.T) {
	mock := &mockChatServicer{
		conversation: func(ctx context.Context, id uuid.UUID) ([]domain.ConversationEntry, error) {
			return nil, fmt.Errorf("service.ChatService.Conversation: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/trips/%s/conversation", uuid.New()), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(mock, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
