package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConversationRole identifies who produced a conversation entry.
type ConversationRole string

const (
	RoleUser      ConversationRole = "user"
	RoleAssistant ConversationRole = "assistant"
)

// ConversationEntry is one message in the per-trip chat log. The log is a
// plain transcript; unlike ModificationRecord it also records exchanges that
// did not change the itinerary (clarification prompts, failed follow-ups).
type ConversationEntry struct {
	ID        uuid.UUID        `json:"id"`
	TripID    uuid.UUID        `json:"trip_id"`
	Role      ConversationRole `json:"role"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
