package relay

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MessageSentEvent struct {
	MessageID      uuid.UUID   `json:"message_id"`
	ConversationID uuid.UUID   `json:"conversation_id"`
	SenderID       uuid.UUID   `json:"sender_id"`
	Recipients     []uuid.UUID `json:"recipients"`
	ContentType    string      `json:"content_type"`
	CreatedAt      time.Time   `json:"created_at"`
}

type ReceiptUpdatedEvent struct {
	MessageID      uuid.UUID `json:"message_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	UserID         uuid.UUID `json:"user_id"`
	Kind           string    `json:"kind"` // delivered or read
	DeliveredCount int       `json:"delivered_count"`
	ReadCount      int       `json:"read_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type ConversationUpgradedEvent struct {
	ConversationID  uuid.UUID `json:"conversation_id"`
	ProtocolVersion int       `json:"protocol_version"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher fans events out to interested consumers. Publishing is
// fire-and-forget: failures are logged by the caller, never propagated.
type EventPublisher interface {
	MessageSent(ctx context.Context, event MessageSentEvent) error
	ReceiptUpdated(ctx context.Context, event ReceiptUpdatedEvent) error
	ConversationUpgraded(ctx context.Context, event ConversationUpgradedEvent) error
}
