package relay

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/MuscleMap-ME/musclemap-messaging/internal/relay/model"
)

// ReceiptCounts is the aggregate state of a message after a receipt change.
type ReceiptCounts struct {
	DeliveredCount int
	ReadCount      int
}

type RelayRepository interface {
	CreateConversation(ctx context.Context, isE2EE bool, protocolVersion int, participants []uuid.UUID) (*models.Conversation, error)
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*models.Conversation, error)
	IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error)
	ListParticipants(ctx context.Context, conversationID uuid.UUID) ([]uuid.UUID, error)

	// StoreMessage commits the message, its per-recipient receipts, the
	// session upserts and the conversation bookkeeping in one transaction.
	StoreMessage(ctx context.Context, message *models.EncryptedMessage, receipts []models.MessageReceipt, sessions []models.Session) error
	GetMessage(ctx context.Context, messageID uuid.UUID) (*models.EncryptedMessage, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID, before *Cursor, limit int, includeDeleted bool) ([]models.EncryptedMessage, error)
	GetOwnReceipts(ctx context.Context, messageIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]models.MessageReceipt, error)

	MarkReceiptDelivered(ctx context.Context, messageID, userID uuid.UUID, deviceID string) (*ReceiptCounts, bool, error)
	MarkReceiptRead(ctx context.Context, messageID, userID uuid.UUID, deviceID string) (*ReceiptCounts, bool, error)

	// SoftDeleteMessage deletes only when senderID authored the message.
	SoftDeleteMessage(ctx context.Context, messageID, senderID uuid.UUID) error

	UpgradeConversation(ctx context.Context, conversationID uuid.UUID, protocolVersion int) error

	DeleteDeviceSessions(ctx context.Context, userID uuid.UUID, deviceID string) error

	CountSentSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountConversationsStartedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	HasConversationBetween(ctx context.Context, userA, userB uuid.UUID) (bool, error)

	PurgeExpiredMessages(ctx context.Context, now time.Time) (int64, error)
	PurgeDeletedMessages(ctx context.Context, before time.Time) (int64, error)
}
