package relay

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MuscleMap-ME/musclemap-messaging/internal/trust"
)

type MessageRelay interface {
	CreateConversation(ctx context.Context, creatorID uuid.UUID, participants []uuid.UUID) (uuid.UUID, error)
	SendEncryptedMessage(ctx context.Context, cmd SendMessageCommand) (*SendResultDTO, error)
	GetMessages(ctx context.Context, conversationID, userID uuid.UUID, cursor string, limit int, includeDeleted bool) (*MessagePage, error)
	MarkDelivered(ctx context.Context, messageID, userID uuid.UUID, deviceID string) error
	MarkRead(ctx context.Context, messageID, userID uuid.UUID, deviceID string) error
	DeleteMessage(ctx context.Context, messageID, userID uuid.UUID) error
	CanUpgradeToE2EE(ctx context.Context, conversationID uuid.UUID) (*UpgradeCheckDTO, error)
	UpgradeConversationToE2EE(ctx context.Context, conversationID uuid.UUID) error
	RunMaintenance(ctx context.Context, now time.Time) error
}

// KeyDirectory is the slice of the key directory the relay depends on.
type KeyDirectory interface {
	VerifyKeyFingerprint(ctx context.Context, userID uuid.UUID, deviceID, fingerprint string) (bool, error)
	HasRegisteredKeys(ctx context.Context, userID uuid.UUID) (bool, error)
	ListDeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// PermissionGate decides whether a send may proceed at all.
type PermissionGate interface {
	CanMessageUser(ctx context.Context, senderID, recipientID uuid.UUID) (*trust.MessagingDecision, error)
	CheckSendQuota(ctx context.Context, senderID uuid.UUID) error
	CheckConversationQuota(ctx context.Context, senderID uuid.UUID) error
}
