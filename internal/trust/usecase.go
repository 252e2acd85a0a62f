package trust

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TrustGate approves or denies messaging actions before the relay persists
// anything. No check is ever partially skipped.
type TrustGate interface {
	RecalculateTrustScore(ctx context.Context, userID uuid.UUID) (*TrustScoreDTO, error)
	AdjustReportComponent(ctx context.Context, userID uuid.UUID, delta int) error

	// Ordered checks: recipient "nobody", blocks, sender restriction and
	// shadowban, minor protection, relationship gating, request-on-first-contact.
	CanMessageUser(ctx context.Context, senderID, recipientID uuid.UUID) (*MessagingDecision, error)
	CanSendFiles(ctx context.Context, senderID, recipientID uuid.UUID) (*FileDecision, error)

	UpdateMessagingPrivacy(ctx context.Context, cmd UpdateMessagingPrivacyCommand) error
	UpdateContentPreferences(ctx context.Context, cmd UpdateContentPreferencesCommand) error
	// Clears the minor flag after external age re-verification. The only way
	// out of minor protection.
	VerifyAdultAge(ctx context.Context, userID uuid.UUID) error

	BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error
	UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error

	// Burst limiter plus daily message quota.
	CheckSendQuota(ctx context.Context, userID uuid.UUID) error
	// Daily new-conversation quota, applied on session-initiating sends.
	CheckConversationQuota(ctx context.Context, userID uuid.UUID) error
}

// ProfileDirectory is the external account system: this core never owns user
// rows.
type ProfileDirectory interface {
	AccountCreatedAt(ctx context.Context, userID uuid.UUID) (time.Time, error)
	VerificationLevel(ctx context.Context, userID uuid.UUID) (VerificationLevel, error)
}

type VerificationLevel int

const (
	VerificationNone VerificationLevel = iota
	VerificationBasic
	// Strongest available method (e.g. document check).
	VerificationStrong
)

// RelationshipChecker resolves the social graph the privacy levels gate on.
type RelationshipChecker interface {
	IsFriend(ctx context.Context, a, b uuid.UUID) (bool, error)
	IsMutualFollower(ctx context.Context, a, b uuid.UUID) (bool, error)
}

// MessageCounter is implemented by the relay repository; the gate uses it for
// the activity component and the daily quotas.
type MessageCounter interface {
	CountSentSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountConversationsStartedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	HasConversationBetween(ctx context.Context, a, b uuid.UUID) (bool, error)
}
