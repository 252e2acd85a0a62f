package trust

import (
	"context"

	"github.com/google/uuid"

	models "github.com/MuscleMap-ME/musclemap-messaging/internal/trust/model"
)

type TrustRepository interface {
	// Returns a default-valued row (report component 50) when none exists.
	GetTrustScore(ctx context.Context, userID uuid.UUID) (*models.TrustScore, error)
	UpsertTrustScore(ctx context.Context, score *models.TrustScore) error
	// The only write path for the report component.
	AdjustReportComponent(ctx context.Context, userID uuid.UUID, delta int) error

	GetMessagingPrivacy(ctx context.Context, userID uuid.UUID) (*models.MessagingPrivacy, error)
	UpsertMessagingPrivacy(ctx context.Context, privacy *models.MessagingPrivacy) error

	GetContentPreferences(ctx context.Context, userID uuid.UUID) (*models.ContentPreferences, error)
	UpsertContentPreferences(ctx context.Context, prefs *models.ContentPreferences) error

	BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error
	UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error
	// True when either party blocks the other.
	IsBlockedEither(ctx context.Context, a, b uuid.UUID) (bool, error)
}
