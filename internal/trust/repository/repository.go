package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/MuscleMap-ME/musclemap-messaging/internal/trust/model"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

type TrustRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewTrustRepository(db *bun.DB, logger *logger.Logger) *TrustRepository {
	return &TrustRepository{db: db, logger: logger}
}

// GetTrustScore returns a default-valued score when the user has none yet.
// The default report component is the neutral 50.
func (r *TrustRepository) GetTrustScore(ctx context.Context, userID uuid.UUID) (*models.TrustScore, error) {
	score := new(models.TrustScore)
	err := r.db.NewSelect().Model(score).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultTrustScore(userID), nil
		}
		return nil, errors.Wrap(err, "trustRepo.GetTrustScore.Scan")
	}
	return score, nil
}

func defaultTrustScore(userID uuid.UUID) *models.TrustScore {
	return &models.TrustScore{
		UserID:                 userID,
		ReportComponent:        50,
		DailyMessageLimit:      50,
		DailyConversationLimit: 5,
	}
}

func (r *TrustRepository) UpsertTrustScore(ctx context.Context, score *models.TrustScore) error {
	_, err := r.db.NewInsert().
		Model(score).
		On("CONFLICT (user_id) DO UPDATE").
		Set("score = EXCLUDED.score").
		Set("account_age_component = EXCLUDED.account_age_component").
		Set("verification_component = EXCLUDED.verification_component").
		Set("activity_component = EXCLUDED.activity_component").
		// report_component deliberately not updated here, see AdjustReportComponent
		Set("is_trusted_sender = EXCLUDED.is_trusted_sender").
		Set("daily_message_limit = EXCLUDED.daily_message_limit").
		Set("daily_conversation_limit = EXCLUDED.daily_conversation_limit").
		Set("calculated_at = EXCLUDED.calculated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "trustRepo.UpsertTrustScore.Exec")
	}
	return nil
}

func (r *TrustRepository) AdjustReportComponent(ctx context.Context, userID uuid.UUID, delta int) error {
	// Insert the default row first so the adjustment always lands.
	_, err := r.db.NewInsert().
		Model(defaultTrustScore(userID)).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "trustRepo.AdjustReportComponent.Insert")
	}

	_, err = r.db.NewUpdate().
		Model((*models.TrustScore)(nil)).
		Set("report_component = GREATEST(0, LEAST(100, report_component + ?))", delta).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "trustRepo.AdjustReportComponent.Update")
	}
	return nil
}

func (r *TrustRepository) GetMessagingPrivacy(ctx context.Context, userID uuid.UUID) (*models.MessagingPrivacy, error) {
	privacy := new(models.MessagingPrivacy)
	err := r.db.NewSelect().Model(privacy).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.MessagingPrivacy{
				UserID:          userID,
				WhoCanMessage:   models.PrivacyEveryone,
				WhoCanSendFiles: models.PrivacyFriends,
			}, nil
		}
		return nil, errors.Wrap(err, "trustRepo.GetMessagingPrivacy.Scan")
	}
	return privacy, nil
}

func (r *TrustRepository) UpsertMessagingPrivacy(ctx context.Context, privacy *models.MessagingPrivacy) error {
	privacy.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(privacy).
		On("CONFLICT (user_id) DO UPDATE").
		Set("who_can_message = EXCLUDED.who_can_message").
		Set("who_can_send_files = EXCLUDED.who_can_send_files").
		Set("require_requests = EXCLUDED.require_requests").
		Set("allowed_file_categories = EXCLUDED.allowed_file_categories").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "trustRepo.UpsertMessagingPrivacy.Exec")
	}
	return nil
}

func (r *TrustRepository) GetContentPreferences(ctx context.Context, userID uuid.UUID) (*models.ContentPreferences, error) {
	prefs := new(models.ContentPreferences)
	err := r.db.NewSelect().Model(prefs).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.ContentPreferences{UserID: userID}, nil
		}
		return nil, errors.Wrap(err, "trustRepo.GetContentPreferences.Scan")
	}
	return prefs, nil
}

func (r *TrustRepository) UpsertContentPreferences(ctx context.Context, prefs *models.ContentPreferences) error {
	prefs.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(prefs).
		On("CONFLICT (user_id) DO UPDATE").
		Set("is_minor = EXCLUDED.is_minor").
		Set("allow_adult_content = EXCLUDED.allow_adult_content").
		Set("can_send_adult_content = EXCLUDED.can_send_adult_content").
		Set("age_verified_at = EXCLUDED.age_verified_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "trustRepo.UpsertContentPreferences.Exec")
	}
	return nil
}

func (r *TrustRepository) BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	block := &models.UserBlock{BlockerID: blockerID, BlockedID: blockedID, CreatedAt: time.Now()}
	_, err := r.db.NewInsert().
		Model(block).
		On("CONFLICT (blocker_id, blocked_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "trustRepo.BlockUser.Exec")
	}
	return nil
}

func (r *TrustRepository) UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*models.UserBlock)(nil)).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "trustRepo.UnblockUser.Exec")
	}
	return nil
}

func (r *TrustRepository) IsBlockedEither(ctx context.Context, a, b uuid.UUID) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*models.UserBlock)(nil)).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "trustRepo.IsBlockedEither.Count")
	}
	return count > 0, nil
}
