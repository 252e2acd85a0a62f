package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MuscleMap-ME/musclemap-messaging/internal/trust"
	models "github.com/MuscleMap-ME/musclemap-messaging/internal/trust/model"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

// Score component weights and tier cutoffs.
const (
	maxAccountAgeComponent = 30
	maxActivityComponent   = 20
	trustedSenderCutoff    = 75
	standardCutoff         = 40

	trustedDailyMessages  = 500
	standardDailyMessages = 200
	newcomerDailyMessages = 50

	trustedDailyConversations  = 50
	standardDailyConversations = 20
	newcomerDailyConversations = 5
	minorDailyConversations    = 3
)

type TrustGateUsecase struct {
	repo          trust.TrustRepository
	profiles      trust.ProfileDirectory
	relationships trust.RelationshipChecker
	counter       trust.MessageCounter
	limiter       *trust.SenderLimiter
	logger        *logger.Logger
}

func NewTrustGateUsecase(
	repo trust.TrustRepository,
	profiles trust.ProfileDirectory,
	relationships trust.RelationshipChecker,
	counter trust.MessageCounter,
	limiter *trust.SenderLimiter,
	logger *logger.Logger,
) *TrustGateUsecase {
	return &TrustGateUsecase{
		repo:          repo,
		profiles:      profiles,
		relationships: relationships,
		counter:       counter,
		limiter:       limiter,
		logger:        logger,
	}
}

// RecalculateTrustScore recomputes every component except the report
// component, which persists and only moves through AdjustReportComponent.
func (uc *TrustGateUsecase) RecalculateTrustScore(ctx context.Context, userID uuid.UUID) (*trust.TrustScoreDTO, error) {
	existing, err := uc.repo.GetTrustScore(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load trust score", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to recalculate trust score")
	}

	now := time.Now()

	createdAt, err := uc.profiles.AccountCreatedAt(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to resolve account age", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to recalculate trust score")
	}
	ageDays := int(now.Sub(createdAt).Hours() / 24)
	ageComponent := min(ageDays, maxAccountAgeComponent)

	level, err := uc.profiles.VerificationLevel(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to resolve verification level", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to recalculate trust score")
	}
	verificationComponent := 0
	switch level {
	case trust.VerificationBasic:
		verificationComponent = 10
	case trust.VerificationStrong:
		verificationComponent = 20
	}

	sent30d, err := uc.counter.CountSentSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		uc.logger.Error("failed to count recent messages", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to recalculate trust score")
	}
	activityComponent := min(maxActivityComponent, sent30d/10)

	score := ageComponent + verificationComponent + activityComponent + (existing.ReportComponent - 50)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	updated := &models.TrustScore{
		UserID:                userID,
		Score:                 score,
		AccountAgeComponent:   ageComponent,
		VerificationComponent: verificationComponent,
		ActivityComponent:     activityComponent,
		ReportComponent:       existing.ReportComponent,
		IsTrustedSender:       score >= trustedSenderCutoff && !existing.IsRestricted && !existing.IsShadowbanned,
		IsRestricted:          existing.IsRestricted,
		IsShadowbanned:        existing.IsShadowbanned,
		CalculatedAt:          now,
	}
	updated.DailyMessageLimit, updated.DailyConversationLimit = limitsForScore(score)

	prefs, err := uc.repo.GetContentPreferences(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load content preferences", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to recalculate trust score")
	}
	if prefs.IsMinor && updated.DailyConversationLimit > minorDailyConversations {
		updated.DailyConversationLimit = minorDailyConversations
	}

	if err := uc.repo.UpsertTrustScore(ctx, updated); err != nil {
		uc.logger.Error("failed to persist trust score", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to recalculate trust score")
	}

	return &trust.TrustScoreDTO{
		UserID:                 userID,
		Score:                  updated.Score,
		IsTrustedSender:        updated.IsTrustedSender,
		IsRestricted:           updated.IsRestricted,
		IsShadowbanned:         updated.IsShadowbanned,
		DailyMessageLimit:      updated.DailyMessageLimit,
		DailyConversationLimit: updated.DailyConversationLimit,
	}, nil
}

func limitsForScore(score int) (messages, conversations int) {
	switch {
	case score >= trustedSenderCutoff:
		return trustedDailyMessages, trustedDailyConversations
	case score >= standardCutoff:
		return standardDailyMessages, standardDailyConversations
	default:
		return newcomerDailyMessages, newcomerDailyConversations
	}
}

func (uc *TrustGateUsecase) AdjustReportComponent(ctx context.Context, userID uuid.UUID, delta int) error {
	if err := uc.repo.AdjustReportComponent(ctx, userID, delta); err != nil {
		uc.logger.Error("failed to adjust report component", "err", err, "user_id", userID)
		return errors.Internal("failed to adjust report component")
	}
	return nil
}

// CanMessageUser runs the ordered permission checks. It returns a decision,
// not an error, for every deterministic denial; errors are reserved for
// lookups failing.
func (uc *TrustGateUsecase) CanMessageUser(ctx context.Context, senderID, recipientID uuid.UUID) (*trust.MessagingDecision, error) {
	recipientPrivacy, err := uc.repo.GetMessagingPrivacy(ctx, recipientID)
	if err != nil {
		return nil, uc.internal("failed to load recipient privacy", err, senderID)
	}

	if recipientPrivacy.WhoCanMessage == models.PrivacyNobody {
		return &trust.MessagingDecision{Reason: "recipient does not accept messages"}, nil
	}

	blocked, err := uc.repo.IsBlockedEither(ctx, senderID, recipientID)
	if err != nil {
		return nil, uc.internal("failed to check blocks", err, senderID)
	}
	if blocked {
		// Deliberately the same wording both directions.
		return &trust.MessagingDecision{Reason: "messaging is not available"}, nil
	}

	senderScore, err := uc.repo.GetTrustScore(ctx, senderID)
	if err != nil {
		return nil, uc.internal("failed to load sender trust", err, senderID)
	}
	if senderScore.IsRestricted {
		return &trust.MessagingDecision{Reason: "account is restricted from messaging"}, nil
	}
	if senderScore.IsShadowbanned {
		return &trust.MessagingDecision{Reason: "message cannot be delivered"}, nil
	}

	// Minor protection is absolute: no privacy setting overrides it.
	senderPrefs, err := uc.repo.GetContentPreferences(ctx, senderID)
	if err != nil {
		return nil, uc.internal("failed to load sender preferences", err, senderID)
	}
	recipientPrefs, err := uc.repo.GetContentPreferences(ctx, recipientID)
	if err != nil {
		return nil, uc.internal("failed to load recipient preferences", err, senderID)
	}
	if senderPrefs.CanSendAdultContent && recipientPrefs.IsMinor {
		return &trust.MessagingDecision{Reason: "recipient is not available for messaging"}, nil
	}

	allowed, err := uc.checkRelationship(ctx, senderID, recipientID, recipientPrivacy.WhoCanMessage)
	if err != nil {
		return nil, err
	}
	if !allowed {
		// Soft denial: the client may offer a message request instead.
		return &trust.MessagingDecision{
			RequiresRequest: true,
			Reason:          "recipient only accepts messages from " + string(recipientPrivacy.WhoCanMessage),
		}, nil
	}

	decision := &trust.MessagingDecision{CanMessage: true}
	if recipientPrivacy.RequireRequests {
		exists, err := uc.counter.HasConversationBetween(ctx, senderID, recipientID)
		if err != nil {
			return nil, uc.internal("failed to check prior conversation", err, senderID)
		}
		decision.RequiresRequest = !exists
	}
	return decision, nil
}

func (uc *TrustGateUsecase) CanSendFiles(ctx context.Context, senderID, recipientID uuid.UUID) (*trust.FileDecision, error) {
	msgDecision, err := uc.CanMessageUser(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if !msgDecision.CanMessage {
		return &trust.FileDecision{
			RequiresRequest: msgDecision.RequiresRequest,
			Reason:          msgDecision.Reason,
		}, nil
	}

	recipientPrivacy, err := uc.repo.GetMessagingPrivacy(ctx, recipientID)
	if err != nil {
		return nil, uc.internal("failed to load recipient privacy", err, senderID)
	}

	allowed, err := uc.checkRelationship(ctx, senderID, recipientID, recipientPrivacy.WhoCanSendFiles)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return &trust.FileDecision{
			RequiresRequest: true,
			Reason:          "recipient only accepts files from " + string(recipientPrivacy.WhoCanSendFiles),
		}, nil
	}

	return &trust.FileDecision{
		CanSendFiles:      true,
		RequiresRequest:   msgDecision.RequiresRequest,
		AllowedCategories: recipientPrivacy.AllowedFileCategories,
	}, nil
}

func (uc *TrustGateUsecase) checkRelationship(ctx context.Context, senderID, recipientID uuid.UUID, level models.PrivacyLevel) (bool, error) {
	switch level {
	case models.PrivacyEveryone:
		return true, nil
	case models.PrivacyFriends:
		ok, err := uc.relationships.IsFriend(ctx, senderID, recipientID)
		if err != nil {
			return false, uc.internal("failed to check friend relationship", err, senderID)
		}
		return ok, nil
	case models.PrivacyMutuals:
		ok, err := uc.relationships.IsMutualFollower(ctx, senderID, recipientID)
		if err != nil {
			return false, uc.internal("failed to check mutual relationship", err, senderID)
		}
		return ok, nil
	case models.PrivacyNobody:
		return false, nil
	default:
		return false, errors.InvalidArg("unknown privacy level")
	}
}

func (uc *TrustGateUsecase) UpdateMessagingPrivacy(ctx context.Context, cmd trust.UpdateMessagingPrivacyCommand) error {
	if !cmd.WhoCanMessage.Valid() || !cmd.WhoCanSendFiles.Valid() {
		return errors.InvalidArg("unknown privacy level")
	}

	privacy := &models.MessagingPrivacy{
		UserID:                cmd.UserID,
		WhoCanMessage:         cmd.WhoCanMessage,
		WhoCanSendFiles:       cmd.WhoCanSendFiles,
		RequireRequests:       cmd.RequireRequests,
		AllowedFileCategories: cmd.AllowedFileCategories,
	}

	prefs, err := uc.repo.GetContentPreferences(ctx, cmd.UserID)
	if err != nil {
		return uc.internal("failed to load content preferences", err, cmd.UserID)
	}
	if prefs.IsMinor {
		// Minors stay on friends-only with mandatory requests no matter what
		// was asked for.
		privacy.WhoCanMessage = models.PrivacyFriends
		privacy.RequireRequests = true
	}

	if err := uc.repo.UpsertMessagingPrivacy(ctx, privacy); err != nil {
		return uc.internal("failed to update messaging privacy", err, cmd.UserID)
	}
	return nil
}

// UpdateContentPreferences enforces the minor invariant at write time: once
// self-declared a minor, the flag cannot be unset here and adult-content
// settings are forced false, whatever the command asked for.
func (uc *TrustGateUsecase) UpdateContentPreferences(ctx context.Context, cmd trust.UpdateContentPreferencesCommand) error {
	existing, err := uc.repo.GetContentPreferences(ctx, cmd.UserID)
	if err != nil {
		return uc.internal("failed to load content preferences", err, cmd.UserID)
	}

	newlyMinor := cmd.IsMinor && !existing.IsMinor

	prefs := &models.ContentPreferences{
		UserID:              cmd.UserID,
		IsMinor:             cmd.IsMinor || existing.IsMinor,
		AllowAdultContent:   cmd.AllowAdultContent,
		CanSendAdultContent: cmd.CanSendAdultContent,
		AgeVerifiedAt:       existing.AgeVerifiedAt,
	}
	if prefs.IsMinor {
		prefs.AllowAdultContent = false
		prefs.CanSendAdultContent = false
	}

	if err := uc.repo.UpsertContentPreferences(ctx, prefs); err != nil {
		return uc.internal("failed to update content preferences", err, cmd.UserID)
	}

	if newlyMinor {
		if err := uc.narrowForMinor(ctx, cmd.UserID); err != nil {
			return err
		}
	}
	return nil
}

// narrowForMinor applies the immediate protections for a newly declared
// minor: friends-only messaging with mandatory requests and a reduced daily
// new-conversation quota, regardless of prior settings.
func (uc *TrustGateUsecase) narrowForMinor(ctx context.Context, userID uuid.UUID) error {
	privacy, err := uc.repo.GetMessagingPrivacy(ctx, userID)
	if err != nil {
		return uc.internal("failed to load messaging privacy", err, userID)
	}
	privacy.WhoCanMessage = models.PrivacyFriends
	privacy.RequireRequests = true
	if err := uc.repo.UpsertMessagingPrivacy(ctx, privacy); err != nil {
		return uc.internal("failed to narrow messaging privacy", err, userID)
	}

	score, err := uc.repo.GetTrustScore(ctx, userID)
	if err != nil {
		return uc.internal("failed to load trust score", err, userID)
	}
	if score.DailyConversationLimit > minorDailyConversations {
		score.DailyConversationLimit = minorDailyConversations
		if err := uc.repo.UpsertTrustScore(ctx, score); err != nil {
			return uc.internal("failed to reduce conversation quota", err, userID)
		}
	}

	uc.logger.Info("minor protections applied", "user_id", userID)
	return nil
}

// VerifyAdultAge is the only way out of minor protection; it records the
// re-verification time and clears the flag.
func (uc *TrustGateUsecase) VerifyAdultAge(ctx context.Context, userID uuid.UUID) error {
	prefs, err := uc.repo.GetContentPreferences(ctx, userID)
	if err != nil {
		return uc.internal("failed to load content preferences", err, userID)
	}
	now := time.Now()
	prefs.IsMinor = false
	prefs.AgeVerifiedAt = &now
	if err := uc.repo.UpsertContentPreferences(ctx, prefs); err != nil {
		return uc.internal("failed to record age verification", err, userID)
	}
	return nil
}

func (uc *TrustGateUsecase) BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if err := uc.repo.BlockUser(ctx, blockerID, blockedID); err != nil {
		return uc.internal("failed to block user", err, blockerID)
	}
	return nil
}

func (uc *TrustGateUsecase) UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if err := uc.repo.UnblockUser(ctx, blockerID, blockedID); err != nil {
		return uc.internal("failed to unblock user", err, blockerID)
	}
	return nil
}

// CheckSendQuota applies the in-process burst limiter, then the daily message
// quota from the sender's trust tier.
func (uc *TrustGateUsecase) CheckSendQuota(ctx context.Context, userID uuid.UUID) error {
	if !uc.limiter.Allow(userID) {
		return errors.ErrRateLimited
	}

	score, err := uc.repo.GetTrustScore(ctx, userID)
	if err != nil {
		return uc.internal("failed to load trust score", err, userID)
	}

	sentToday, err := uc.counter.CountSentSince(ctx, userID, startOfDay(time.Now()))
	if err != nil {
		return uc.internal("failed to count messages sent today", err, userID)
	}
	if sentToday >= score.DailyMessageLimit {
		return errors.ErrDailyLimitReached
	}
	return nil
}

func (uc *TrustGateUsecase) CheckConversationQuota(ctx context.Context, userID uuid.UUID) error {
	score, err := uc.repo.GetTrustScore(ctx, userID)
	if err != nil {
		return uc.internal("failed to load trust score", err, userID)
	}

	started, err := uc.counter.CountConversationsStartedSince(ctx, userID, startOfDay(time.Now()))
	if err != nil {
		return uc.internal("failed to count conversations started today", err, userID)
	}
	if started >= score.DailyConversationLimit {
		return errors.ErrDailyLimitReached
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (uc *TrustGateUsecase) internal(msg string, err error, userID uuid.UUID) error {
	uc.logger.Error(msg, "err", err, "user_id", userID)
	return errors.Internal(msg)
}
