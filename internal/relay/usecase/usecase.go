package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/MuscleMap-ME/musclemap-messaging/config"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/metrics"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/relay"
	models "github.com/MuscleMap-ME/musclemap-messaging/internal/relay/model"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/relay/repository"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/crypto"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type MessageRelayUsecase struct {
	repo      relay.RelayRepository
	keys      relay.KeyDirectory
	gate      relay.PermissionGate
	publisher relay.EventPublisher
	logger    *logger.Logger
	config    *config.Config
}

func NewMessageRelayUsecase(
	repo relay.RelayRepository,
	keys relay.KeyDirectory,
	gate relay.PermissionGate,
	publisher relay.EventPublisher,
	logger *logger.Logger,
	config *config.Config,
) *MessageRelayUsecase {
	return &MessageRelayUsecase{
		repo:      repo,
		keys:      keys,
		gate:      gate,
		publisher: publisher,
		logger:    logger,
		config:    config,
	}
}

func (uc *MessageRelayUsecase) CreateConversation(ctx context.Context, creatorID uuid.UUID, participants []uuid.UUID) (uuid.UUID, error) {
	if creatorID == uuid.Nil {
		return uuid.Nil, errors.InvalidArg("creator is required")
	}

	seen := map[uuid.UUID]struct{}{creatorID: {}}
	all := []uuid.UUID{creatorID}
	for _, userID := range participants {
		if userID == uuid.Nil {
			return uuid.Nil, errors.InvalidArg("participant id is required")
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		all = append(all, userID)
	}
	if len(all) < 2 {
		return uuid.Nil, errors.InvalidArg("a conversation needs at least two participants")
	}

	for _, recipientID := range all[1:] {
		decision, err := uc.gate.CanMessageUser(ctx, creatorID, recipientID)
		if err != nil {
			return uuid.Nil, err
		}
		if !decision.CanMessage {
			return uuid.Nil, errors.Forbidden(decision.Reason)
		}
	}

	conversation, err := uc.repo.CreateConversation(ctx, false, 0, all)
	if err != nil {
		return uuid.Nil, uc.internal("could not create conversation", err)
	}
	return conversation.ID, nil
}

// SendEncryptedMessage validates, gates and stores a ciphertext. The ordering
// is deliberate: membership first, then quotas, then per-recipient policy,
// then payload shape, then the sender's fingerprint. Nothing is persisted
// until every check has passed.
func (uc *MessageRelayUsecase) SendEncryptedMessage(ctx context.Context, cmd relay.SendMessageCommand) (*relay.SendResultDTO, error) {
	isParticipant, err := uc.repo.IsParticipant(ctx, cmd.ConversationID, cmd.SenderID)
	if err != nil {
		return nil, uc.internal("could not check conversation membership", err)
	}
	if !isParticipant {
		metrics.SendsRejected.WithLabelValues("not_participant").Inc()
		return nil, errors.ErrNotParticipant
	}

	participants, err := uc.repo.ListParticipants(ctx, cmd.ConversationID)
	if err != nil {
		return nil, uc.internal("could not load participants", err)
	}
	recipients := make([]uuid.UUID, 0, len(participants)-1)
	for _, userID := range participants {
		if userID != cmd.SenderID {
			recipients = append(recipients, userID)
		}
	}
	if len(recipients) == 0 {
		return nil, errors.InvalidArg("conversation has no recipients")
	}

	if err := uc.gate.CheckSendQuota(ctx, cmd.SenderID); err != nil {
		metrics.SendsRejected.WithLabelValues("quota").Inc()
		return nil, err
	}
	if cmd.Payload.KeyExchange != nil {
		if err := uc.gate.CheckConversationQuota(ctx, cmd.SenderID); err != nil {
			metrics.SendsRejected.WithLabelValues("quota").Inc()
			return nil, err
		}
	}

	// One blocked or protected recipient vetoes the whole send.
	for _, recipientID := range recipients {
		decision, err := uc.gate.CanMessageUser(ctx, cmd.SenderID, recipientID)
		if err != nil {
			return nil, err
		}
		if !decision.CanMessage {
			metrics.SendsRejected.WithLabelValues("gate").Inc()
			return nil, errors.Forbidden(decision.Reason)
		}
	}

	if violations := crypto.ValidatePayload(cmd.Payload, uc.config.Messaging.ProtocolVersion); len(violations) > 0 {
		metrics.SendsRejected.WithLabelValues("payload").Inc()
		return nil, errors.Validation(violations)
	}

	matches, err := uc.keys.VerifyKeyFingerprint(ctx, cmd.SenderID, cmd.SenderDeviceID, cmd.Payload.SenderFingerprint)
	if err != nil {
		return nil, uc.internal("could not verify sender fingerprint", err)
	}
	if !matches {
		uc.logger.Warn("sender fingerprint mismatch",
			"user_id", cmd.SenderID, "device_id", cmd.SenderDeviceID,
			"conversation_id", cmd.ConversationID)
		metrics.SendsRejected.WithLabelValues("fingerprint").Inc()
		return nil, errors.ErrFingerprintMismatch
	}

	message, err := uc.buildMessage(cmd)
	if err != nil {
		return nil, err
	}

	receipts := make([]models.MessageReceipt, 0, len(recipients))
	for _, recipientID := range recipients {
		receipts = append(receipts, models.MessageReceipt{UserID: recipientID})
	}

	sessions, err := uc.buildSessions(ctx, cmd, recipients, message)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.StoreMessage(ctx, message, receipts, sessions); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.ErrConversationNotFound
		}
		return nil, uc.internal("could not store message", err)
	}

	metrics.MessagesSent.Inc()
	uc.publish(ctx, func(ctx context.Context) error {
		return uc.publisher.MessageSent(ctx, relay.MessageSentEvent{
			MessageID:      message.ID,
			ConversationID: message.ConversationID,
			SenderID:       message.SenderID,
			Recipients:     recipients,
			ContentType:    message.ContentType,
			CreatedAt:      message.CreatedAt,
		})
	})

	return &relay.SendResultDTO{
		MessageID: message.ID,
		CreatedAt: message.CreatedAt,
		ExpiresAt: message.ExpiresAt,
		Receipts:  len(receipts),
	}, nil
}

func (uc *MessageRelayUsecase) buildMessage(cmd relay.SendMessageCommand) (*models.EncryptedMessage, error) {
	// The payload passed validation, so the decodes can not fail here.
	ratchetKey, err := crypto.DecodeKey(cmd.Payload.Header.RatchetPublicKey)
	if err != nil {
		return nil, errors.ErrMalformedRatchetHeader
	}
	nonce, err := crypto.DecodeNonce(cmd.Payload.Nonce)
	if err != nil {
		return nil, errors.ErrMalformedNonce
	}
	ciphertext, err := crypto.DecodeCiphertext(cmd.Payload.Ciphertext)
	if err != nil {
		return nil, errors.ErrMalformedCiphertext
	}

	var keyExchange []byte
	if cmd.Payload.KeyExchange != nil {
		keyExchange, err = json.Marshal(cmd.Payload.KeyExchange)
		if err != nil {
			return nil, uc.internal("could not encode key exchange", err)
		}
	}

	contentType := cmd.ContentType
	if contentType == "" {
		contentType = "text"
	}

	now := time.Now()
	message := &models.EncryptedMessage{
		ConversationID:      cmd.ConversationID,
		SenderID:            cmd.SenderID,
		SenderDeviceID:      cmd.SenderDeviceID,
		SenderFingerprint:   cmd.Payload.SenderFingerprint,
		ProtocolVersion:     cmd.Payload.ProtocolVersion,
		KeyExchange:         keyExchange,
		RatchetPublicKey:    ratchetKey,
		MessageNumber:       cmd.Payload.Header.MessageNumber,
		PreviousChainLength: cmd.Payload.Header.PreviousChainLength,
		Nonce:               nonce,
		Ciphertext:          ciphertext,
		ContentType:         contentType,
		FileID:              cmd.FileID,
		CreatedAt:           now,
	}
	if cmd.TTL != nil && *cmd.TTL > 0 {
		expires := now.Add(*cmd.TTL)
		message.ExpiresAt = &expires
	}
	return message, nil
}

func (uc *MessageRelayUsecase) buildSessions(ctx context.Context, cmd relay.SendMessageCommand, recipients []uuid.UUID, message *models.EncryptedMessage) ([]models.Session, error) {
	var sessions []models.Session
	ratchetAt := message.CreatedAt

	for _, recipientID := range recipients {
		deviceIDs, err := uc.keys.ListDeviceIDs(ctx, recipientID)
		if err != nil {
			return nil, uc.internal("could not list recipient devices", err)
		}
		for _, deviceID := range deviceIDs {
			sessions = append(sessions, models.Session{
				ConversationID: cmd.ConversationID,
				UserID:         cmd.SenderID,
				DeviceID:       cmd.SenderDeviceID,
				PeerUserID:     recipientID,
				PeerDeviceID:   deviceID,
				MessagesSent:   1,
				LastMessageAt:  message.CreatedAt,
				LastRatchetKey: message.RatchetPublicKey,
				LastRatchetAt:  &ratchetAt,
			})
		}
	}
	return sessions, nil
}

func (uc *MessageRelayUsecase) GetMessages(ctx context.Context, conversationID, userID uuid.UUID, cursor string, limit int, includeDeleted bool) (*relay.MessagePage, error) {
	isParticipant, err := uc.repo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, uc.internal("could not check conversation membership", err)
	}
	if !isParticipant {
		return nil, errors.ErrNotParticipant
	}

	before, err := relay.DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	messages, err := uc.repo.ListMessages(ctx, conversationID, before, limit, includeDeleted)
	if err != nil {
		return nil, uc.internal("could not list messages", err)
	}

	messageIDs := make([]uuid.UUID, 0, len(messages))
	for _, message := range messages {
		messageIDs = append(messageIDs, message.ID)
	}
	receipts, err := uc.repo.GetOwnReceipts(ctx, messageIDs, userID)
	if err != nil {
		return nil, uc.internal("could not load receipts", err)
	}

	page := &relay.MessagePage{Messages: make([]relay.MessageDTO, 0, len(messages))}
	for _, message := range messages {
		dto := toMessageDTO(message)
		if receipt, ok := receipts[message.ID]; ok {
			dto.DeliveredAt = receipt.DeliveredAt
			dto.ReadAt = receipt.ReadAt
		}
		page.Messages = append(page.Messages, dto)
	}
	if len(messages) == limit {
		last := messages[len(messages)-1]
		page.NextCursor = relay.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()
	}
	return page, nil
}

func toMessageDTO(m models.EncryptedMessage) relay.MessageDTO {
	dto := relay.MessageDTO{
		ID:                  m.ID,
		ConversationID:      m.ConversationID,
		SenderID:            m.SenderID,
		SenderDeviceID:      m.SenderDeviceID,
		SenderFingerprint:   m.SenderFingerprint,
		ProtocolVersion:     m.ProtocolVersion,
		KeyExchange:         m.KeyExchange,
		RatchetPublicKey:    m.RatchetPublicKey,
		MessageNumber:       m.MessageNumber,
		PreviousChainLength: m.PreviousChainLength,
		Nonce:               m.Nonce,
		Ciphertext:          m.Ciphertext,
		ContentType:         m.ContentType,
		FileID:              m.FileID,
		CreatedAt:           m.CreatedAt,
		ExpiresAt:           m.ExpiresAt,
		DeletedAt:           m.DeletedAt,
		DeliveredCount:      m.DeliveredCount,
		ReadCount:           m.ReadCount,
	}
	if m.DeletedAt != nil {
		// Tombstone: the ciphertext is withheld once the sender deletes.
		dto.Ciphertext = nil
		dto.Nonce = nil
		dto.KeyExchange = nil
	}
	return dto
}

func (uc *MessageRelayUsecase) MarkDelivered(ctx context.Context, messageID, userID uuid.UUID, deviceID string) error {
	return uc.markReceipt(ctx, messageID, userID, deviceID, "delivered")
}

func (uc *MessageRelayUsecase) MarkRead(ctx context.Context, messageID, userID uuid.UUID, deviceID string) error {
	return uc.markReceipt(ctx, messageID, userID, deviceID, "read")
}

func (uc *MessageRelayUsecase) markReceipt(ctx context.Context, messageID, userID uuid.UUID, deviceID, kind string) error {
	var (
		counts  *relay.ReceiptCounts
		applied bool
		err     error
	)
	if kind == "read" {
		counts, applied, err = uc.repo.MarkReceiptRead(ctx, messageID, userID, deviceID)
	} else {
		counts, applied, err = uc.repo.MarkReceiptDelivered(ctx, messageID, userID, deviceID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) || errors.Is(err, repository.ErrMessageNotFound) {
			return errors.ErrMessageNotFound
		}
		return uc.internal("could not update receipt", err)
	}
	if !applied {
		// Replayed acknowledgement, already recorded.
		return nil
	}

	metrics.ReceiptsUpdated.WithLabelValues(kind).Inc()

	message, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		// The receipt committed; the event is best effort from here.
		uc.logger.Warn("receipt event skipped", "error", err, "message_id", messageID)
		return nil
	}
	uc.publish(ctx, func(ctx context.Context) error {
		return uc.publisher.ReceiptUpdated(ctx, relay.ReceiptUpdatedEvent{
			MessageID:      messageID,
			ConversationID: message.ConversationID,
			UserID:         userID,
			Kind:           kind,
			DeliveredCount: counts.DeliveredCount,
			ReadCount:      counts.ReadCount,
			OccurredAt:     time.Now(),
		})
	})
	return nil
}

// DeleteMessage soft-deletes sender-side. A non-author caller gets the same
// not-found as a caller naming a message that never existed.
func (uc *MessageRelayUsecase) DeleteMessage(ctx context.Context, messageID, userID uuid.UUID) error {
	err := uc.repo.SoftDeleteMessage(ctx, messageID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.ErrMessageNotFound
		}
		return uc.internal("could not delete message", err)
	}
	return nil
}

func (uc *MessageRelayUsecase) CanUpgradeToE2EE(ctx context.Context, conversationID uuid.UUID) (*relay.UpgradeCheckDTO, error) {
	participants, err := uc.repo.ListParticipants(ctx, conversationID)
	if err != nil {
		return nil, uc.internal("could not load participants", err)
	}
	if len(participants) == 0 {
		return nil, errors.ErrConversationNotFound
	}

	check := &relay.UpgradeCheckDTO{CanUpgrade: true}
	for _, userID := range participants {
		registered, err := uc.keys.HasRegisteredKeys(ctx, userID)
		if err != nil {
			return nil, uc.internal("could not check registered keys", err)
		}
		if !registered {
			check.CanUpgrade = false
			check.MissingKeys = append(check.MissingKeys, userID)
		}
	}
	return check, nil
}

func (uc *MessageRelayUsecase) UpgradeConversationToE2EE(ctx context.Context, conversationID uuid.UUID) error {
	check, err := uc.CanUpgradeToE2EE(ctx, conversationID)
	if err != nil {
		return err
	}
	if !check.CanUpgrade {
		return errors.FailedPrecondition("all participants must register encryption keys first")
	}

	if err := uc.repo.UpgradeConversation(ctx, conversationID, uc.config.Messaging.ProtocolVersion); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return errors.ErrConversationNotFound
		}
		return uc.internal("could not upgrade conversation", err)
	}

	uc.logger.Info("conversation upgraded to e2ee", "conversation_id", conversationID)
	uc.publish(ctx, func(ctx context.Context) error {
		return uc.publisher.ConversationUpgraded(ctx, relay.ConversationUpgradedEvent{
			ConversationID:  conversationID,
			ProtocolVersion: uc.config.Messaging.ProtocolVersion,
			OccurredAt:      time.Now(),
		})
	})
	return nil
}

func (uc *MessageRelayUsecase) RunMaintenance(ctx context.Context, now time.Time) error {
	expired, err := uc.repo.PurgeExpiredMessages(ctx, now)
	if err != nil {
		return uc.internal("could not purge expired messages", err)
	}
	metrics.SweepDeleted.WithLabelValues("expired_messages").Add(float64(expired))

	purged, err := uc.repo.PurgeDeletedMessages(ctx, now.Add(-uc.config.Messaging.DeletedRetention))
	if err != nil {
		return uc.internal("could not purge deleted messages", err)
	}
	metrics.SweepDeleted.WithLabelValues("soft_deleted").Add(float64(purged))

	if expired > 0 || purged > 0 {
		uc.logger.Info("message sweep completed", "expired", expired, "purged", purged)
	}
	return nil
}

func (uc *MessageRelayUsecase) internal(msg string, err error) error {
	uc.logger.Error(msg, "err", err)
	return errors.Internal(msg)
}

func (uc *MessageRelayUsecase) publish(ctx context.Context, fn func(ctx context.Context) error) {
	if uc.publisher == nil {
		return
	}
	if err := fn(ctx); err != nil {
		uc.logger.Warn("event publish failed", "error", err)
	}
}
