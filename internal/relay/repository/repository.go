package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/MuscleMap-ME/musclemap-messaging/internal/relay"
	models "github.com/MuscleMap-ME/musclemap-messaging/internal/relay/model"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrReceiptNotFound      = errors.New("receipt not found")
)

type RelayRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewRelayRepository(db *bun.DB, logger *logger.Logger) *RelayRepository {
	return &RelayRepository{db: db, logger: logger}
}

func (r *RelayRepository) CreateConversation(ctx context.Context, isE2EE bool, protocolVersion int, participants []uuid.UUID) (*models.Conversation, error) {
	conversation := &models.Conversation{
		IsE2EE:          isE2EE,
		ProtocolVersion: protocolVersion,
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(conversation).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.CreateConversation.Insert")
		}

		rows := make([]models.ConversationParticipant, 0, len(participants))
		for _, userID := range participants {
			rows = append(rows, models.ConversationParticipant{
				ConversationID: conversation.ID,
				UserID:         userID,
			})
		}
		_, err = tx.NewInsert().
			Model(&rows).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.CreateConversation.InsertParticipants")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conversation, nil
}

func (r *RelayRepository) GetConversation(ctx context.Context, conversationID uuid.UUID) (*models.Conversation, error) {
	conversation := new(models.Conversation)
	err := r.db.NewSelect().
		Model(conversation).
		Where("id = ?", conversationID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "relayRepo.GetConversation.Scan")
	}
	return conversation, nil
}

func (r *RelayRepository) IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.ConversationParticipant)(nil)).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "relayRepo.IsParticipant.Exists")
	}
	return exists, nil
}

func (r *RelayRepository) ListParticipants(ctx context.Context, conversationID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	err := r.db.NewSelect().
		Model((*models.ConversationParticipant)(nil)).
		Column("user_id").
		Where("conversation_id = ?", conversationID).
		Order("joined_at ASC").
		Scan(ctx, &userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "relayRepo.ListParticipants.Scan")
	}
	return userIDs, nil
}

// StoreMessage inserts the message, fans receipts out to every recipient,
// upserts the sender's sessions and bumps the conversation, all in one
// transaction. A failure anywhere leaves no trace of the send.
func (r *RelayRepository) StoreMessage(ctx context.Context, message *models.EncryptedMessage, receipts []models.MessageReceipt, sessions []models.Session) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(message).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.StoreMessage.InsertMessage")
		}

		if len(receipts) > 0 {
			for i := range receipts {
				receipts[i].MessageID = message.ID
			}
			_, err = tx.NewInsert().
				Model(&receipts).
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "relayRepo.StoreMessage.InsertReceipts")
			}
		}

		if len(sessions) > 0 {
			_, err = tx.NewInsert().
				Model(&sessions).
				On("CONFLICT (conversation_id, user_id, device_id, peer_user_id, peer_device_id) DO UPDATE").
				Set("messages_sent = session.messages_sent + 1").
				Set("last_message_at = EXCLUDED.last_message_at").
				Set("ratchet_count = CASE WHEN session.last_ratchet_key IS DISTINCT FROM EXCLUDED.last_ratchet_key THEN session.ratchet_count + 1 ELSE session.ratchet_count END").
				Set("last_ratchet_at = CASE WHEN session.last_ratchet_key IS DISTINCT FROM EXCLUDED.last_ratchet_key THEN EXCLUDED.last_ratchet_at ELSE session.last_ratchet_at END").
				Set("last_ratchet_key = EXCLUDED.last_ratchet_key").
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "relayRepo.StoreMessage.UpsertSessions")
			}
		}

		res, err := tx.NewUpdate().
			Model((*models.Conversation)(nil)).
			Set("is_e2ee = TRUE").
			Set("protocol_version = GREATEST(protocol_version, ?)", message.ProtocolVersion).
			Set("last_message_at = ?", message.CreatedAt).
			Set("message_count = message_count + 1").
			Where("id = ?", message.ConversationID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.StoreMessage.BumpConversation")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrConversationNotFound
		}
		return nil
	})
}

func (r *RelayRepository) GetMessage(ctx context.Context, messageID uuid.UUID) (*models.EncryptedMessage, error) {
	message := new(models.EncryptedMessage)
	err := r.db.NewSelect().
		Model(message).
		Where("id = ?", messageID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "relayRepo.GetMessage.Scan")
	}
	return message, nil
}

// ListMessages pages newest-first on the composite (created_at, id) key, so
// inserts during paging never shift or duplicate entries.
func (r *RelayRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, before *relay.Cursor, limit int, includeDeleted bool) ([]models.EncryptedMessage, error) {
	var messages []models.EncryptedMessage

	q := r.db.NewSelect().
		Model(&messages).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC", "id DESC").
		Limit(limit)
	if includeDeleted {
		q = q.WhereAllWithDeleted()
	}
	if before != nil {
		q = q.Where("(created_at, id) < (?, ?)", before.CreatedAt, before.ID)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "relayRepo.ListMessages.Scan")
	}
	return messages, nil
}

func (r *RelayRepository) GetOwnReceipts(ctx context.Context, messageIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]models.MessageReceipt, error) {
	if len(messageIDs) == 0 {
		return map[uuid.UUID]models.MessageReceipt{}, nil
	}

	var receipts []models.MessageReceipt
	err := r.db.NewSelect().
		Model(&receipts).
		Where("message_id IN (?)", bun.In(messageIDs)).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "relayRepo.GetOwnReceipts.Scan")
	}

	byMessage := make(map[uuid.UUID]models.MessageReceipt, len(receipts))
	for _, receipt := range receipts {
		byMessage[receipt.MessageID] = receipt
	}
	return byMessage, nil
}

func (r *RelayRepository) MarkReceiptDelivered(ctx context.Context, messageID, userID uuid.UUID, deviceID string) (*relay.ReceiptCounts, bool, error) {
	return r.markReceipt(ctx, messageID, userID, func(tx bun.Tx) (sql.Result, error) {
		return tx.NewUpdate().
			Model((*models.MessageReceipt)(nil)).
			Set("delivered_at = ?", time.Now()).
			Set("device_id = ?", deviceID).
			Where("message_id = ? AND user_id = ? AND delivered_at IS NULL", messageID, userID).
			Exec(ctx)
	})
}

// MarkReceiptRead sets read and, for recipients that never acknowledged
// delivery, delivered in the same statement. Read implies delivered.
func (r *RelayRepository) MarkReceiptRead(ctx context.Context, messageID, userID uuid.UUID, deviceID string) (*relay.ReceiptCounts, bool, error) {
	return r.markReceipt(ctx, messageID, userID, func(tx bun.Tx) (sql.Result, error) {
		now := time.Now()
		return tx.NewUpdate().
			Model((*models.MessageReceipt)(nil)).
			Set("read_at = ?", now).
			Set("delivered_at = COALESCE(delivered_at, ?)", now).
			Set("device_id = ?", deviceID).
			Where("message_id = ? AND user_id = ? AND read_at IS NULL", messageID, userID).
			Exec(ctx)
	})
}

func (r *RelayRepository) markReceipt(ctx context.Context, messageID, userID uuid.UUID, update func(tx bun.Tx) (sql.Result, error)) (*relay.ReceiptCounts, bool, error) {
	counts := new(relay.ReceiptCounts)
	applied := false

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := update(tx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.markReceipt.Update")
		}
		n, _ := res.RowsAffected()
		applied = n > 0

		if !applied {
			exists, err := tx.NewSelect().
				Model((*models.MessageReceipt)(nil)).
				Where("message_id = ? AND user_id = ?", messageID, userID).
				Exists(ctx)
			if err != nil {
				return errors.Wrap(err, "relayRepo.markReceipt.Exists")
			}
			if !exists {
				return ErrReceiptNotFound
			}
		}

		// Counts are recomputed from the receipt table, never incremented,
		// so a replayed acknowledgement can not skew them.
		err = tx.NewUpdate().
			Model((*models.EncryptedMessage)(nil)).
			Set("delivered_count = (SELECT COUNT(*) FROM message_receipts WHERE message_id = ? AND delivered_at IS NOT NULL)", messageID).
			Set("read_count = (SELECT COUNT(*) FROM message_receipts WHERE message_id = ? AND read_at IS NOT NULL)", messageID).
			Where("id = ?", messageID).
			Returning("delivered_count, read_count").
			Scan(ctx, &counts.DeliveredCount, &counts.ReadCount)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMessageNotFound
			}
			return errors.Wrap(err, "relayRepo.markReceipt.Recount")
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return counts, applied, nil
}

// SoftDeleteMessage only matches rows authored by senderID. Zero rows
// affected means the message does not exist or belongs to someone else;
// the two cases are deliberately indistinguishable to the caller.
func (r *RelayRepository) SoftDeleteMessage(ctx context.Context, messageID, senderID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*models.EncryptedMessage)(nil)).
		Where("id = ? AND sender_id = ?", messageID, senderID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "relayRepo.SoftDeleteMessage.Exec")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *RelayRepository) UpgradeConversation(ctx context.Context, conversationID uuid.UUID, protocolVersion int) error {
	res, err := r.db.NewUpdate().
		Model((*models.Conversation)(nil)).
		Set("is_e2ee = TRUE").
		Set("protocol_version = GREATEST(protocol_version, ?)", protocolVersion).
		Where("id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "relayRepo.UpgradeConversation.Exec")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrConversationNotFound
	}
	return nil
}

func (r *RelayRepository) DeleteDeviceSessions(ctx context.Context, userID uuid.UUID, deviceID string) error {
	_, err := r.db.NewDelete().
		Model((*models.Session)(nil)).
		Where("(user_id = ? AND device_id = ?) OR (peer_user_id = ? AND peer_device_id = ?)", userID, deviceID, userID, deviceID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "relayRepo.DeleteDeviceSessions.Exec")
	}
	return nil
}

func (r *RelayRepository) CountSentSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.EncryptedMessage)(nil)).
		WhereAllWithDeleted().
		Where("sender_id = ? AND created_at >= ?", userID, since).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "relayRepo.CountSentSince.Count")
	}
	return count, nil
}

// CountConversationsStartedSince counts distinct conversations in which the
// user initiated a session since the cutoff. A stored key exchange marks the
// initiating message.
func (r *RelayRepository) CountConversationsStartedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := r.db.NewSelect().
		Model((*models.EncryptedMessage)(nil)).
		ColumnExpr("COUNT(DISTINCT conversation_id)").
		WhereAllWithDeleted().
		Where("sender_id = ? AND key_exchange IS NOT NULL AND created_at >= ?", userID, since).
		Scan(ctx, &count)
	if err != nil {
		return 0, errors.Wrap(err, "relayRepo.CountConversationsStartedSince.Scan")
	}
	return count, nil
}

func (r *RelayRepository) HasConversationBetween(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.NewRaw(
		"SELECT EXISTS (SELECT 1 FROM conversation_participants a JOIN conversation_participants b ON a.conversation_id = b.conversation_id WHERE a.user_id = ? AND b.user_id = ?)",
		userA, userB,
	).Scan(ctx, &exists)
	if err != nil {
		return false, errors.Wrap(err, "relayRepo.HasConversationBetween.Scan")
	}
	return exists, nil
}

func (r *RelayRepository) PurgeExpiredMessages(ctx context.Context, now time.Time) (int64, error) {
	var purged int64

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.MessageReceipt)(nil)).
			Where("message_id IN (SELECT id FROM encrypted_messages WHERE expires_at IS NOT NULL AND expires_at <= ?)", now).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.PurgeExpiredMessages.DeleteReceipts")
		}

		res, err := tx.NewDelete().
			Model((*models.EncryptedMessage)(nil)).
			Where("expires_at IS NOT NULL AND expires_at <= ?", now).
			ForceDelete().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.PurgeExpiredMessages.DeleteMessages")
		}
		purged, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

func (r *RelayRepository) PurgeDeletedMessages(ctx context.Context, before time.Time) (int64, error) {
	var purged int64

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.MessageReceipt)(nil)).
			Where("message_id IN (SELECT id FROM encrypted_messages WHERE deleted_at IS NOT NULL AND deleted_at < ?)", before).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.PurgeDeletedMessages.DeleteReceipts")
		}

		res, err := tx.NewDelete().
			Model((*models.EncryptedMessage)(nil)).
			Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
			WhereAllWithDeleted().
			ForceDelete().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "relayRepo.PurgeDeletedMessages.DeleteMessages")
		}
		purged, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}
