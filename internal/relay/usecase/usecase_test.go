package usecase

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuscleMap-ME/musclemap-messaging/config"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/relay"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/relay/mocks"
	models "github.com/MuscleMap-ME/musclemap-messaging/internal/relay/model"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/relay/repository"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/trust"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/crypto"
	appErrors "github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

type relayFixture struct {
	repo      *mocks.MockRelayRepository
	keys      *mocks.MockKeyDirectory
	gate      *mocks.MockPermissionGate
	publisher *mocks.MockEventPublisher
	uc        *MessageRelayUsecase
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Messaging.ProtocolVersion = 1
	cfg.Messaging.DeletedRetention = 30 * 24 * time.Hour

	f := &relayFixture{
		repo:      mocks.NewMockRelayRepository(ctrl),
		keys:      mocks.NewMockKeyDirectory(ctrl),
		gate:      mocks.NewMockPermissionGate(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}
	f.uc = NewMessageRelayUsecase(f.repo, f.keys, f.gate, f.publisher, logger.NewNop(), cfg)
	return f
}

func b64bytes(n int) string {
	raw := make([]byte, n)
	for i := range raw {
		raw[i] = byte(i)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func validSendCommand(conversationID, senderID uuid.UUID) relay.SendMessageCommand {
	return relay.SendMessageCommand{
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderDeviceID: "device-1",
		Payload: crypto.EncryptedPayload{
			ProtocolVersion:   1,
			SenderFingerprint: "fp-sender",
			Header: crypto.RatchetHeader{
				RatchetPublicKey: b64bytes(32),
				MessageNumber:    5,
			},
			Nonce:      b64bytes(24),
			Ciphertext: b64bytes(64),
		},
	}
}

func allow() *trust.MessagingDecision {
	return &trust.MessagingDecision{CanMessage: true}
}

func TestMessageRelayUsecase_SendEncryptedMessage(t *testing.T) {
	conversationID := uuid.New()
	senderID := uuid.New()
	recipientID := uuid.New()

	t.Run("happy path - stored atomically with receipts and sessions", func(t *testing.T) {
		f := newRelayFixture(t)
		cmd := validSendCommand(conversationID, senderID)

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, senderID).Return(true, nil)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{senderID, recipientID}, nil)
		f.gate.EXPECT().CheckSendQuota(gomock.Any(), senderID).Return(nil)
		f.gate.EXPECT().CanMessageUser(gomock.Any(), senderID, recipientID).Return(allow(), nil)
		f.keys.EXPECT().VerifyKeyFingerprint(gomock.Any(), senderID, "device-1", "fp-sender").Return(true, nil)
		f.keys.EXPECT().ListDeviceIDs(gomock.Any(), recipientID).Return([]string{"dev-a", "dev-b"}, nil)
		f.repo.EXPECT().
			StoreMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message *models.EncryptedMessage, receipts []models.MessageReceipt, sessions []models.Session) error {
				message.ID = uuid.New()
				assert.Equal(t, conversationID, message.ConversationID)
				assert.Equal(t, "fp-sender", message.SenderFingerprint)
				assert.Len(t, message.RatchetPublicKey, 32)
				assert.Len(t, message.Nonce, 24)
				assert.Equal(t, "text", message.ContentType)
				assert.Nil(t, message.KeyExchange)
				require.Len(t, receipts, 1)
				assert.Equal(t, recipientID, receipts[0].UserID)
				require.Len(t, sessions, 2)
				assert.Equal(t, "device-1", sessions[0].DeviceID)
				assert.Equal(t, "dev-a", sessions[0].PeerDeviceID)
				return nil
			})
		f.publisher.EXPECT().MessageSent(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.SendEncryptedMessage(context.Background(), cmd)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.MessageID)
		assert.Equal(t, 1, result.Receipts)
		assert.Nil(t, result.ExpiresAt)
	})

	t.Run("ttl sets expiry", func(t *testing.T) {
		f := newRelayFixture(t)
		cmd := validSendCommand(conversationID, senderID)
		ttl := time.Hour
		cmd.TTL = &ttl

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, senderID).Return(true, nil)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{senderID, recipientID}, nil)
		f.gate.EXPECT().CheckSendQuota(gomock.Any(), senderID).Return(nil)
		f.gate.EXPECT().CanMessageUser(gomock.Any(), senderID, recipientID).Return(allow(), nil)
		f.keys.EXPECT().VerifyKeyFingerprint(gomock.Any(), senderID, "device-1", "fp-sender").Return(true, nil)
		f.keys.EXPECT().ListDeviceIDs(gomock.Any(), recipientID).Return(nil, nil)
		f.repo.EXPECT().StoreMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().MessageSent(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.SendEncryptedMessage(context.Background(), cmd)
		require.NoError(t, err)
		require.NotNil(t, result.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(time.Hour), *result.ExpiresAt, time.Minute)
	})

	t.Run("key exchange triggers the conversation quota", func(t *testing.T) {
		f := newRelayFixture(t)
		cmd := validSendCommand(conversationID, senderID)
		cmd.Payload.KeyExchange = &crypto.KeyExchange{EphemeralKey: b64bytes(32), UsedSignedPreKeyID: 1}

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, senderID).Return(true, nil)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{senderID, recipientID}, nil)
		f.gate.EXPECT().CheckSendQuota(gomock.Any(), senderID).Return(nil)
		f.gate.EXPECT().CheckConversationQuota(gomock.Any(), senderID).Return(appErrors.ErrDailyLimitReached)

		_, err := f.uc.SendEncryptedMessage(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrDailyLimitReached)
	})

	t.Run("non-participant gets a vague denial", func(t *testing.T) {
		f := newRelayFixture(t)
		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, senderID).Return(false, nil)

		_, err := f.uc.SendEncryptedMessage(context.Background(), validSendCommand(conversationID, senderID))
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("one gated recipient vetoes the send", func(t *testing.T) {
		f := newRelayFixture(t)
		other := uuid.New()

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, senderID).Return(true, nil)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{senderID, recipientID, other}, nil)
		f.gate.EXPECT().CheckSendQuota(gomock.Any(), senderID).Return(nil)
		f.gate.EXPECT().CanMessageUser(gomock.Any(), senderID, recipientID).Return(allow(), nil)
		f.gate.EXPECT().CanMessageUser(gomock.Any(), senderID, other).
			Return(&trust.MessagingDecision{Reason: "messaging is not available"}, nil)

		_, err := f.uc.SendEncryptedMessage(context.Background(), validSendCommand(conversationID, senderID))
		require.Error(t, err)

		var appErr *appErrors.AppError
		require.True(t, appErrors.As(err, &appErr))
		assert.Equal(t, appErrors.CodePermissionDenied, appErr.Code)
	})

	t.Run("malformed payload reports every violation", func(t *testing.T) {
		f := newRelayFixture(t)
		cmd := validSendCommand(conversationID, senderID)
		cmd.Payload.ProtocolVersion = 9
		cmd.Payload.Nonce = b64bytes(8)

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, senderID).Return(true, nil)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{senderID, recipientID}, nil)
		f.gate.EXPECT().CheckSendQuota(gomock.Any(), senderID).Return(nil)
		f.gate.EXPECT().CanMessageUser(gomock.Any(), senderID, recipientID).Return(allow(), nil)

		_, err := f.uc.SendEncryptedMessage(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrInvalidPayload)
		assert.ErrorIs(t, err, appErrors.ErrProtocolVersionMismatch)
		assert.ErrorIs(t, err, appErrors.ErrMalformedNonce)
	})

	t.Run("fingerprint mismatch rejected", func(t *testing.T) {
		f := newRelayFixture(t)

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, senderID).Return(true, nil)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{senderID, recipientID}, nil)
		f.gate.EXPECT().CheckSendQuota(gomock.Any(), senderID).Return(nil)
		f.gate.EXPECT().CanMessageUser(gomock.Any(), senderID, recipientID).Return(allow(), nil)
		f.keys.EXPECT().VerifyKeyFingerprint(gomock.Any(), senderID, "device-1", "fp-sender").Return(false, nil)

		_, err := f.uc.SendEncryptedMessage(context.Background(), validSendCommand(conversationID, senderID))
		assert.ErrorIs(t, err, appErrors.ErrFingerprintMismatch)
	})

	t.Run("publish failure does not fail the send", func(t *testing.T) {
		f := newRelayFixture(t)

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, senderID).Return(true, nil)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{senderID, recipientID}, nil)
		f.gate.EXPECT().CheckSendQuota(gomock.Any(), senderID).Return(nil)
		f.gate.EXPECT().CanMessageUser(gomock.Any(), senderID, recipientID).Return(allow(), nil)
		f.keys.EXPECT().VerifyKeyFingerprint(gomock.Any(), senderID, "device-1", "fp-sender").Return(true, nil)
		f.keys.EXPECT().ListDeviceIDs(gomock.Any(), recipientID).Return(nil, nil)
		f.repo.EXPECT().StoreMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().MessageSent(gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := f.uc.SendEncryptedMessage(context.Background(), validSendCommand(conversationID, senderID))
		require.NoError(t, err)
	})
}

func TestMessageRelayUsecase_GetMessages(t *testing.T) {
	conversationID := uuid.New()
	userID := uuid.New()

	t.Run("page with own receipts and next cursor", func(t *testing.T) {
		f := newRelayFixture(t)

		now := time.Now()
		m1 := models.EncryptedMessage{ID: uuid.New(), ConversationID: conversationID, CreatedAt: now, Ciphertext: []byte("c1")}
		m2 := models.EncryptedMessage{ID: uuid.New(), ConversationID: conversationID, CreatedAt: now.Add(-time.Minute), Ciphertext: []byte("c2")}
		deliveredAt := now.Add(-30 * time.Second)

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, userID).Return(true, nil)
		f.repo.EXPECT().ListMessages(gomock.Any(), conversationID, gomock.Nil(), 2, false).
			Return([]models.EncryptedMessage{m1, m2}, nil)
		f.repo.EXPECT().GetOwnReceipts(gomock.Any(), []uuid.UUID{m1.ID, m2.ID}, userID).
			Return(map[uuid.UUID]models.MessageReceipt{
				m1.ID: {MessageID: m1.ID, UserID: userID, DeliveredAt: &deliveredAt},
			}, nil)

		page, err := f.uc.GetMessages(context.Background(), conversationID, userID, "", 2, false)
		require.NoError(t, err)
		require.Len(t, page.Messages, 2)
		assert.NotNil(t, page.Messages[0].DeliveredAt)
		assert.Nil(t, page.Messages[1].DeliveredAt)
		require.NotEmpty(t, page.NextCursor)

		cursor, err := relay.DecodeCursor(page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, m2.ID, cursor.ID)
	})

	t.Run("tombstones withhold ciphertext", func(t *testing.T) {
		f := newRelayFixture(t)

		deletedAt := time.Now()
		deleted := models.EncryptedMessage{
			ID:             uuid.New(),
			ConversationID: conversationID,
			Ciphertext:     []byte("secret"),
			Nonce:          []byte("nonce"),
			DeletedAt:      &deletedAt,
		}

		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, userID).Return(true, nil)
		f.repo.EXPECT().ListMessages(gomock.Any(), conversationID, gomock.Nil(), 50, true).
			Return([]models.EncryptedMessage{deleted}, nil)
		f.repo.EXPECT().GetOwnReceipts(gomock.Any(), gomock.Any(), userID).
			Return(map[uuid.UUID]models.MessageReceipt{}, nil)

		page, err := f.uc.GetMessages(context.Background(), conversationID, userID, "", 0, true)
		require.NoError(t, err)
		require.Len(t, page.Messages, 1)
		assert.Nil(t, page.Messages[0].Ciphertext)
		assert.Nil(t, page.Messages[0].Nonce)
		assert.NotNil(t, page.Messages[0].DeletedAt)
	})

	t.Run("non-participant denied", func(t *testing.T) {
		f := newRelayFixture(t)
		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, userID).Return(false, nil)

		_, err := f.uc.GetMessages(context.Background(), conversationID, userID, "", 10, false)
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("malformed cursor rejected", func(t *testing.T) {
		f := newRelayFixture(t)
		f.repo.EXPECT().IsParticipant(gomock.Any(), conversationID, userID).Return(true, nil)

		_, err := f.uc.GetMessages(context.Background(), conversationID, userID, "not-a-cursor", 10, false)
		require.Error(t, err)
	})
}

func TestMessageRelayUsecase_Receipts(t *testing.T) {
	messageID := uuid.New()
	userID := uuid.New()
	conversationID := uuid.New()

	t.Run("read receipt publishes counts", func(t *testing.T) {
		f := newRelayFixture(t)

		f.repo.EXPECT().MarkReceiptRead(gomock.Any(), messageID, userID, "device-1").
			Return(&relay.ReceiptCounts{DeliveredCount: 2, ReadCount: 1}, true, nil)
		f.repo.EXPECT().GetMessage(gomock.Any(), messageID).
			Return(&models.EncryptedMessage{ID: messageID, ConversationID: conversationID}, nil)
		f.publisher.EXPECT().
			ReceiptUpdated(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event relay.ReceiptUpdatedEvent) error {
				assert.Equal(t, "read", event.Kind)
				assert.Equal(t, 2, event.DeliveredCount)
				assert.Equal(t, 1, event.ReadCount)
				return nil
			})

		require.NoError(t, f.uc.MarkRead(context.Background(), messageID, userID, "device-1"))
	})

	t.Run("replayed acknowledgement is silent", func(t *testing.T) {
		f := newRelayFixture(t)

		f.repo.EXPECT().MarkReceiptDelivered(gomock.Any(), messageID, userID, "device-1").
			Return(&relay.ReceiptCounts{DeliveredCount: 1}, false, nil)

		require.NoError(t, f.uc.MarkDelivered(context.Background(), messageID, userID, "device-1"))
	})

	t.Run("sender has no receipt row", func(t *testing.T) {
		f := newRelayFixture(t)

		f.repo.EXPECT().MarkReceiptRead(gomock.Any(), messageID, userID, "device-1").
			Return(nil, false, repository.ErrReceiptNotFound)

		err := f.uc.MarkRead(context.Background(), messageID, userID, "device-1")
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})
}

func TestMessageRelayUsecase_DeleteMessage(t *testing.T) {
	messageID := uuid.New()
	userID := uuid.New()

	t.Run("author deletes", func(t *testing.T) {
		f := newRelayFixture(t)
		f.repo.EXPECT().SoftDeleteMessage(gomock.Any(), messageID, userID).Return(nil)
		require.NoError(t, f.uc.DeleteMessage(context.Background(), messageID, userID))
	})

	t.Run("non-author gets the same not-found as a missing message", func(t *testing.T) {
		f := newRelayFixture(t)
		f.repo.EXPECT().SoftDeleteMessage(gomock.Any(), messageID, userID).Return(repository.ErrMessageNotFound)

		err := f.uc.DeleteMessage(context.Background(), messageID, userID)
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})
}

func TestMessageRelayUsecase_Upgrade(t *testing.T) {
	conversationID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	t.Run("missing keys listed", func(t *testing.T) {
		f := newRelayFixture(t)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{userA, userB}, nil)
		f.keys.EXPECT().HasRegisteredKeys(gomock.Any(), userA).Return(true, nil)
		f.keys.EXPECT().HasRegisteredKeys(gomock.Any(), userB).Return(false, nil)

		check, err := f.uc.CanUpgradeToE2EE(context.Background(), conversationID)
		require.NoError(t, err)
		assert.False(t, check.CanUpgrade)
		assert.Equal(t, []uuid.UUID{userB}, check.MissingKeys)
	})

	t.Run("upgrade requires everyone registered", func(t *testing.T) {
		f := newRelayFixture(t)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{userA, userB}, nil)
		f.keys.EXPECT().HasRegisteredKeys(gomock.Any(), userA).Return(true, nil)
		f.keys.EXPECT().HasRegisteredKeys(gomock.Any(), userB).Return(false, nil)

		err := f.uc.UpgradeConversationToE2EE(context.Background(), conversationID)
		require.Error(t, err)

		var appErr *appErrors.AppError
		require.True(t, appErrors.As(err, &appErr))
		assert.Equal(t, appErrors.CodeFailedPrecondition, appErr.Code)
	})

	t.Run("happy path publishes the upgrade", func(t *testing.T) {
		f := newRelayFixture(t)
		f.repo.EXPECT().ListParticipants(gomock.Any(), conversationID).Return([]uuid.UUID{userA, userB}, nil)
		f.keys.EXPECT().HasRegisteredKeys(gomock.Any(), userA).Return(true, nil)
		f.keys.EXPECT().HasRegisteredKeys(gomock.Any(), userB).Return(true, nil)
		f.repo.EXPECT().UpgradeConversation(gomock.Any(), conversationID, 1).Return(nil)
		f.publisher.EXPECT().ConversationUpgraded(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.uc.UpgradeConversationToE2EE(context.Background(), conversationID))
	})
}

func TestMessageRelayUsecase_CreateConversation(t *testing.T) {
	creatorID := uuid.New()
	otherID := uuid.New()

	t.Run("participants deduplicated", func(t *testing.T) {
		f := newRelayFixture(t)
		f.gate.EXPECT().CanMessageUser(gomock.Any(), creatorID, otherID).Return(allow(), nil)
		f.repo.EXPECT().
			CreateConversation(gomock.Any(), false, 0, []uuid.UUID{creatorID, otherID}).
			Return(&models.Conversation{ID: uuid.New()}, nil)

		id, err := f.uc.CreateConversation(context.Background(), creatorID, []uuid.UUID{otherID, otherID, creatorID})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("solo conversation rejected", func(t *testing.T) {
		f := newRelayFixture(t)
		_, err := f.uc.CreateConversation(context.Background(), creatorID, nil)
		require.Error(t, err)
	})
}
