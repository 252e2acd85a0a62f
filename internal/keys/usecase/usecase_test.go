package usecase

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuscleMap-ME/musclemap-messaging/config"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/keys"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/keys/mocks"
	models "github.com/MuscleMap-ME/musclemap-messaging/internal/keys/model"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/keys/repository"
	appErrors "github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Messaging.ProtocolVersion = 1
	cfg.Messaging.MaxOneTimePreKeys = 100
	cfg.Messaging.LowPreKeyWatermark = 20
	return cfg
}

func signedBundleCommand(t *testing.T, userID uuid.UUID) keys.RegisterKeysCommand {
	t.Helper()

	identityPub, identityPriv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	signedPreKey := make([]byte, 32)
	for i := range signedPreKey {
		signedPreKey[i] = byte(i + 1)
	}
	sig := ed25519.Sign(identityPriv, signedPreKey)

	return keys.RegisterKeysCommand{
		UserID:                userID,
		DeviceID:              "device-1",
		IdentityKeyPublic:     base64.StdEncoding.EncodeToString(identityPub),
		SignedPreKeyPublic:    base64.StdEncoding.EncodeToString(signedPreKey),
		SignedPreKeySignature: base64.StdEncoding.EncodeToString(sig),
		SignedPreKeyID:        7,
	}
}

func TestKeyDirectoryUsecase_RegisterKeys(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path - bundle upserted and account flagged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		mockSessions := mocks.NewMockSessionRemover(ctrl)

		uc := NewKeyDirectoryUsecase(mockRepo, mockSessions, logger.NewNop(), testConfig())

		cmd := signedBundleCommand(t, userID)

		mockRepo.EXPECT().
			UpsertBundle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, bundle *models.DeviceKeyBundle) error {
				assert.Equal(t, userID, bundle.UserID)
				assert.Equal(t, "device-1", bundle.DeviceID)
				assert.Len(t, bundle.IdentityKeyFingerprint, 64)
				assert.Equal(t, uint32(7), bundle.SignedPreKeyID)
				return nil
			})
		mockRepo.EXPECT().SetAccountE2EE(gomock.Any(), userID, true).Return(nil)

		err := uc.RegisterKeys(context.Background(), cmd)
		require.NoError(t, err)
	})

	t.Run("initial prekeys are seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		cmd := signedBundleCommand(t, userID)
		otpk := make([]byte, 32)
		cmd.OneTimePreKeys = []keys.OneTimePreKeyUpload{
			{KeyID: 1, PublicKey: base64.StdEncoding.EncodeToString(otpk)},
			{KeyID: 2, PublicKey: base64.StdEncoding.EncodeToString(otpk)},
		}

		mockRepo.EXPECT().UpsertBundle(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().CountUnusedOneTimePreKeys(gomock.Any(), userID, "device-1").Return(0, nil)
		mockRepo.EXPECT().
			InsertOneTimePreKeys(gomock.Any(), gomock.Len(2)).
			Return(nil)
		mockRepo.EXPECT().SetAccountE2EE(gomock.Any(), userID, true).Return(nil)

		err := uc.RegisterKeys(context.Background(), cmd)
		require.NoError(t, err)
	})

	t.Run("sad path - forged signature rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		cmd := signedBundleCommand(t, userID)
		sig, err := base64.StdEncoding.DecodeString(cmd.SignedPreKeySignature)
		require.NoError(t, err)
		sig[0] ^= 0x01
		cmd.SignedPreKeySignature = base64.StdEncoding.EncodeToString(sig)

		err = uc.RegisterKeys(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrInvalidSignature)
	})

	t.Run("sad path - truncated identity key rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewKeyDirectoryUsecase(mocks.NewMockKeyRepository(ctrl), mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		cmd := signedBundleCommand(t, userID)
		cmd.IdentityKeyPublic = base64.StdEncoding.EncodeToString(make([]byte, 31))

		err := uc.RegisterKeys(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrInvalidKeyBundle)
	})

	t.Run("sad path - duplicate prekey ids rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewKeyDirectoryUsecase(mocks.NewMockKeyRepository(ctrl), mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		cmd := signedBundleCommand(t, userID)
		otpk := base64.StdEncoding.EncodeToString(make([]byte, 32))
		cmd.OneTimePreKeys = []keys.OneTimePreKeyUpload{
			{KeyID: 1, PublicKey: otpk},
			{KeyID: 1, PublicKey: otpk},
		}

		err := uc.RegisterKeys(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrInvalidKeyBundle)
	})
}

func TestKeyDirectoryUsecase_UploadOneTimePreKeys(t *testing.T) {
	userID := uuid.New()
	otpk := base64.StdEncoding.EncodeToString(make([]byte, 32))

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetBundle(gomock.Any(), userID, "device-1").Return(&models.DeviceKeyBundle{}, nil)
		mockRepo.EXPECT().CountUnusedOneTimePreKeys(gomock.Any(), userID, "device-1").Return(10, nil)
		mockRepo.EXPECT().InsertOneTimePreKeys(gomock.Any(), gomock.Len(3)).Return(nil)

		accepted, err := uc.UploadOneTimePreKeys(context.Background(), userID, "device-1", []keys.OneTimePreKeyUpload{
			{KeyID: 11, PublicKey: otpk},
			{KeyID: 12, PublicKey: otpk},
			{KeyID: 13, PublicKey: otpk},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, accepted)
	})

	t.Run("overflow is truncated to the cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetBundle(gomock.Any(), userID, "device-1").Return(&models.DeviceKeyBundle{}, nil)
		mockRepo.EXPECT().CountUnusedOneTimePreKeys(gomock.Any(), userID, "device-1").Return(98, nil)
		mockRepo.EXPECT().InsertOneTimePreKeys(gomock.Any(), gomock.Len(2)).Return(nil)

		accepted, err := uc.UploadOneTimePreKeys(context.Background(), userID, "device-1", []keys.OneTimePreKeyUpload{
			{KeyID: 1, PublicKey: otpk},
			{KeyID: 2, PublicKey: otpk},
			{KeyID: 3, PublicKey: otpk},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, accepted)
	})

	t.Run("full pool accepts nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetBundle(gomock.Any(), userID, "device-1").Return(&models.DeviceKeyBundle{}, nil)
		mockRepo.EXPECT().CountUnusedOneTimePreKeys(gomock.Any(), userID, "device-1").Return(100, nil)

		accepted, err := uc.UploadOneTimePreKeys(context.Background(), userID, "device-1", []keys.OneTimePreKeyUpload{
			{KeyID: 1, PublicKey: otpk},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, accepted)
	})

	t.Run("sad path - unknown device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetBundle(gomock.Any(), userID, "ghost").Return(nil, repository.ErrBundleNotFound)

		_, err := uc.UploadOneTimePreKeys(context.Background(), userID, "ghost", nil)
		assert.ErrorIs(t, err, appErrors.ErrDeviceNotFound)
	})
}

func TestKeyDirectoryUsecase_GetKeyBundle(t *testing.T) {
	requesterID := uuid.New()
	targetID := uuid.New()

	storedBundle := &models.DeviceKeyBundle{
		UserID:                 targetID,
		DeviceID:               "device-1",
		IdentityKeyPublic:      make([]byte, 32),
		IdentityKeyFingerprint: "fp",
		SignedPreKeyID:         3,
	}

	t.Run("happy path - one-time prekey consumed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		claimed := &models.OneTimePreKey{KeyID: 42, PublicKey: make([]byte, 32), Used: true}

		mockRepo.EXPECT().GetMostRecentBundle(gomock.Any(), targetID).Return(storedBundle, nil)
		mockRepo.EXPECT().ClaimOneTimePreKey(gomock.Any(), targetID, "device-1", requesterID).Return(claimed, nil)
		mockRepo.EXPECT().CountUnusedOneTimePreKeys(gomock.Any(), targetID, "device-1").Return(57, nil)

		dto, err := uc.GetKeyBundle(context.Background(), requesterID, targetID)
		require.NoError(t, err)
		require.NotNil(t, dto.OneTimePreKeyID)
		assert.Equal(t, uint32(42), *dto.OneTimePreKeyID)
		assert.Equal(t, 57, dto.RemainingOneTimePreKeys)
	})

	t.Run("empty pool degrades to signed-prekey-only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetMostRecentBundle(gomock.Any(), targetID).Return(storedBundle, nil)
		mockRepo.EXPECT().ClaimOneTimePreKey(gomock.Any(), targetID, "device-1", requesterID).Return(nil, repository.ErrNoPreKeysAvailable)
		mockRepo.EXPECT().CountUnusedOneTimePreKeys(gomock.Any(), targetID, "device-1").Return(0, nil)

		dto, err := uc.GetKeyBundle(context.Background(), requesterID, targetID)
		require.NoError(t, err)
		assert.Nil(t, dto.OneTimePreKeyID)
		assert.Nil(t, dto.OneTimePreKey)
		assert.Equal(t, 0, dto.RemainingOneTimePreKeys)
	})

	t.Run("empty pool is a hard failure when required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		cfg := testConfig()
		cfg.Messaging.RequireOneTimePreKey = true
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), cfg)

		mockRepo.EXPECT().GetMostRecentBundle(gomock.Any(), targetID).Return(storedBundle, nil)
		mockRepo.EXPECT().ClaimOneTimePreKey(gomock.Any(), targetID, "device-1", requesterID).Return(nil, repository.ErrNoPreKeysAvailable)

		_, err := uc.GetKeyBundle(context.Background(), requesterID, targetID)
		assert.ErrorIs(t, err, appErrors.ErrNoOneTimePreKeys)
	})

	t.Run("sad path - target never registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetMostRecentBundle(gomock.Any(), targetID).Return(nil, repository.ErrBundleNotFound)

		_, err := uc.GetKeyBundle(context.Background(), requesterID, targetID)
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})
}

func TestKeyDirectoryUsecase_RemoveDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("sessions cascade, flag survives while devices remain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		mockSessions := mocks.NewMockSessionRemover(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mockSessions, logger.NewNop(), testConfig())

		mockRepo.EXPECT().DeleteDevice(gomock.Any(), userID, "device-1").Return(1, nil)
		mockSessions.EXPECT().DeleteDeviceSessions(gomock.Any(), userID, "device-1").Return(nil)

		err := uc.RemoveDevice(context.Background(), userID, "device-1")
		require.NoError(t, err)
	})

	t.Run("last device clears the account flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		mockSessions := mocks.NewMockSessionRemover(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mockSessions, logger.NewNop(), testConfig())

		mockRepo.EXPECT().DeleteDevice(gomock.Any(), userID, "device-1").Return(0, nil)
		mockSessions.EXPECT().DeleteDeviceSessions(gomock.Any(), userID, "device-1").Return(nil)
		mockRepo.EXPECT().SetAccountE2EE(gomock.Any(), userID, false).Return(nil)

		err := uc.RemoveDevice(context.Background(), userID, "device-1")
		require.NoError(t, err)
	})

	t.Run("sad path - unknown device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().DeleteDevice(gomock.Any(), userID, "ghost").Return(0, repository.ErrBundleNotFound)

		err := uc.RemoveDevice(context.Background(), userID, "ghost")
		assert.ErrorIs(t, err, appErrors.ErrDeviceNotFound)
	})
}

func TestKeyDirectoryUsecase_VerifyKeyFingerprint(t *testing.T) {
	userID := uuid.New()

	t.Run("matching fingerprint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetBundle(gomock.Any(), userID, "device-1").
			Return(&models.DeviceKeyBundle{IdentityKeyFingerprint: "abc123"}, nil)

		ok, err := uc.VerifyKeyFingerprint(context.Background(), userID, "device-1", "abc123")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetBundle(gomock.Any(), userID, "device-1").
			Return(&models.DeviceKeyBundle{IdentityKeyFingerprint: "abc123"}, nil)

		ok, err := uc.VerifyKeyFingerprint(context.Background(), userID, "device-1", "def456")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown device reports false, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockKeyRepository(ctrl)
		uc := NewKeyDirectoryUsecase(mockRepo, mocks.NewMockSessionRemover(ctrl), logger.NewNop(), testConfig())

		mockRepo.EXPECT().GetBundle(gomock.Any(), userID, "ghost").Return(nil, repository.ErrBundleNotFound)

		ok, err := uc.VerifyKeyFingerprint(context.Background(), userID, "ghost", "abc123")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
