package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MuscleMap-ME/musclemap-messaging/config"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/keys"
	models "github.com/MuscleMap-ME/musclemap-messaging/internal/keys/model"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/keys/repository"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/metrics"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/crypto"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

type KeyDirectoryUsecase struct {
	repo     keys.KeyRepository
	sessions keys.SessionRemover
	logger   *logger.Logger
	config   *config.Config
}

func NewKeyDirectoryUsecase(repo keys.KeyRepository, sessions keys.SessionRemover, logger *logger.Logger, config *config.Config) *KeyDirectoryUsecase {
	return &KeyDirectoryUsecase{repo: repo, sessions: sessions, logger: logger, config: config}
}

func (uc *KeyDirectoryUsecase) RegisterKeys(ctx context.Context, cmd keys.RegisterKeysCommand) error {
	if cmd.UserID == uuid.Nil || cmd.DeviceID == "" {
		return errors.ErrInvalidKeyBundle
	}

	identityPub, err := crypto.DecodeKey(cmd.IdentityKeyPublic)
	if err != nil {
		return errors.ErrInvalidKeyBundle
	}
	signedPreKeyPub, err := crypto.DecodeKey(cmd.SignedPreKeyPublic)
	if err != nil {
		return errors.ErrInvalidKeyBundle
	}
	signature, err := crypto.DecodeSignature(cmd.SignedPreKeySignature)
	if err != nil {
		return errors.ErrInvalidKeyBundle
	}

	if !crypto.VerifySignedPreKeySignature(signedPreKeyPub, signature, identityPub) {
		uc.logger.Warn("signed prekey signature rejected",
			"user_id", cmd.UserID, "device_id", cmd.DeviceID)
		return errors.ErrInvalidSignature
	}

	otpks, err := uc.decodePreKeyUploads(cmd.UserID, cmd.DeviceID, cmd.OneTimePreKeys)
	if err != nil {
		return err
	}

	now := time.Now()
	bundle := &models.DeviceKeyBundle{
		UserID:                 cmd.UserID,
		DeviceID:               cmd.DeviceID,
		IdentityKeyPublic:      identityPub,
		IdentityKeyFingerprint: crypto.Fingerprint(identityPub),
		SignedPreKeyPublic:     signedPreKeyPub,
		SignedPreKeySignature:  signature,
		SignedPreKeyID:         cmd.SignedPreKeyID,
		SignedPreKeyCreatedAt:  now,
		LastActiveAt:           now,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	// Concurrent registrations for the same device serialize last-write-wins
	// through the upsert; a unique collision is "already applied".
	if err := uc.repo.UpsertBundle(ctx, bundle); err != nil {
		uc.logger.Error("failed to upsert key bundle", "err", err, "user_id", cmd.UserID)
		return errors.Internal("failed to register keys")
	}

	if len(otpks) > 0 {
		if _, err := uc.storePreKeys(ctx, cmd.UserID, cmd.DeviceID, otpks); err != nil {
			return err
		}
	}

	if err := uc.repo.SetAccountE2EE(ctx, cmd.UserID, true); err != nil {
		uc.logger.Error("failed to mark account e2ee-capable", "err", err, "user_id", cmd.UserID)
		return errors.Internal("failed to register keys")
	}

	uc.logger.Info("device keys registered",
		"user_id", cmd.UserID,
		"device_id", cmd.DeviceID,
		"fingerprint", crypto.ShortFingerprint(bundle.IdentityKeyFingerprint),
		"one_time_prekeys", len(otpks))
	return nil
}

func (uc *KeyDirectoryUsecase) UploadOneTimePreKeys(ctx context.Context, userID uuid.UUID, deviceID string, uploads []keys.OneTimePreKeyUpload) (int, error) {
	if _, err := uc.repo.GetBundle(ctx, userID, deviceID); err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return 0, errors.ErrDeviceNotFound
		}
		uc.logger.Error("failed to load bundle for prekey upload", "err", err, "user_id", userID)
		return 0, errors.Internal("failed to upload prekeys")
	}

	otpks, err := uc.decodePreKeyUploads(userID, deviceID, uploads)
	if err != nil {
		return 0, err
	}
	return uc.storePreKeys(ctx, userID, deviceID, otpks)
}

// storePreKeys caps the unused pool; overflow is silently truncated so a
// partial upload is safe.
func (uc *KeyDirectoryUsecase) storePreKeys(ctx context.Context, userID uuid.UUID, deviceID string, otpks []models.OneTimePreKey) (int, error) {
	unused, err := uc.repo.CountUnusedOneTimePreKeys(ctx, userID, deviceID)
	if err != nil {
		uc.logger.Error("failed to count unused prekeys", "err", err, "user_id", userID)
		return 0, errors.Internal("failed to upload prekeys")
	}

	room := uc.config.Messaging.MaxOneTimePreKeys - unused
	if room <= 0 {
		return 0, nil
	}
	if len(otpks) > room {
		otpks = otpks[:room]
	}

	if err := uc.repo.InsertOneTimePreKeys(ctx, otpks); err != nil {
		uc.logger.Error("failed to insert prekeys", "err", err, "user_id", userID)
		return 0, errors.Internal("failed to upload prekeys")
	}
	return len(otpks), nil
}

func (uc *KeyDirectoryUsecase) decodePreKeyUploads(userID uuid.UUID, deviceID string, uploads []keys.OneTimePreKeyUpload) ([]models.OneTimePreKey, error) {
	otpks := make([]models.OneTimePreKey, 0, len(uploads))
	seen := make(map[uint32]bool, len(uploads))
	now := time.Now()
	for _, k := range uploads {
		if seen[k.KeyID] {
			return nil, errors.ErrInvalidKeyBundle
		}
		seen[k.KeyID] = true

		pub, err := crypto.DecodeKey(k.PublicKey)
		if err != nil {
			return nil, errors.ErrMalformedKey
		}
		otpks = append(otpks, models.OneTimePreKey{
			UserID:     userID,
			DeviceID:   deviceID,
			KeyID:      k.KeyID,
			PublicKey:  pub,
			UploadedAt: now,
		})
	}
	return otpks, nil
}

func (uc *KeyDirectoryUsecase) GetKeyBundle(ctx context.Context, requesterID, targetUserID uuid.UUID) (*keys.KeyBundleDTO, error) {
	bundle, err := uc.repo.GetMostRecentBundle(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load key bundle", "err", err, "target", targetUserID)
		return nil, errors.Internal("failed to fetch key bundle")
	}

	dto := &keys.KeyBundleDTO{
		UserID:                 bundle.UserID,
		DeviceID:               bundle.DeviceID,
		IdentityKey:            bundle.IdentityKeyPublic,
		IdentityKeyFingerprint: bundle.IdentityKeyFingerprint,
		SignedPreKeyID:         bundle.SignedPreKeyID,
		SignedPreKey:           bundle.SignedPreKeyPublic,
		SignedPreKeySignature:  bundle.SignedPreKeySignature,
	}

	otpk, err := uc.repo.ClaimOneTimePreKey(ctx, targetUserID, bundle.DeviceID, requesterID)
	switch {
	case err == nil:
		dto.OneTimePreKeyID = &otpk.KeyID
		dto.OneTimePreKey = otpk.PublicKey
		metrics.PreKeysClaimed.Inc()
	case errors.Is(err, repository.ErrNoPreKeysAvailable):
		metrics.PreKeyPoolEmpty.Inc()
		if uc.config.Messaging.RequireOneTimePreKey {
			return nil, errors.ErrNoOneTimePreKeys
		}
		// Exchange degrades to signed-prekey-only: weaker forward secrecy on
		// this first message, but first contact stays available.
		uc.logger.Warn("one-time prekey pool exhausted, degrading exchange",
			"target", targetUserID, "device_id", bundle.DeviceID)
	default:
		uc.logger.Error("failed to claim one-time prekey", "err", err, "target", targetUserID)
		return nil, errors.Internal("failed to fetch key bundle")
	}

	remaining, err := uc.repo.CountUnusedOneTimePreKeys(ctx, targetUserID, bundle.DeviceID)
	if err != nil {
		uc.logger.Error("failed to count remaining prekeys", "err", err, "target", targetUserID)
		return nil, errors.Internal("failed to fetch key bundle")
	}
	dto.RemainingOneTimePreKeys = remaining

	if remaining < uc.config.Messaging.LowPreKeyWatermark {
		uc.logger.Warn("one-time prekey pool low",
			"target", targetUserID, "device_id", bundle.DeviceID, "remaining", remaining)
	}
	return dto, nil
}

func (uc *KeyDirectoryUsecase) RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	remaining, err := uc.repo.DeleteDevice(ctx, userID, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return errors.ErrDeviceNotFound
		}
		uc.logger.Error("failed to delete device", "err", err, "user_id", userID, "device_id", deviceID)
		return errors.Internal("failed to remove device")
	}

	if err := uc.sessions.DeleteDeviceSessions(ctx, userID, deviceID); err != nil {
		uc.logger.Error("failed to cascade device sessions", "err", err, "user_id", userID, "device_id", deviceID)
		return errors.Internal("failed to remove device")
	}

	if remaining == 0 {
		if err := uc.repo.SetAccountE2EE(ctx, userID, false); err != nil {
			uc.logger.Error("failed to clear account e2ee flag", "err", err, "user_id", userID)
			return errors.Internal("failed to remove device")
		}
	}

	uc.logger.Info("device removed", "user_id", userID, "device_id", deviceID, "remaining_devices", remaining)
	return nil
}

// VerifyKeyFingerprint compares in constant time. An unknown device reports
// false rather than an error so callers cannot probe for existence.
func (uc *KeyDirectoryUsecase) VerifyKeyFingerprint(ctx context.Context, userID uuid.UUID, deviceID, fingerprint string) (bool, error) {
	bundle, err := uc.repo.GetBundle(ctx, userID, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return false, nil
		}
		uc.logger.Error("failed to load bundle for fingerprint check", "err", err, "user_id", userID)
		return false, errors.Internal("failed to verify fingerprint")
	}
	return crypto.FingerprintEqual(bundle.IdentityKeyFingerprint, fingerprint), nil
}

func (uc *KeyDirectoryUsecase) HasRegisteredKeys(ctx context.Context, userID uuid.UUID) (bool, error) {
	count, err := uc.repo.CountDevices(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to count devices", "err", err, "user_id", userID)
		return false, errors.Internal("failed to check registered keys")
	}
	return count > 0, nil
}

func (uc *KeyDirectoryUsecase) ListDeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	ids, err := uc.repo.ListDeviceIDs(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list devices", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to list devices")
	}
	return ids, nil
}

// RunMaintenance flags stale signed prekeys for rotation (not forced), purges
// used one-time prekeys past retention, and removes long-inactive devices.
// All three only touch rows already past their safety window, so the sweep is
// safe concurrently with live traffic.
func (uc *KeyDirectoryUsecase) RunMaintenance(ctx context.Context, now time.Time) error {
	stale, err := uc.repo.ListStaleSignedPreKeys(ctx, now.Add(-uc.config.Messaging.SignedPreKeyMaxAge))
	if err != nil {
		uc.logger.Error("maintenance: stale signed prekey scan failed", "err", err)
		return errors.Internal("maintenance failed")
	}
	for _, b := range stale {
		uc.logger.Warn("signed prekey due for rotation",
			"user_id", b.UserID, "device_id", b.DeviceID,
			"age", now.Sub(b.SignedPreKeyCreatedAt).String())
	}

	purged, err := uc.repo.PurgeUsedOneTimePreKeys(ctx, now.Add(-uc.config.Messaging.UsedPreKeyRetention))
	if err != nil {
		uc.logger.Error("maintenance: used prekey purge failed", "err", err)
		return errors.Internal("maintenance failed")
	}
	if purged > 0 {
		metrics.SweepDeleted.WithLabelValues("used_prekeys").Add(float64(purged))
		uc.logger.Info("purged used one-time prekeys", "count", purged)
	}

	inactive, err := uc.repo.ListInactiveDevices(ctx, now.Add(-uc.config.Messaging.DeviceRetention))
	if err != nil {
		uc.logger.Error("maintenance: inactive device scan failed", "err", err)
		return errors.Internal("maintenance failed")
	}
	for _, b := range inactive {
		if err := uc.RemoveDevice(ctx, b.UserID, b.DeviceID); err != nil {
			uc.logger.Error("maintenance: inactive device removal failed",
				"err", err, "user_id", b.UserID, "device_id", b.DeviceID)
			continue
		}
		metrics.SweepDeleted.WithLabelValues("inactive_devices").Inc()
	}
	return nil
}
