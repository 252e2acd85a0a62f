package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/MuscleMap-ME/musclemap-messaging/internal/keys/model"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

var (
	ErrNoPreKeysAvailable = errors.New("no one-time prekeys available")
	ErrBundleNotFound     = errors.New("key bundle not found")
)

type KeyRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewKeyRepository(db *bun.DB, logger *logger.Logger) *KeyRepository {
	return &KeyRepository{db: db, logger: logger}
}

func (r *KeyRepository) UpsertBundle(ctx context.Context, bundle *models.DeviceKeyBundle) error {
	_, err := r.db.NewInsert().
		Model(bundle).
		On("CONFLICT (user_id, device_id) DO UPDATE").
		Set("identity_key_public = EXCLUDED.identity_key_public").
		Set("identity_key_fingerprint = EXCLUDED.identity_key_fingerprint").
		Set("signed_pre_key_public = EXCLUDED.signed_pre_key_public").
		Set("signed_pre_key_signature = EXCLUDED.signed_pre_key_signature").
		Set("signed_pre_key_id = EXCLUDED.signed_pre_key_id").
		Set("signed_pre_key_created_at = EXCLUDED.signed_pre_key_created_at").
		Set("last_active_at = EXCLUDED.last_active_at").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "keyRepo.UpsertBundle.Exec")
	}
	return nil
}

func (r *KeyRepository) GetBundle(ctx context.Context, userID uuid.UUID, deviceID string) (*models.DeviceKeyBundle, error) {
	bundle := new(models.DeviceKeyBundle)
	err := r.db.NewSelect().
		Model(bundle).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBundleNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetBundle.Scan")
	}
	return bundle, nil
}

func (r *KeyRepository) GetMostRecentBundle(ctx context.Context, userID uuid.UUID) (*models.DeviceKeyBundle, error) {
	bundle := new(models.DeviceKeyBundle)
	err := r.db.NewSelect().
		Model(bundle).
		Where("user_id = ?", userID).
		Order("last_active_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBundleNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetMostRecentBundle.Scan")
	}
	return bundle, nil
}

func (r *KeyRepository) ListDeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var deviceIDs []string
	err := r.db.NewSelect().
		Model((*models.DeviceKeyBundle)(nil)).
		Column("device_id").
		Where("user_id = ?", userID).
		Order("last_active_at DESC").
		Scan(ctx, &deviceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "keyRepo.ListDeviceIDs.Scan")
	}
	return deviceIDs, nil
}

func (r *KeyRepository) CountDevices(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.DeviceKeyBundle)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "keyRepo.CountDevices.Count")
	}
	return count, nil
}

func (r *KeyRepository) TouchDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.DeviceKeyBundle)(nil)).
		Set("last_active_at = ?", time.Now()).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "keyRepo.TouchDevice.Exec")
	}
	return nil
}

// InsertOneTimePreKeys upserts on (user_id, device_id, key_id). A conflict is
// an explicit replacement: the key is un-marked used.
func (r *KeyRepository) InsertOneTimePreKeys(ctx context.Context, keys []models.OneTimePreKey) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := r.db.NewInsert().
		Model(&keys).
		On("CONFLICT (user_id, device_id, key_id) DO UPDATE").
		Set("public_key = EXCLUDED.public_key").
		Set("used = FALSE").
		Set("used_at = NULL").
		Set("used_by_user_id = NULL").
		Set("uploaded_at = EXCLUDED.uploaded_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "keyRepo.InsertOneTimePreKeys.Exec")
	}
	return nil
}

func (r *KeyRepository) CountUnusedOneTimePreKeys(ctx context.Context, userID uuid.UUID, deviceID string) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.OneTimePreKey)(nil)).
		Where("user_id = ? AND device_id = ? AND used = FALSE", userID, deviceID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "keyRepo.CountUnusedOneTimePreKeys.Count")
	}
	return count, nil
}

// ClaimOneTimePreKey selects the lowest unused key id FOR UPDATE SKIP LOCKED
// and marks it used inside one transaction. Rows being claimed by a concurrent
// transaction are skipped, so two senders can never receive the same key.
func (r *KeyRepository) ClaimOneTimePreKey(ctx context.Context, userID uuid.UUID, deviceID string, claimedBy uuid.UUID) (*models.OneTimePreKey, error) {
	key := new(models.OneTimePreKey)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(key).
			Where("user_id = ? AND device_id = ? AND used = FALSE", userID, deviceID).
			Order("key_id ASC").
			Limit(1).
			For("UPDATE SKIP LOCKED").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoPreKeysAvailable
			}
			return errors.Wrap(err, "keyRepo.ClaimOneTimePreKey.Select")
		}

		now := time.Now()
		_, err = tx.NewUpdate().
			Model(key).
			Set("used = TRUE").
			Set("used_at = ?", now).
			Set("used_by_user_id = ?", claimedBy).
			WherePK().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.ClaimOneTimePreKey.Update")
		}

		key.Used = true
		key.UsedAt = &now
		key.UsedByUserID = &claimedBy
		return nil
	})
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (r *KeyRepository) DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) (int, error) {
	var remaining int

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.DeviceKeyBundle)(nil)).
			Where("user_id = ? AND device_id = ?", userID, deviceID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.DeleteDevice.DeleteBundle")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrBundleNotFound
		}

		_, err = tx.NewDelete().
			Model((*models.OneTimePreKey)(nil)).
			Where("user_id = ? AND device_id = ?", userID, deviceID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.DeleteDevice.DeletePreKeys")
		}

		remaining, err = tx.NewSelect().
			Model((*models.DeviceKeyBundle)(nil)).
			Where("user_id = ?", userID).
			Count(ctx)
		if err != nil {
			return errors.Wrap(err, "keyRepo.DeleteDevice.CountRemaining")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *KeyRepository) SetAccountE2EE(ctx context.Context, userID uuid.UUID, capable bool) error {
	state := &models.AccountEncryptionState{
		UserID:      userID,
		E2EECapable: capable,
		UpdatedAt:   time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(state).
		On("CONFLICT (user_id) DO UPDATE").
		Set("e2ee_capable = EXCLUDED.e2ee_capable").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "keyRepo.SetAccountE2EE.Exec")
	}
	return nil
}

func (r *KeyRepository) GetAccountE2EE(ctx context.Context, userID uuid.UUID) (bool, error) {
	state := new(models.AccountEncryptionState)
	err := r.db.NewSelect().Model(state).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrap(err, "keyRepo.GetAccountE2EE.Scan")
	}
	return state.E2EECapable, nil
}

func (r *KeyRepository) ListStaleSignedPreKeys(ctx context.Context, createdBefore time.Time) ([]models.DeviceKeyBundle, error) {
	var bundles []models.DeviceKeyBundle
	err := r.db.NewSelect().
		Model(&bundles).
		Where("signed_pre_key_created_at < ?", createdBefore).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "keyRepo.ListStaleSignedPreKeys.Scan")
	}
	return bundles, nil
}

func (r *KeyRepository) PurgeUsedOneTimePreKeys(ctx context.Context, usedBefore time.Time) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*models.OneTimePreKey)(nil)).
		Where("used = TRUE AND used_at < ?", usedBefore).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "keyRepo.PurgeUsedOneTimePreKeys.Exec")
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *KeyRepository) ListInactiveDevices(ctx context.Context, inactiveSince time.Time) ([]models.DeviceKeyBundle, error) {
	var bundles []models.DeviceKeyBundle
	err := r.db.NewSelect().
		Model(&bundles).
		Where("last_active_at < ?", inactiveSince).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "keyRepo.ListInactiveDevices.Scan")
	}
	return bundles, nil
}
