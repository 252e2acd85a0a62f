package keys

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/MuscleMap-ME/musclemap-messaging/internal/keys/model"
)

type KeyRepository interface {
	UpsertBundle(ctx context.Context, bundle *models.DeviceKeyBundle) error
	GetBundle(ctx context.Context, userID uuid.UUID, deviceID string) (*models.DeviceKeyBundle, error)
	// Most recently active device for the user.
	GetMostRecentBundle(ctx context.Context, userID uuid.UUID) (*models.DeviceKeyBundle, error)
	ListDeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	CountDevices(ctx context.Context, userID uuid.UUID) (int, error)
	TouchDevice(ctx context.Context, userID uuid.UUID, deviceID string) error

	// Insert is an upsert on (user_id, device_id, key_id): re-uploading a used
	// id un-marks it used (explicit replacement).
	InsertOneTimePreKeys(ctx context.Context, keys []models.OneTimePreKey) error
	CountUnusedOneTimePreKeys(ctx context.Context, userID uuid.UUID, deviceID string) (int, error)
	// Atomically claims the lowest-key-id unused prekey. Concurrent callers
	// never receive the same key. Returns ErrNoPreKeysAvailable when empty.
	ClaimOneTimePreKey(ctx context.Context, userID uuid.UUID, deviceID string, claimedBy uuid.UUID) (*models.OneTimePreKey, error)

	// Deletes the bundle and its prekey pool; returns how many devices remain.
	DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) (remaining int, err error)

	SetAccountE2EE(ctx context.Context, userID uuid.UUID, capable bool) error
	GetAccountE2EE(ctx context.Context, userID uuid.UUID) (bool, error)

	// Maintenance
	ListStaleSignedPreKeys(ctx context.Context, createdBefore time.Time) ([]models.DeviceKeyBundle, error)
	PurgeUsedOneTimePreKeys(ctx context.Context, usedBefore time.Time) (int64, error)
	ListInactiveDevices(ctx context.Context, inactiveSince time.Time) ([]models.DeviceKeyBundle, error)
}
