package keys

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// KeyDirectory is the device key bundle lifecycle:
// unregistered -> registered -> (rotating)* -> removed.
type KeyDirectory interface {
	// Validates the bundle structurally, verifies the signed-prekey signature
	// against the identity key, then upserts (rotation is last-write-wins).
	RegisterKeys(ctx context.Context, cmd RegisterKeysCommand) error

	// Caps the unused pool; overflow is silently truncated. Returns how many
	// keys were accepted.
	UploadOneTimePreKeys(ctx context.Context, userID uuid.UUID, deviceID string, uploads []OneTimePreKeyUpload) (int, error)

	// Bundle for the target's most recently active device, consuming exactly
	// one one-time prekey when any remain.
	GetKeyBundle(ctx context.Context, requesterID, targetUserID uuid.UUID) (*KeyBundleDTO, error)

	// Cascades one-time prekeys and sessions; clears the account E2EE flag
	// when the last device goes.
	RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error

	// Constant-time comparison against the stored fingerprint. The relay
	// rejects sends whose claimed fingerprint does not match.
	VerifyKeyFingerprint(ctx context.Context, userID uuid.UUID, deviceID, fingerprint string) (bool, error)

	HasRegisteredKeys(ctx context.Context, userID uuid.UUID) (bool, error)
	ListDeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Rotation flagging, used-prekey purge, inactive-device purge.
	RunMaintenance(ctx context.Context, now time.Time) error
}

// SessionRemover is implemented by the relay: device removal cascades to its
// ratchet sessions.
type SessionRemover interface {
	DeleteDeviceSessions(ctx context.Context, userID uuid.UUID, deviceID string) error
}
