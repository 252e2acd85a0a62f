package keys

import (
	"time"

	"github.com/google/uuid"
)

// Commands travel from handler to usecase; DTOs travel back out.

type RegisterKeysCommand struct {
	UserID   uuid.UUID
	DeviceID string

	IdentityKeyPublic     string // base64, Ed25519
	SignedPreKeyPublic    string // base64, Curve25519
	SignedPreKeySignature string // base64, by the identity key
	SignedPreKeyID        uint32

	OneTimePreKeys []OneTimePreKeyUpload // optional initial pool
}

type OneTimePreKeyUpload struct {
	KeyID     uint32
	PublicKey string // base64
}

// KeyBundleDTO is everything a sender needs to start an exchange with the
// target's most recently active device. OneTimePreKey is nil when the pool is
// exhausted and the exchange degrades to signed-prekey-only.
type KeyBundleDTO struct {
	UserID   uuid.UUID
	DeviceID string

	IdentityKey            []byte
	IdentityKeyFingerprint string

	SignedPreKeyID        uint32
	SignedPreKey          []byte
	SignedPreKeySignature []byte

	OneTimePreKeyID *uint32
	OneTimePreKey   []byte

	RemainingOneTimePreKeys int
}

// RotationCandidate flags a device whose signed prekey is past its max age.
// Rotation is suggested, never forced.
type RotationCandidate struct {
	UserID    uuid.UUID
	DeviceID  string
	KeyAge    time.Duration
	CreatedAt time.Time
}
