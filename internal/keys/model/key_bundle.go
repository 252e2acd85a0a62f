package models

import (
	"time"

	"github.com/google/uuid"
)

// DeviceKeyBundle is one row per (user, device): long-term identity key plus
// the current medium-term signed prekey. The signed prekey signature must
// verify against the identity key at write time.
type DeviceKeyBundle struct {
	UserID   uuid.UUID `bun:",pk,type:uuid"`
	DeviceID string    `bun:",pk"`

	// Ed25519 — signs the signed prekey, derives the fingerprint
	IdentityKeyPublic      []byte `bun:",notnull"` // 32 bytes
	IdentityKeyFingerprint string `bun:",notnull"` // sha256 hex of the raw key

	// Curve25519 — medium-term key-exchange key, rotated periodically
	SignedPreKeyPublic    []byte    `bun:",notnull"` // 32 bytes
	SignedPreKeySignature []byte    `bun:",notnull"` // 64 bytes, by the identity key
	SignedPreKeyID        uint32    `bun:",notnull"`
	SignedPreKeyCreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	LastActiveAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	CreatedAt    time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// AccountEncryptionState tracks whether the account has at least one device
// with registered keys. Cleared when the last device is removed.
type AccountEncryptionState struct {
	UserID      uuid.UUID `bun:",pk,type:uuid"`
	E2EECapable bool      `bun:",notnull,default:false"`
	UpdatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
