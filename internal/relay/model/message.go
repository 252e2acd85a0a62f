package models

import (
	"time"

	"github.com/google/uuid"
)

// EncryptedMessage stores the client's ciphertext verbatim; the server never
// parses it. Ciphertext and header are immutable after insert — only the
// derived counts, soft-delete and expiry fields ever change.
type EncryptedMessage struct {
	ID             uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ConversationID uuid.UUID `bun:",notnull,type:uuid"`

	SenderID          uuid.UUID `bun:",notnull,type:uuid"`
	SenderDeviceID    string    `bun:",notnull"`
	SenderFingerprint string    `bun:",notnull"`

	ProtocolVersion int    `bun:",notnull"`
	KeyExchange     []byte `bun:",nullzero,type:jsonb"` // first message of a session only

	// Ratchet header, stored for the recipient to derive the decryption key
	RatchetPublicKey    []byte `bun:",notnull"` // 32 bytes
	MessageNumber       uint32 `bun:",notnull"`
	PreviousChainLength uint32 `bun:",notnull"`

	Nonce      []byte `bun:",notnull"` // 24 bytes
	Ciphertext []byte `bun:",notnull"` // >= 16 bytes, opaque

	ContentType string `bun:",notnull,default:'text'"`
	FileID      string `bun:",nullzero"` // opaque reference into external storage

	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	ExpiresAt *time.Time `bun:",nullzero"` // from client TTL

	// Derived cache of the receipt table — recomputed, never incremented.
	DeliveredCount int `bun:",notnull,default:0"`
	ReadCount      int `bun:",notnull,default:0"`

	DeletedAt *time.Time `bun:",soft_delete,nullzero"`
}

// MessageReceipt is one row per (message, recipient), created at send time
// for every non-sender participant. Delivered and read are each set once;
// the timestamps are monotonic: read implies delivered.
type MessageReceipt struct {
	MessageID uuid.UUID `bun:",pk,type:uuid"`
	UserID    uuid.UUID `bun:",pk,type:uuid"`

	DeviceID string `bun:",nullzero"` // device that first acknowledged

	DeliveredAt *time.Time `bun:",nullzero"`
	ReadAt      *time.Time `bun:",nullzero"`
}
