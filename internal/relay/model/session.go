package models

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks one (senderDevice, peerDevice) pair per conversation,
// upserted on every send. RatchetCount increments whenever the sender's
// ratchet public key changes.
type Session struct {
	ConversationID uuid.UUID `bun:",pk,type:uuid"`
	UserID         uuid.UUID `bun:",pk,type:uuid"`
	DeviceID       string    `bun:",pk"`
	PeerUserID     uuid.UUID `bun:",pk,type:uuid"`
	PeerDeviceID   string    `bun:",pk"`

	MessagesSent  int64     `bun:",notnull,default:0"`
	LastMessageAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	RatchetCount   int        `bun:",notnull,default:0"`
	LastRatchetKey []byte     `bun:",nullzero"`
	LastRatchetAt  *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
