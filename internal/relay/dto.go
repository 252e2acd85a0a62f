package relay

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MuscleMap-ME/musclemap-messaging/pkg/crypto"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
)

type SendMessageCommand struct {
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	SenderDeviceID string

	Payload crypto.EncryptedPayload

	ContentType string
	FileID      string         // opaque reference, stored as-is
	TTL         *time.Duration // optional client-requested expiry
}

type SendResultDTO struct {
	MessageID uuid.UUID
	CreatedAt time.Time
	ExpiresAt *time.Time
	Receipts  int
}

// MessageDTO is a page entry: the stored header and ciphertext plus the
// caller's own receipt state.
type MessageDTO struct {
	ID             uuid.UUID
	ConversationID uuid.UUID

	SenderID          uuid.UUID
	SenderDeviceID    string
	SenderFingerprint string

	ProtocolVersion     int
	KeyExchange         []byte
	RatchetPublicKey    []byte
	MessageNumber       uint32
	PreviousChainLength uint32
	Nonce               []byte
	Ciphertext          []byte

	ContentType string
	FileID      string

	CreatedAt time.Time
	ExpiresAt *time.Time
	DeletedAt *time.Time

	DeliveredCount int
	ReadCount      int

	// Caller's own receipt, nil for the sender.
	DeliveredAt *time.Time
	ReadAt      *time.Time
}

type MessagePage struct {
	Messages   []MessageDTO
	NextCursor string
}

type UpgradeCheckDTO struct {
	CanUpgrade  bool
	MissingKeys []uuid.UUID
}

// Cursor is the composite keyset position for newest-first pagination.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func (c Cursor) Encode() string {
	raw := fmt.Sprintf("%d:%s", c.CreatedAt.UnixNano(), c.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.InvalidArg("malformed cursor")
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return nil, errors.InvalidArg("malformed cursor")
	}
	var nanos int64
	if _, err := fmt.Sscanf(parts[0], "%d", &nanos); err != nil {
		return nil, errors.InvalidArg("malformed cursor")
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, errors.InvalidArg("malformed cursor")
	}
	return &Cursor{CreatedAt: time.Unix(0, nanos), ID: id}, nil
}
