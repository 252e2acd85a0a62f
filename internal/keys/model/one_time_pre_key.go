package models

import (
	"time"

	"github.com/google/uuid"
)

// OneTimePreKey is consumed by exactly one initiating peer. Once used it is
// never handed out again; used rows are purged after the retention window.
// (user_id, device_id, key_id) is unique.
type OneTimePreKey struct {
	ID       int64     `bun:",pk,autoincrement"`
	UserID   uuid.UUID `bun:",notnull,type:uuid,unique:uq_otpk_device_key"`
	DeviceID string    `bun:",notnull,unique:uq_otpk_device_key"`

	KeyID     uint32 `bun:",notnull,unique:uq_otpk_device_key"`
	PublicKey []byte `bun:",notnull"` // 32 bytes Curve25519

	Used         bool       `bun:",notnull,default:false"`
	UsedAt       *time.Time `bun:",nullzero"`
	UsedByUserID *uuid.UUID `bun:",nullzero,type:uuid"`

	UploadedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
