package models

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// E2EE upgrade is monotonic: never cleared here once set.
	IsE2EE          bool `bun:",notnull,default:false"`
	ProtocolVersion int  `bun:",notnull,default:0"`

	CreatedAt     time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	LastMessageAt *time.Time `bun:",nullzero"`
	MessageCount  int64      `bun:",notnull,default:0"`
}

type ConversationParticipant struct {
	ConversationID uuid.UUID `bun:",pk,type:uuid"`
	UserID         uuid.UUID `bun:",pk,type:uuid"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
