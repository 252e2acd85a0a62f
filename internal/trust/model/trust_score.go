package models

import (
	"time"

	"github.com/google/uuid"
)

// TrustScore is the composite 0-100 reputation value gating rate limits and
// restrictions. Recomputed periodically or on demand, never deleted. The
// report component persists across recalculation; it only moves when reports
// are resolved.
type TrustScore struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	Score                 int `bun:",notnull,default:0"`
	AccountAgeComponent   int `bun:",notnull,default:0"`
	VerificationComponent int `bun:",notnull,default:0"`
	ActivityComponent     int `bun:",notnull,default:0"`
	ReportComponent       int `bun:",notnull,default:50"`

	IsTrustedSender bool `bun:",notnull,default:false"`
	IsRestricted    bool `bun:",notnull,default:false"`
	IsShadowbanned  bool `bun:",notnull,default:false"`

	DailyMessageLimit      int `bun:",notnull,default:50"`
	DailyConversationLimit int `bun:",notnull,default:5"`

	CalculatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
