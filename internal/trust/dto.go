package trust

import (
	"github.com/google/uuid"

	models "github.com/MuscleMap-ME/musclemap-messaging/internal/trust/model"
)

// MessagingDecision is the gate's answer to "may sender message recipient".
// RequiresRequest marks a soft denial or first contact that should go through
// the message-request flow instead of a hard wall.
type MessagingDecision struct {
	CanMessage      bool
	RequiresRequest bool
	Reason          string
}

type FileDecision struct {
	CanSendFiles      bool
	RequiresRequest   bool
	Reason            string
	AllowedCategories []string
}

type TrustScoreDTO struct {
	UserID          uuid.UUID
	Score           int
	IsTrustedSender bool
	IsRestricted    bool
	IsShadowbanned  bool

	DailyMessageLimit      int
	DailyConversationLimit int
}

type UpdateMessagingPrivacyCommand struct {
	UserID          uuid.UUID
	WhoCanMessage   models.PrivacyLevel
	WhoCanSendFiles models.PrivacyLevel
	RequireRequests bool

	AllowedFileCategories []string
}

type UpdateContentPreferencesCommand struct {
	UserID              uuid.UUID
	IsMinor             bool
	AllowAdultContent   bool
	CanSendAdultContent bool
}
