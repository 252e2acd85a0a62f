package models

import (
	"time"

	"github.com/google/uuid"
)

// PrivacyLevel is a closed enumeration; ad hoc string comparison against it is
// a bug.
type PrivacyLevel string

const (
	PrivacyEveryone PrivacyLevel = "everyone"
	PrivacyMutuals  PrivacyLevel = "mutuals"
	PrivacyFriends  PrivacyLevel = "friends"
	PrivacyNobody   PrivacyLevel = "nobody"
)

func (p PrivacyLevel) Valid() bool {
	switch p {
	case PrivacyEveryone, PrivacyMutuals, PrivacyFriends, PrivacyNobody:
		return true
	}
	return false
}

// MessagingPrivacy gates who may message the user and who may send them files.
type MessagingPrivacy struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	WhoCanMessage   PrivacyLevel `bun:",notnull,default:'everyone'"`
	WhoCanSendFiles PrivacyLevel `bun:",notnull,default:'friends'"`

	// Require a message request before the first conversation.
	RequireRequests bool `bun:",notnull,default:false"`

	AllowedFileCategories []string `bun:",array"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// ContentPreferences holds the minor flag and adult-content settings. Once
// IsMinor is true, adult-content settings are forced false at every write
// until age re-verification.
type ContentPreferences struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	IsMinor             bool `bun:",notnull,default:false"`
	AllowAdultContent   bool `bun:",notnull,default:false"`
	CanSendAdultContent bool `bun:",notnull,default:false"`

	AgeVerifiedAt *time.Time `bun:",nullzero"`
	UpdatedAt     time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
}

type UserBlock struct {
	BlockerID uuid.UUID `bun:",pk,type:uuid"`
	BlockedID uuid.UUID `bun:",pk,type:uuid"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
