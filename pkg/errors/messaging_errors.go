package errors

var (
	// Malformed key material — client bug, rejected before persistence.
	ErrMalformedKey        = InvalidArg("malformed public key")
	ErrMalformedSignature  = InvalidArg("malformed signature")
	ErrMalformedNonce      = InvalidArg("malformed nonce")
	ErrMalformedCiphertext = InvalidArg("malformed ciphertext")

	ErrInvalidKeyBundle        = InvalidArg("invalid key bundle")
	ErrInvalidSignature        = Unauthorized("signature verification failed")
	ErrProtocolVersionMismatch = InvalidArg("unsupported protocol version")
	ErrMissingFingerprint      = InvalidArg("sender fingerprint is required")
	ErrMalformedRatchetHeader  = InvalidArg("malformed ratchet header")
	ErrInvalidPayload          = InvalidArg("invalid encrypted payload")

	// Intentionally vague — must not confirm resource existence.
	ErrNotParticipant = Forbidden("not a participant of this conversation")
	ErrNotAuthorized  = Forbidden("not authorized")

	// Possible spoof or key desync; audit-logged at the call site.
	ErrFingerprintMismatch = Forbidden("sender key fingerprint mismatch")

	// Soft condition: the exchange degrades to signed-prekey-only.
	ErrNoOneTimePreKeys = FailedPrecondition("no one-time prekeys available")

	// Trust-gate denials. User-facing reason only, no internals.
	ErrRateLimited       = Exhausted("sending too fast, slow down")
	ErrDailyLimitReached = Exhausted("daily message limit reached")
	ErrRestricted        = Forbidden("account is restricted from messaging")
	ErrShadowbanned      = Forbidden("message cannot be delivered")

	ErrUserNotFound         = NotFound("user not found")
	ErrDeviceNotFound       = NotFound("device not found")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrMessageNotFound      = NotFound("message not found")
)
