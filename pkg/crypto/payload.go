package crypto

import (
	apperrors "github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
)

// RatchetHeader is the per-message metadata the recipient needs to derive the
// decryption key client-side. The server stores it verbatim.
type RatchetHeader struct {
	RatchetPublicKey    string `json:"ratchetPublicKey"` // base64, 32 bytes decoded
	MessageNumber       uint32 `json:"messageNumber"`
	PreviousChainLength uint32 `json:"previousChainLength"`
}

// KeyExchange is present on the first message of a session only.
type KeyExchange struct {
	EphemeralKey        string  `json:"ephemeralKey"` // base64, 32 bytes decoded
	UsedSignedPreKeyID  uint32  `json:"usedSignedPreKeyId"`
	UsedOneTimePreKeyID *uint32 `json:"usedOneTimePreKeyId,omitempty"`
}

// EncryptedPayload is everything the client submits with a send. The server
// validates shape only; ciphertext stays opaque.
type EncryptedPayload struct {
	ProtocolVersion   int           `json:"protocolVersion"`
	SenderFingerprint string        `json:"senderFingerprint"`
	KeyExchange       *KeyExchange  `json:"keyExchange,omitempty"`
	Header            RatchetHeader `json:"header"`
	Nonce             string        `json:"nonce"`      // base64, 24 bytes decoded
	Ciphertext        string        `json:"ciphertext"` // base64, >= 16 bytes decoded
}

// ValidatePayload runs the composite shape check and returns every violated
// rule, not just the first. An empty slice means the payload is well-formed.
func ValidatePayload(p EncryptedPayload, protocolVersion int) []error {
	var violations []error

	if p.ProtocolVersion != protocolVersion {
		violations = append(violations, apperrors.ErrProtocolVersionMismatch)
	}
	if p.SenderFingerprint == "" {
		violations = append(violations, apperrors.ErrMissingFingerprint)
	}
	if _, err := DecodeKey(p.Header.RatchetPublicKey); err != nil {
		violations = append(violations, apperrors.ErrMalformedRatchetHeader)
	}
	if _, err := DecodeNonce(p.Nonce); err != nil {
		violations = append(violations, err)
	}
	if _, err := DecodeCiphertext(p.Ciphertext); err != nil {
		violations = append(violations, err)
	}
	if p.KeyExchange != nil {
		if _, err := DecodeKey(p.KeyExchange.EphemeralKey); err != nil {
			violations = append(violations, apperrors.ErrMalformedKey)
		}
	}
	return violations
}
