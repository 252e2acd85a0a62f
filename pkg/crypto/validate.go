// Package crypto is the stateless validator for client-supplied key material.
// It never encrypts, decrypts, or derives keys; the server only checks shape
// and signatures and computes fingerprints.
package crypto

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	apperrors "github.com/MuscleMap-ME/musclemap-messaging/pkg/errors"
)

// Canonical decoded sizes. All material crosses the boundary base64-encoded.
const (
	PublicKeySize     = 32
	SignatureSize     = ed25519.SignatureSize // 64
	NonceSize         = 24
	MinCiphertextSize = 16 // bare auth tag
)

func decode(b64 string, malformed error) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, malformed
	}
	return raw, nil
}

func decodeExact(b64 string, want int, malformed error) ([]byte, error) {
	raw, err := decode(b64, malformed)
	if err != nil {
		return nil, err
	}
	if len(raw) != want {
		return nil, malformed
	}
	return raw, nil
}

// DecodeKey decodes a base64 public key and checks it is exactly 32 bytes.
func DecodeKey(b64 string) ([]byte, error) {
	return decodeExact(b64, PublicKeySize, apperrors.ErrMalformedKey)
}

// DecodeSignature decodes a base64 signature and checks it is exactly 64 bytes.
func DecodeSignature(b64 string) ([]byte, error) {
	return decodeExact(b64, SignatureSize, apperrors.ErrMalformedSignature)
}

// DecodeNonce decodes a base64 nonce and checks it is exactly 24 bytes.
func DecodeNonce(b64 string) ([]byte, error) {
	return decodeExact(b64, NonceSize, apperrors.ErrMalformedNonce)
}

// DecodeCiphertext decodes a base64 ciphertext and checks it carries at least
// the auth tag.
func DecodeCiphertext(b64 string) ([]byte, error) {
	raw, err := decode(b64, apperrors.ErrMalformedCiphertext)
	if err != nil {
		return nil, err
	}
	if len(raw) < MinCiphertextSize {
		return nil, apperrors.ErrMalformedCiphertext
	}
	return raw, nil
}

// VerifySignedPreKeySignature reports whether sig is a valid Ed25519 signature
// by identityKey over the raw signed-prekey bytes. It fails closed: any wrong
// length returns false, it never panics.
func VerifySignedPreKeySignature(signedPreKey, sig, identityKey []byte) bool {
	if len(identityKey) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	if len(signedPreKey) != PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(identityKey), signedPreKey, sig)
}

// EncodeKey is the inverse of DecodeKey, for callers that round-trip material.
func EncodeKey(raw []byte) (string, error) {
	if len(raw) != PublicKeySize {
		return "", fmt.Errorf("key must be %d bytes, got %d", PublicKeySize, len(raw))
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
