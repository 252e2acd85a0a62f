package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the SHA-256 of the raw public key bytes, lowercase hex.
func Fingerprint(publicKey []byte) string {
	sum := sha256.Sum256(publicKey)
	return hex.EncodeToString(sum[:])
}

// DisplayFingerprint groups a hex fingerprint into 4-char blocks for human
// comparison: "ab12 cd34 ...".
func DisplayFingerprint(fp string) string {
	var b strings.Builder
	for i := 0; i < len(fp); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(fp) {
			end = len(fp)
		}
		b.WriteString(fp[i:end])
	}
	return b.String()
}

// ShortFingerprint is the first 8 hex chars, for logs and list views.
func ShortFingerprint(fp string) string {
	if len(fp) < 8 {
		return fp
	}
	return fp[:8]
}

// FingerprintEqual compares two fingerprints in constant time. Any comparison
// feeding an authorization decision must go through here.
func FingerprintEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
