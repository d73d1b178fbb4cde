package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// MustNew generates a new cryptographically secure byte array of length len and returns its URL-safe base64
// representation + the hex encoded SHA256 fingerprint of the raw bytes
func MustNew(len int) (string, string) {
	bytes := make([]byte, len)
	_, err := rand.Read(bytes)
	if err != nil {
		panic(err)
	}

	raw := base64.RawURLEncoding.EncodeToString(bytes)
	return raw, fingerprint(bytes)
}

// Fingerprint decodes the given base64 string and returns the hex encoded SHA256 fingerprint of its bytes.
// Secrets shorter than minLen bytes are rejected as they were not generated by MustNew.
func Fingerprint(raw string, minLen int) (string, error) {
	bytes, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return "", err
	}
	if len(bytes) < minLen {
		return "", ErrTooShort
	}
	return fingerprint(bytes), nil
}

func fingerprint(bytes []byte) string {
	sum := sha256.Sum256(bytes)
	return hex.EncodeToString(sum[:])
}
