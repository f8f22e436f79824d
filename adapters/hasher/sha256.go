package hasher

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/satriahrh/sobesednik/domain"
)

// New returns a domain.Hasher backed by SHA‑256.
func New() domain.Hasher { return sha256Hasher{} }

type sha256Hasher struct{}

func (h sha256Hasher) Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Fingerprint identifies a secret in logs without revealing it.
func Fingerprint(h domain.Hasher, secret string) string {
	if secret == "" {
		return ""
	}
	return h.Hash([]byte(secret))[:12]
}
