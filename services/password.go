package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Digests written by the first version of the journal: unsalted SHA-256, hex encoded.
var legacyDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

// PasswordHasher derives and checks stored password hashes.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt hasher; cost 0 selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches stored, accepting bcrypt hashes
// and legacy SHA-256 digests.
func (h *PasswordHasher) Verify(stored, password string) bool {
	if IsLegacyDigest(stored) {
		sum := sha256.Sum256([]byte(password))
		return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(strings.ToLower(stored))) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func IsLegacyDigest(stored string) bool {
	return legacyDigest.MatchString(strings.ToLower(stored))
}
