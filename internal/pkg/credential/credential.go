package credential

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltBytes is the salt length for the slow credential hash
	SaltBytes = 16

	// Iterations is the PBKDF2 round count
	Iterations = 10000

	// KeyBytes is the derived key length (512-bit output)
	KeyBytes = 64
)

// RefCodePrefix is the human-readable ballot reference prefix
const RefCodePrefix = "NM-2026"

// Hash derives a salted digest for a secret using PBKDF2-SHA512.
// A fresh random salt is generated on every call; both salt and digest
// are returned hex encoded.
func Hash(secret string) (salt string, digest string, err error) {
	raw := make([]byte, SaltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(secret), raw, Iterations, KeyBytes, sha512.New)
	return hex.EncodeToString(raw), hex.EncodeToString(key), nil
}

// Verify recomputes the derivation with the stored salt and compares it
// to the stored digest in constant time.
func Verify(secret, salt, digest string) bool {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	rawDigest, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(secret), rawSalt, Iterations, KeyBytes, sha512.New)
	return subtle.ConstantTimeCompare(key, rawDigest) == 1
}

// Fingerprint returns a deterministic keyed digest of a student ID.
// The same ID always maps to the same fingerprint for a given system
// secret, which is what makes the already-voted lookup possible.
// This is a fast HMAC, not the slow password hash.
func Fingerprint(studentID, systemSecret string) string {
	mac := hmac.New(sha256.New, []byte(systemSecret))
	mac.Write([]byte(studentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// NewAccessID generates an opaque access credential shown to the student
// exactly once at registration.
func NewAccessID() (string, error) {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate access ID: %w", err)
	}
	return "ACCESS-" + strings.ToUpper(hex.EncodeToString(raw)), nil
}

// NewRecoveryCode generates a one-time-displayed recovery code.
func NewRecoveryCode() (string, error) {
	raw := make([]byte, 10)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate recovery code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}

// NewBearerToken generates a 256-bit admin session token.
func NewBearerToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate bearer token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// NewReferenceCode generates a ballot reference code (PREFIX-YYYY-####).
// The 4-digit suffix is cosmetic; uniqueness is not guaranteed.
func NewReferenceCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reference code: %w", err)
	}
	return fmt.Sprintf("%s-%04d", RefCodePrefix, n.Int64()+1000), nil
}
