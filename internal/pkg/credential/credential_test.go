package credential

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	salt, digest, err := Hash("Abc123!")
	require.NoError(t, err)
	require.NotEmpty(t, salt)
	require.NotEmpty(t, digest)

	assert.True(t, Verify("Abc123!", salt, digest))
	assert.False(t, Verify("abc123!", salt, digest))
	assert.False(t, Verify("", salt, digest))
}

func TestHashGeneratesFreshSalts(t *testing.T) {
	salt1, digest1, err := Hash("same-secret")
	require.NoError(t, err)
	salt2, digest2, err := Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, digest1, digest2)

	// Both derivations still verify against the same secret.
	assert.True(t, Verify("same-secret", salt1, digest1))
	assert.True(t, Verify("same-secret", salt2, digest2))
}

func TestVerifyRejectsMalformedStoredValues(t *testing.T) {
	assert.False(t, Verify("secret", "not-hex", "abcd"))
	assert.False(t, Verify("secret", "abcd", "not-hex"))
}

func TestFingerprintDeterministic(t *testing.T) {
	fp1 := Fingerprint("STU001", "system-secret")
	fp2 := Fingerprint("STU001", "system-secret")
	assert.Equal(t, fp1, fp2)
	assert.Len(t, fp1, 64)
}

func TestFingerprintDistinct(t *testing.T) {
	assert.NotEqual(t, Fingerprint("STU001", "s"), Fingerprint("STU002", "s"))
	assert.NotEqual(t, Fingerprint("STU001", "s1"), Fingerprint("STU001", "s2"))
}

func TestNewAccessIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ACCESS-[0-9A-F]{16}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := NewAccessID()
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "access ID repeated: %s", id)
		seen[id] = true
	}
}

func TestNewRecoveryCodeFormat(t *testing.T) {
	code, err := NewRecoveryCode()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{20}$`), code)
}

func TestNewBearerToken(t *testing.T) {
	tok1, err := NewBearerToken()
	require.NoError(t, err)
	tok2, err := NewBearerToken()
	require.NoError(t, err)

	assert.Len(t, tok1, 64)
	assert.NotEqual(t, tok1, tok2)
}

func TestNewReferenceCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^NM-2026-\d{4}$`)
	for i := 0; i < 100; i++ {
		code, err := NewReferenceCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}
