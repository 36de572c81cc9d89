package authentication

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.True(t, ComparePassword("s3cret-pass", hashed))
	assert.False(t, ComparePassword("wrong", hashed))
	assert.False(t, ComparePassword("s3cret-pass", "not-a-bcrypt-hash"))
}

func TestGeneratePasswordResetToken(t *testing.T) {
	first, err := GeneratePasswordResetToken()
	require.NoError(t, err)
	second, err := GeneratePasswordResetToken()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), first)
	assert.NotEqual(t, first, second)

	hashed, err := HashPasswordResetToken(first)
	require.NoError(t, err)
	assert.True(t, ComparePassword(first, hashed))
	assert.False(t, ComparePassword(second, hashed))
}

func TestTokenExpiry(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := TokenExpiresAt(issued, time.Hour)

	assert.Equal(t, issued.Add(time.Hour), expiresAt)
	assert.False(t, IsTokenExpired(issued.Add(59*time.Minute), expiresAt))
	assert.False(t, IsTokenExpired(expiresAt, expiresAt))
	assert.True(t, IsTokenExpired(expiresAt.Add(time.Second), expiresAt))
}

func TestGenerateOTPCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[0-9]{4}$`), code)
	}
}
