package authentication

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 10
	resetTokenEntropy = 60
	otpCodeDigits     = 4
)

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword reports whether password matches hashedPassword.
func ComparePassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// GeneratePasswordResetToken returns the hex sha256 of fresh random bytes.
// The plaintext is only ever mailed; storage keeps HashPasswordResetToken.
func GeneratePasswordResetToken() (string, error) {
	buf := make([]byte, resetTokenEntropy)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}

func HashPasswordResetToken(token string) (string, error) {
	return HashPassword(token)
}

func TokenExpiresAt(now time.Time, ttl time.Duration) time.Time {
	return now.Add(ttl)
}

func IsTokenExpired(now, expiresAt time.Time) bool {
	return now.After(expiresAt)
}

// GenerateOTPCode returns a zero padded numeric code.
func GenerateOTPCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < otpCodeDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpCodeDigits, n.Int64()), nil
}
