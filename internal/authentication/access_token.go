package authentication

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessToken is what a successful login returns to the client.
type AccessToken struct {
	Token     string    `json:"token"`
	AccountID string    `json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccessTokenPayload is what a verified token tells the caller.
type AccessTokenPayload struct {
	AccountID string
	TokenID   string
	ExpiresAt time.Time
}

type accessTokenClaims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func newTokenIssuer(signingKey string, ttl time.Duration) *tokenIssuer {
	return &tokenIssuer{signingKey: []byte(signingKey), ttl: ttl, now: time.Now}
}

func (i *tokenIssuer) issue(accountID string) (AccessToken, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := accessTokenClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signingKey)
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, AccountID: accountID, ExpiresAt: expiresAt}, nil
}

func (i *tokenIssuer) verify(token string) (AccessTokenPayload, error) {
	var claims accessTokenClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return i.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return AccessTokenPayload{}, ErrAccessTokenExpired.Wrap(err)
	case err != nil:
		return AccessTokenPayload{}, ErrAccessTokenInvalid.Wrap(err)
	case claims.AccountID == "":
		return AccessTokenPayload{}, ErrAccessTokenInvalid.With("access token has no account")
	}

	return AccessTokenPayload{
		AccountID: claims.AccountID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
