package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperror"
	"taskboard/internal/authentication"
)

// AccountIDKey is the gin context key holding the authenticated account id.
const AccountIDKey = "accountId"

var ErrMissingToken = apperror.New(apperror.KindUnauthorized, "ACCESS_TOKEN_ERR_01", "authorization header is missing or malformed")

// ErrAccountMismatch is returned when a valid token is used on another
// account's routes.
var ErrAccountMismatch = apperror.New(apperror.KindUnauthorized, "ACCESS_TOKEN_ERR_02", "access token does not belong to this account")

type AccessTokenVerifier interface {
	VerifyAccessToken(token string) (authentication.AccessTokenPayload, error)
}

// AccessAuth validates the bearer token and, on routes with an :id
// parameter, requires it to name the token's account.
func AccessAuth(verifier AccessTokenVerifier, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("auth")
	return func(c *gin.Context) {
		accountID, err := Authenticate(c, verifier)
		if err != nil {
			log.Debug("request not authorised", zap.String("path", c.FullPath()), zap.Error(err))
			Abort(c, err)
			return
		}

		c.Set(AccountIDKey, accountID)
		c.Next()
	}
}

// Authenticate checks the request's bearer token without aborting, for
// handlers that only sometimes require one.
func Authenticate(c *gin.Context, verifier AccessTokenVerifier) (string, error) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMissingToken
	}

	payload, err := verifier.VerifyAccessToken(parts[1])
	if err != nil {
		return "", err
	}

	if id := c.Param("id"); id != "" && id != payload.AccountID {
		return "", ErrAccountMismatch.With("access token for account %s used on account %s", payload.AccountID, id)
	}
	return payload.AccountID, nil
}

// Abort rejects the request with err. Failures are always reported as 401.
func Abort(c *gin.Context, err error) {
	status, body := apperror.ResponseOf(err)
	if status == http.StatusInternalServerError {
		status = http.StatusUnauthorized
	}
	c.AbortWithStatusJSON(status, body)
}

// AccountID returns the id set by AccessAuth.
func AccountID(c *gin.Context) string {
	return c.GetString(AccountIDKey)
}
