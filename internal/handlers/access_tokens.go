package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/account"
	"taskboard/internal/authentication"
	"taskboard/internal/models"
)

// AccessTokenRequest logs in with username and password, or with a phone
// number and the OTP texted to it.
type AccessTokenRequest struct {
	Username    string              `json:"username"`
	Password    string              `json:"password"`
	PhoneNumber *models.PhoneNumber `json:"phone_number"`
	OTPCode     string              `json:"otp_code"`
}

type PasswordResetTokenRequest struct {
	Username string `json:"username" binding:"required"`
}

func CreateAccessToken(accounts Accounts, auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /access-tokens"
		defer handlePanic(c, log, route)

		var req AccessTokenRequest
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var (
			token authentication.AccessToken
			err   error
		)
		if req.PhoneNumber != nil {
			var found *models.Account
			found, err = accounts.GetByPhoneNumber(ctx, *req.PhoneNumber)
			// An unknown number fails like a wrong code.
			if errors.Is(err, account.ErrAccountNotFound) {
				err = authentication.ErrOTPIncorrect
			}
			if err == nil {
				token, err = auth.CreateAccessTokenByPhoneNumber(ctx, authentication.OTPBasedAuthParams{
					PhoneNumber: *req.PhoneNumber,
					OTPCode:     req.OTPCode,
				}, found)
			}
		} else {
			var found *models.Account
			found, err = accounts.GetByUsernameAndPassword(ctx, account.AccountSearchParams{
				Username: req.Username,
				Password: req.Password,
			})
			if err == nil {
				token, err = auth.CreateAccessTokenByUsernameAndPassword(found)
			}
		}
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}

		log.Info("access token issued", zap.String("account_id", token.AccountID))
		c.JSON(http.StatusCreated, token)
	}
}

// CreatePasswordResetToken mails a reset link to the account's username. The
// response is the same whether or not the username exists.
func CreatePasswordResetToken(accounts Accounts, auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /password-reset-tokens"
		defer handlePanic(c, log, route)

		var req PasswordResetTokenRequest
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		found, err := accounts.GetByUsername(ctx, req.Username)
		if errors.Is(err, account.ErrAccountNotFound) {
			log.Info("password reset requested for unknown username")
			c.Status(http.StatusCreated)
			return
		}
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}

		if _, err := auth.CreatePasswordResetToken(ctx, found); err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}
