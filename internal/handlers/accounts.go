package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/account"
	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/notification"
)

// CreateAccountRequest signs up either by username and password or by
// phone number. A phone number takes precedence and triggers an OTP.
type CreateAccountRequest struct {
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Username    string              `json:"username"`
	Password    string              `json:"password"`
	PhoneNumber *models.PhoneNumber `json:"phone_number"`
}

// UpdateAccountRequest updates the profile, or resets the password when
// token and new_password are present.
type UpdateAccountRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Token       string  `json:"token"`
	NewPassword string  `json:"new_password"`
}

func CreateAccount(accounts Accounts, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /accounts"
		defer handlePanic(c, log, route)

		var req CreateAccountRequest
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var (
			created *models.Account
			err     error
		)
		if req.PhoneNumber != nil {
			created, err = accounts.GetOrCreateByPhoneNumber(ctx, account.CreateAccountByPhoneNumberParams{PhoneNumber: *req.PhoneNumber})
		} else {
			created, err = accounts.CreateByUsernameAndPassword(ctx, account.CreateAccountByUsernameAndPasswordParams{
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Username:  req.Username,
				Password:  req.Password,
			})
		}
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

func GetAccount(accounts Accounts, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /accounts/:id"
		defer handlePanic(c, log, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		found, err := accounts.GetByID(ctx, c.Param("id"))
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

// UpdateAccount resets the password when the body carries a reset token,
// which is its own authorisation. Any other update is a profile change and
// needs a bearer token for the same account.
func UpdateAccount(accounts Accounts, verifier middleware.AccessTokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /accounts/:id"
		defer handlePanic(c, log, route)

		var req UpdateAccountRequest
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if req.Token != "" {
			updated, err := accounts.ResetPassword(ctx, account.ResetPasswordParams{
				AccountID:   c.Param("id"),
				NewPassword: req.NewPassword,
				Token:       req.Token,
			})
			if err != nil {
				respondWithError(c, log, route, err)
				return
			}
			c.JSON(http.StatusOK, updated)
			return
		}

		if _, err := middleware.Authenticate(c, verifier); err != nil {
			middleware.Abort(c, err)
			return
		}

		updated, err := accounts.UpdateProfile(ctx, c.Param("id"), account.UpdateAccountProfileParams{
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteAccount(accounts Accounts, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /accounts/:id"
		defer handlePanic(c, log, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := accounts.Delete(ctx, c.Param("id"))
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetNotificationPreferences(accounts Accounts, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /accounts/:id/notification-preferences"
		defer handlePanic(c, log, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		prefs, err := accounts.GetNotificationPreferences(ctx, c.Param("id"))
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, prefs)
	}
}

func UpdateNotificationPreferences(accounts Accounts, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /accounts/:id/notification-preferences"
		defer handlePanic(c, log, route)

		var req notification.PreferencesParams
		if !bindJSON(c, log, route, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		prefs, err := accounts.CreateOrUpdateNotificationPreferences(ctx, c.Param("id"), req)
		if err != nil {
			respondWithError(c, log, route, err)
			return
		}
		c.JSON(http.StatusOK, prefs)
	}
}
