package authentication

import "taskboard/internal/apperror"

var (
	ErrOTPIncorrect                  = apperror.New(apperror.KindInvalidCredentials, "AUTHENTICATION_ERR_01", "please provide the correct OTP to login")
	ErrOTPExpired                    = apperror.New(apperror.KindInvalidCredentials, "AUTHENTICATION_ERR_02", "OTP has expired, please request a new one")
	ErrAccessTokenInvalid            = apperror.New(apperror.KindUnauthorized, "AUTHENTICATION_ERR_03", "access token is invalid")
	ErrAccessTokenExpired            = apperror.New(apperror.KindExpired, "AUTHENTICATION_ERR_04", "access token has expired, please login again")
	ErrPasswordResetTokenNotFound    = apperror.New(apperror.KindNotFound, "AUTHENTICATION_ERR_05", "password reset token not found")
	ErrPasswordResetTokenExpired     = apperror.New(apperror.KindExpired, "AUTHENTICATION_ERR_06", "password reset link has expired, please request a new one")
	ErrPasswordResetTokenAlreadyUsed = apperror.New(apperror.KindAlreadyUsed, "AUTHENTICATION_ERR_07", "password reset link has already been used")
	ErrPasswordResetTokenInvalid     = apperror.New(apperror.KindInvalidCredentials, "AUTHENTICATION_ERR_08", "password reset token is invalid")
)
