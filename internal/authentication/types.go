package authentication

import "taskboard/internal/models"

type CreateOTPParams struct {
	PhoneNumber models.PhoneNumber `json:"phone_number"`
}

type VerifyOTPParams struct {
	PhoneNumber models.PhoneNumber `json:"phone_number"`
	OTPCode     string             `json:"otp_code" validate:"required"`
}

// OTPBasedAuthParams is the login request for phone number accounts.
type OTPBasedAuthParams struct {
	PhoneNumber models.PhoneNumber `json:"phone_number"`
	OTPCode     string             `json:"otp_code" validate:"required"`
}
