package authentication

import (
	"time"

	"taskboard/internal/config"
)

const (
	defaultAccessTokenTTL = 24 * time.Hour
	defaultResetTokenTTL  = time.Hour
	defaultOTPTTL         = 10 * time.Minute
)

// Settings is the slice of configuration the authentication flows read.
type Settings struct {
	SigningKey          string
	AccessTokenTTL      time.Duration
	ResetTokenTTL       time.Duration
	OTPTTL              time.Duration
	DefaultOTPCode      string
	DefaultPhoneNumbers []string

	WebAppHost               string
	SenderEmail              string
	SenderName               string
	ForgotPasswordTemplateID string
}

// SettingsFromConfig fails only when the signing key is missing; everything
// else has a usable default.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	key, err := cfg.String("accounts.token_signing_key")
	if err != nil {
		return Settings{}, err
	}

	accessTTL := defaultAccessTokenTTL
	if days := cfg.IntOr("accounts.token_expiry_days", 0); days > 0 {
		accessTTL = time.Duration(days) * 24 * time.Hour
	}

	return Settings{
		SigningKey:          key,
		AccessTokenTTL:      accessTTL,
		ResetTokenTTL:       cfg.SecondsOr("accounts.token_expires_in_seconds", defaultResetTokenTTL),
		OTPTTL:              cfg.SecondsOr("otp.expires_in_seconds", defaultOTPTTL),
		DefaultOTPCode:      cfg.StringOr("otp.default_otp_code", ""),
		DefaultPhoneNumbers: cfg.StringSlice("otp.default_phone_numbers"),

		WebAppHost:               cfg.StringOr("web_app_host", ""),
		SenderEmail:              cfg.StringOr("mailer.default_email", ""),
		SenderName:               cfg.StringOr("mailer.default_email_name", ""),
		ForgotPasswordTemplateID: cfg.StringOr("mailer.forgot_password_mail_template_id", ""),
	}, nil
}

// usesDefaultOTP reports whether phone is a test number that always gets
// the configured code and never an SMS.
func (s Settings) usesDefaultOTP(phoneNumber string, e164 string) bool {
	if s.DefaultOTPCode == "" {
		return false
	}
	for _, number := range s.DefaultPhoneNumbers {
		if number == phoneNumber || number == e164 {
			return true
		}
	}
	return false
}
