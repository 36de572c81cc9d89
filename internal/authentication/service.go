// Package authentication issues and verifies OTPs, access tokens and
// password reset tokens.
package authentication

import (
	"context"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"taskboard/internal/apperror"
	"taskboard/internal/models"
	"taskboard/internal/notification"
	"taskboard/internal/validation"
)

type Service struct {
	settings      Settings
	otps          *OTPWriter
	resetReader   *PasswordResetTokenReader
	resetWriter   *PasswordResetTokenWriter
	tokens        *tokenIssuer
	notifications *notification.Service
	log           *zap.Logger
}

func NewService(db *mongo.Database, settings Settings, notifications *notification.Service, log *zap.Logger) *Service {
	return &Service{
		settings:      settings,
		otps:          NewOTPWriter(db),
		resetReader:   NewPasswordResetTokenReader(db),
		resetWriter:   NewPasswordResetTokenWriter(db),
		tokens:        newTokenIssuer(settings.SigningKey, settings.AccessTokenTTL),
		notifications: notifications,
		log:           log.Named("authentication"),
	}
}

// CreateOTP stores a new code for the phone number and texts it, except for
// configured test numbers which get the fixed default code and no SMS.
func (s *Service) CreateOTP(ctx context.Context, params CreateOTPParams, accountID string) (*models.OTP, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	phone := params.PhoneNumber
	useDefault := s.settings.usesDefaultOTP(phone.PhoneNumber, phone.String())

	code := s.settings.DefaultOTPCode
	if !useDefault {
		generated, err := GenerateOTPCode()
		if err != nil {
			return nil, apperror.Internal("generate otp", err)
		}
		code = generated
	}

	otp, err := s.otps.Create(ctx, phone, code, s.settings.OTPTTL)
	if err != nil {
		return nil, err
	}

	if useDefault {
		s.log.Debug("default otp issued; sms skipped", zap.String("account_id", accountID))
		return otp, nil
	}

	err = s.notifications.SendSMSForAccount(ctx, accountID, true, notification.SendSMSParams{
		MessageBody:    fmt.Sprintf("%s is your One Time Password (OTP) for verification.", otp.OTPCode),
		RecipientPhone: phone,
	})
	if err != nil {
		return nil, err
	}
	return otp, nil
}

func (s *Service) VerifyOTP(ctx context.Context, params VerifyOTPParams) (*models.OTP, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}
	return s.otps.Verify(ctx, params.PhoneNumber, params.OTPCode)
}

// CreateAccessTokenByPhoneNumber mints a token only after the OTP has been
// consumed. A failure minting leaves the OTP spent.
func (s *Service) CreateAccessTokenByPhoneNumber(ctx context.Context, params OTPBasedAuthParams, account *models.Account) (AccessToken, error) {
	otp, err := s.VerifyOTP(ctx, VerifyOTPParams(params))
	if err != nil {
		return AccessToken{}, err
	}
	if otp.Status != models.OTPStatusSuccess {
		return AccessToken{}, ErrOTPIncorrect
	}
	return s.issue(account)
}

// CreateAccessTokenByUsernameAndPassword expects the caller to have checked
// the password already.
func (s *Service) CreateAccessTokenByUsernameAndPassword(account *models.Account) (AccessToken, error) {
	return s.issue(account)
}

func (s *Service) issue(account *models.Account) (AccessToken, error) {
	token, err := s.tokens.issue(account.ID.Hex())
	if err != nil {
		return AccessToken{}, apperror.Internal("sign access token", err)
	}
	return token, nil
}

func (s *Service) VerifyAccessToken(token string) (AccessTokenPayload, error) {
	return s.tokens.verify(token)
}

// CreatePasswordResetToken stores a new token for account and mails the
// plaintext. The returned record carries only the hash.
func (s *Service) CreatePasswordResetToken(ctx context.Context, account *models.Account) (*models.PasswordResetToken, error) {
	token, err := GeneratePasswordResetToken()
	if err != nil {
		return nil, apperror.Internal("generate password reset token", err)
	}

	record, err := s.resetWriter.Create(ctx, account.ID.Hex(), token, s.settings.ResetTokenTTL)
	if err != nil {
		return nil, err
	}

	if err := s.SendPasswordResetEmail(ctx, account.ID.Hex(), account.FirstName, account.Username, token); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) GetPasswordResetTokenByAccountID(ctx context.Context, accountID string) (*models.PasswordResetToken, error) {
	return s.resetReader.GetByAccountID(ctx, accountID)
}

func (s *Service) VerifyPasswordResetToken(ctx context.Context, accountID, token string) (*models.PasswordResetToken, error) {
	return s.resetReader.Verify(ctx, accountID, token)
}

func (s *Service) SetPasswordResetTokenAsUsed(ctx context.Context, tokenID string) (*models.PasswordResetToken, error) {
	return s.resetWriter.SetAsUsed(ctx, tokenID)
}

// SendPasswordResetEmail mails the reset link. Usernames are email
// addresses, so the username doubles as the recipient.
func (s *Service) SendPasswordResetEmail(ctx context.Context, accountID, firstName, username, token string) error {
	link := fmt.Sprintf("%s/accounts/%s/reset_password?token=%s", s.settings.WebAppHost, accountID, url.QueryEscape(token))

	return s.notifications.SendEmailForAccount(ctx, accountID, true, notification.SendEmailParams{
		TemplateID: s.settings.ForgotPasswordTemplateID,
		Recipient:  notification.EmailRecipient{Email: username},
		Sender: notification.EmailFrom{
			Email: s.settings.SenderEmail,
			Name:  s.settings.SenderName,
		},
		TemplateData: map[string]any{
			"first_name":          firstName,
			"password_reset_link": link,
			"username":            username,
		},
	})
}
