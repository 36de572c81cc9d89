// Package account manages user accounts: sign-up by username or phone
// number, profile and password changes, and deletion.
package account

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"taskboard/internal/authentication"
	"taskboard/internal/models"
	"taskboard/internal/notification"
	"taskboard/internal/validation"
)

type Service struct {
	reader        *Reader
	writer        *Writer
	auth          *authentication.Service
	notifications *notification.Service
	log           *zap.Logger
}

func NewService(db *mongo.Database, auth *authentication.Service, notifications *notification.Service, log *zap.Logger) *Service {
	reader := NewReader(db)
	return &Service{
		reader:        reader,
		writer:        NewWriter(db, reader),
		auth:          auth,
		notifications: notifications,
		log:           log.Named("account"),
	}
}

// CreateByUsernameAndPassword creates the account and then its default
// notification preferences. The two writes are not atomic: if the second
// fails the account exists without preferences.
func (s *Service) CreateByUsernameAndPassword(ctx context.Context, params CreateAccountByUsernameAndPasswordParams) (*models.Account, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	account, err := s.writer.CreateByUsernameAndPassword(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.initPreferences(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info("account created", zap.String("account_id", account.ID.Hex()), zap.String("method", "username"))
	return account, nil
}

// GetOrCreateByPhoneNumber returns the account owning the phone number,
// creating it if needed, and always issues a fresh OTP.
func (s *Service) GetOrCreateByPhoneNumber(ctx context.Context, params CreateAccountByPhoneNumberParams) (*models.Account, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	account, err := s.reader.GetByPhoneNumberOptional(ctx, params.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if account == nil {
		account, err = s.writer.CreateByPhoneNumber(ctx, params)
		if err != nil {
			return nil, err
		}
		if err := s.initPreferences(ctx, account); err != nil {
			return nil, err
		}
		s.log.Info("account created", zap.String("account_id", account.ID.Hex()), zap.String("method", "phone_number"))
	}

	if _, err := s.auth.CreateOTP(ctx, authentication.CreateOTPParams{PhoneNumber: params.PhoneNumber}, account.ID.Hex()); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) initPreferences(ctx context.Context, account *models.Account) error {
	_, err := s.notifications.CreateOrUpdateAccountNotificationPreferences(ctx, account.ID.Hex(), notification.AllEnabled())
	if err != nil {
		s.log.Error("default notification preferences not created",
			zap.String("account_id", account.ID.Hex()), zap.Error(err))
	}
	return err
}

func (s *Service) GetByPhoneNumber(ctx context.Context, phone models.PhoneNumber) (*models.Account, error) {
	return s.reader.GetByPhoneNumber(ctx, phone)
}

// ResetPassword checks the token before touching the password and burns it
// only once the new password is stored.
func (s *Service) ResetPassword(ctx context.Context, params ResetPasswordParams) (*models.Account, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	account, err := s.reader.GetByID(ctx, params.AccountID)
	if err != nil {
		return nil, err
	}

	token, err := s.auth.VerifyPasswordResetToken(ctx, account.ID.Hex(), params.Token)
	if err != nil {
		return nil, err
	}

	updated, err := s.writer.UpdatePassword(ctx, params.AccountID, params.NewPassword)
	if err != nil {
		return nil, err
	}

	if _, err := s.auth.SetPasswordResetTokenAsUsed(ctx, token.ID.Hex()); err != nil {
		return nil, err
	}

	s.log.Info("password reset", zap.String("account_id", params.AccountID))
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return s.reader.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	return s.reader.GetByUsername(ctx, username)
}

func (s *Service) GetByUsernameAndPassword(ctx context.Context, params AccountSearchParams) (*models.Account, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}
	return s.reader.GetByUsernameAndPassword(ctx, params)
}

func (s *Service) UpdateProfile(ctx context.Context, accountID string, params UpdateAccountProfileParams) (*models.Account, error) {
	return s.writer.UpdateProfile(ctx, accountID, params)
}

func (s *Service) CreateOrUpdateNotificationPreferences(ctx context.Context, accountID string, params notification.PreferencesParams) (*models.NotificationPreferences, error) {
	if _, err := s.reader.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.notifications.CreateOrUpdateAccountNotificationPreferences(ctx, accountID, params)
}

func (s *Service) GetNotificationPreferences(ctx context.Context, accountID string) (*models.NotificationPreferences, error) {
	return s.notifications.GetAccountNotificationPreferencesByAccountID(ctx, accountID)
}

func (s *Service) Delete(ctx context.Context, accountID string) (*models.AccountDeletionResult, error) {
	result, err := s.writer.Delete(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.log.Info("account deleted", zap.String("account_id", accountID))
	return result, nil
}
