// Package notification owns account notification preferences and the
// outbound email and SMS channels.
package notification

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"taskboard/internal/models"
)

type Service struct {
	reader *PreferencesReader
	writer *PreferencesWriter
	email  EmailSender
	sms    SMSSender
	log    *zap.Logger
}

func NewService(db *mongo.Database, email EmailSender, sms SMSSender, log *zap.Logger) *Service {
	return &Service{
		reader: NewPreferencesReader(db),
		writer: NewPreferencesWriter(db),
		email:  email,
		sms:    sms,
		log:    log.Named("notification"),
	}
}

func (s *Service) CreateOrUpdateAccountNotificationPreferences(ctx context.Context, accountID string, params PreferencesParams) (*models.NotificationPreferences, error) {
	return s.writer.CreateOrUpdate(ctx, accountID, params)
}

func (s *Service) GetAccountNotificationPreferencesByAccountID(ctx context.Context, accountID string) (*models.NotificationPreferences, error) {
	return s.reader.GetByAccountID(ctx, accountID)
}

// SendEmailForAccount sends params unless the account has email turned off.
// bypassPreferences is for security mail (password reset) that must always
// go out.
func (s *Service) SendEmailForAccount(ctx context.Context, accountID string, bypassPreferences bool, params SendEmailParams) error {
	if !bypassPreferences {
		allowed, err := s.channelEnabled(ctx, accountID, func(p *models.NotificationPreferences) bool { return p.EmailEnabled })
		if err != nil {
			return err
		}
		if !allowed {
			s.log.Debug("email skipped by preferences", zap.String("account_id", accountID))
			return nil
		}
	}

	if err := s.email.SendEmail(ctx, params); err != nil {
		s.log.Error("email send failed", zap.String("account_id", accountID), zap.String("template_id", params.TemplateID), zap.Error(err))
		return ErrEmailSendFailed.Wrap(err)
	}
	return nil
}

// SendSMSForAccount is the SMS counterpart of SendEmailForAccount.
func (s *Service) SendSMSForAccount(ctx context.Context, accountID string, bypassPreferences bool, params SendSMSParams) error {
	if !bypassPreferences {
		allowed, err := s.channelEnabled(ctx, accountID, func(p *models.NotificationPreferences) bool { return p.SMSEnabled })
		if err != nil {
			return err
		}
		if !allowed {
			s.log.Debug("sms skipped by preferences", zap.String("account_id", accountID))
			return nil
		}
	}

	if err := s.sms.SendSMS(ctx, params); err != nil {
		s.log.Error("sms send failed", zap.String("account_id", accountID), zap.Error(err))
		return ErrSMSSendFailed.Wrap(err)
	}
	return nil
}

// channelEnabled treats an account without stored preferences as opted in,
// matching the defaults every account is created with.
func (s *Service) channelEnabled(ctx context.Context, accountID string, enabled func(*models.NotificationPreferences) bool) (bool, error) {
	prefs, err := s.reader.GetByAccountID(ctx, accountID)
	if errors.Is(err, ErrPreferencesNotFound) {
		s.log.Warn("no notification preferences; using defaults", zap.String("account_id", accountID))
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return enabled(prefs), nil
}
