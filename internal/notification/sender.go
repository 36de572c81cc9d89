package notification

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=sender.go -destination=mock_sender.go -package=notification

// EmailSender delivers a templated email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SMSSender delivers a text message.
type SMSSender interface {
	SendSMS(ctx context.Context, params SendSMSParams) error
}

// LogSender writes messages to the log instead of delivering them. It backs
// the "log" provider used in development.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.Named("notification.log_sender")}
}

func (s *LogSender) SendEmail(_ context.Context, params SendEmailParams) error {
	s.log.Info("email",
		zap.String("template_id", params.TemplateID),
		zap.String("to", params.Recipient.Email),
		zap.String("from", params.Sender.Email),
		zap.Any("template_data", params.TemplateData),
	)
	return nil
}

func (s *LogSender) SendSMS(_ context.Context, params SendSMSParams) error {
	s.log.Info("sms",
		zap.String("to", params.RecipientPhone.String()),
		zap.String("body", params.MessageBody),
	)
	return nil
}
