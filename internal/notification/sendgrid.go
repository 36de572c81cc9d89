package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender sends dynamic-template emails through SendGrid.
type SendGridSender struct {
	client *sendgrid.Client
}

func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey)}
}

func (s *SendGridSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	resp, err := s.client.SendWithContext(ctx, buildSendGridMessage(params))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func buildSendGridMessage(params SendEmailParams) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(params.Sender.Name, params.Sender.Email))
	message.SetTemplateID(params.TemplateID)

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", params.Recipient.Email))
	for key, value := range params.TemplateData {
		personalization.SetDynamicTemplateData(key, value)
	}
	message.AddPersonalizations(personalization)
	return message
}
