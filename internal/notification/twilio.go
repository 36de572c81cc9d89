package notification

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender sends SMS through the Twilio messages API.
type TwilioSender struct {
	client *twilio.RestClient
	origin TwilioOrigin
}

// TwilioOrigin names the sender. A messaging service takes precedence over a
// from number.
type TwilioOrigin struct {
	From                string
	MessagingServiceSID string
}

func NewTwilioSender(accountSID, authToken string, origin TwilioOrigin) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, origin: origin}
}

// SendSMS does not honour ctx cancellation; the Twilio client has no
// context-aware call.
func (s *TwilioSender) SendSMS(_ context.Context, params SendSMSParams) error {
	_, err := s.client.Api.CreateMessage(buildTwilioMessage(s.origin, params))
	return err
}

func buildTwilioMessage(origin TwilioOrigin, params SendSMSParams) *twilioapi.CreateMessageParams {
	message := &twilioapi.CreateMessageParams{}
	message.SetTo(params.RecipientPhone.String())
	if origin.MessagingServiceSID != "" {
		message.SetMessagingServiceSid(origin.MessagingServiceSID)
	} else {
		message.SetFrom(origin.From)
	}
	message.SetBody(params.MessageBody)
	return message
}
