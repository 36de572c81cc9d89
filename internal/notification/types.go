package notification

import "taskboard/internal/models"

type EmailRecipient struct {
	Email string `json:"email" validate:"required,email"`
}

type EmailFrom struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type SendEmailParams struct {
	TemplateID   string         `json:"template_id" validate:"required"`
	Recipient    EmailRecipient `json:"recipient"`
	Sender       EmailFrom      `json:"sender"`
	TemplateData map[string]any `json:"template_data"`
}

type SendSMSParams struct {
	MessageBody    string             `json:"message_body" validate:"required"`
	RecipientPhone models.PhoneNumber `json:"recipient_phone"`
}

// PreferencesParams carries a partial update; nil fields are left as they
// are, and default to enabled when the record is first created.
type PreferencesParams struct {
	EmailEnabled *bool `json:"email_enabled"`
	PushEnabled  *bool `json:"push_enabled"`
	SMSEnabled   *bool `json:"sms_enabled"`
}

// AllEnabled is the preference set every new account starts with.
func AllEnabled() PreferencesParams {
	enabled := true
	return PreferencesParams{EmailEnabled: &enabled, PushEnabled: &enabled, SMSEnabled: &enabled}
}
