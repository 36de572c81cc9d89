package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"taskboard/internal/models"
	"taskboard/internal/testutil"
)

func boolPtr(b bool) *bool { return &b }

func newTestService(t *testing.T) (*Service, *MockEmailSender, *MockSMSSender) {
	t.Helper()
	db := testutil.MongoDatabase(t)
	ctrl := gomock.NewController(t)
	email := NewMockEmailSender(ctrl)
	sms := NewMockSMSSender(ctrl)
	return NewService(db, email, sms, zap.NewNop()), email, sms
}

func TestCreateOrUpdatePreferencesDefaultsUnsetFieldsToEnabled(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	accountID := primitive.NewObjectID().Hex()

	prefs, err := svc.CreateOrUpdateAccountNotificationPreferences(ctx, accountID, PreferencesParams{SMSEnabled: boolPtr(false)})
	require.NoError(t, err)
	assert.True(t, prefs.EmailEnabled)
	assert.True(t, prefs.PushEnabled)
	assert.False(t, prefs.SMSEnabled)

	prefs, err = svc.CreateOrUpdateAccountNotificationPreferences(ctx, accountID, PreferencesParams{EmailEnabled: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, prefs.EmailEnabled)
	assert.False(t, prefs.SMSEnabled, "fields not in the update keep their value")

	stored, err := svc.GetAccountNotificationPreferencesByAccountID(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, prefs.ID, stored.ID)
}

func TestGetPreferencesNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetAccountNotificationPreferencesByAccountID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrPreferencesNotFound)
}

func TestSendEmailForAccountHonoursPreferences(t *testing.T) {
	svc, email, _ := newTestService(t)
	ctx := context.Background()
	accountID := primitive.NewObjectID().Hex()

	_, err := svc.CreateOrUpdateAccountNotificationPreferences(ctx, accountID, PreferencesParams{EmailEnabled: boolPtr(false)})
	require.NoError(t, err)

	// Disabled channel: nothing is sent.
	require.NoError(t, svc.SendEmailForAccount(ctx, accountID, false, resetEmail()))

	// Bypass always sends.
	email.EXPECT().SendEmail(gomock.Any(), resetEmail()).Return(nil)
	require.NoError(t, svc.SendEmailForAccount(ctx, accountID, true, resetEmail()))
}

func TestSendSMSForAccountWrapsProviderFailure(t *testing.T) {
	svc, _, sms := newTestService(t)
	ctx := context.Background()
	accountID := primitive.NewObjectID().Hex()

	params := SendSMSParams{
		MessageBody:    "hello",
		RecipientPhone: models.PhoneNumber{CountryCode: "+1", PhoneNumber: "5551234567"},
	}
	sms.EXPECT().SendSMS(gomock.Any(), params).Return(errors.New("provider down"))

	err := svc.SendSMSForAccount(ctx, accountID, false, params)
	assert.ErrorIs(t, err, ErrSMSSendFailed)
}
