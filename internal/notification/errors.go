package notification

import "taskboard/internal/apperror"

var (
	ErrPreferencesNotFound = apperror.New(apperror.KindNotFound, "NOTIFICATION_ERR_01", "notification preferences not found")
	ErrEmailSendFailed     = apperror.New(apperror.KindUnavailable, "NOTIFICATION_ERR_02", "email could not be sent")
	ErrSMSSendFailed       = apperror.New(apperror.KindUnavailable, "NOTIFICATION_ERR_03", "sms could not be sent")
)
