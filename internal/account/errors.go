package account

import "taskboard/internal/apperror"

var (
	ErrAccountNotFound          = apperror.New(apperror.KindNotFound, "ACCOUNT_ERR_01", "account not found")
	ErrUsernameAlreadyExists    = apperror.New(apperror.KindConflict, "ACCOUNT_ERR_02", "an account with this username already exists")
	ErrPhoneNumberAlreadyExists = apperror.New(apperror.KindConflict, "ACCOUNT_ERR_03", "an account with this phone number already exists")
	ErrInvalidCredentials       = apperror.New(apperror.KindInvalidCredentials, "ACCOUNT_ERR_04", "invalid username or password")
)

func accountNotFound(id string) error {
	return ErrAccountNotFound.With("account %s not found", id)
}
