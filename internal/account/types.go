package account

import "taskboard/internal/models"

type CreateAccountByUsernameAndPasswordParams struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type CreateAccountByPhoneNumberParams struct {
	PhoneNumber models.PhoneNumber `json:"phone_number"`
}

type AccountSearchParams struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordParams struct {
	AccountID   string `json:"account_id" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
	Token       string `json:"token" validate:"required"`
}

// UpdateAccountProfileParams leaves nil fields untouched.
type UpdateAccountProfileParams struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}
