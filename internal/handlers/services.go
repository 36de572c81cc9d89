package handlers

import (
	"context"

	"taskboard/internal/account"
	"taskboard/internal/authentication"
	"taskboard/internal/database"
	"taskboard/internal/models"
	"taskboard/internal/notification"
	"taskboard/internal/task"
)

// Accounts is the account service as the API uses it.
type Accounts interface {
	CreateByUsernameAndPassword(ctx context.Context, params account.CreateAccountByUsernameAndPasswordParams) (*models.Account, error)
	GetOrCreateByPhoneNumber(ctx context.Context, params account.CreateAccountByPhoneNumberParams) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByPhoneNumber(ctx context.Context, phone models.PhoneNumber) (*models.Account, error)
	GetByUsernameAndPassword(ctx context.Context, params account.AccountSearchParams) (*models.Account, error)
	UpdateProfile(ctx context.Context, accountID string, params account.UpdateAccountProfileParams) (*models.Account, error)
	ResetPassword(ctx context.Context, params account.ResetPasswordParams) (*models.Account, error)
	CreateOrUpdateNotificationPreferences(ctx context.Context, accountID string, params notification.PreferencesParams) (*models.NotificationPreferences, error)
	GetNotificationPreferences(ctx context.Context, accountID string) (*models.NotificationPreferences, error)
	Delete(ctx context.Context, accountID string) (*models.AccountDeletionResult, error)
}

// Authenticator is the authentication service as the API uses it.
type Authenticator interface {
	CreateAccessTokenByUsernameAndPassword(account *models.Account) (authentication.AccessToken, error)
	CreateAccessTokenByPhoneNumber(ctx context.Context, params authentication.OTPBasedAuthParams, account *models.Account) (authentication.AccessToken, error)
	CreatePasswordResetToken(ctx context.Context, account *models.Account) (*models.PasswordResetToken, error)
	VerifyAccessToken(token string) (authentication.AccessTokenPayload, error)
}

type Tasks interface {
	Create(ctx context.Context, params task.CreateTaskParams) (*models.Task, error)
	Get(ctx context.Context, params task.GetTaskParams) (*models.Task, error)
	GetPaginated(ctx context.Context, params task.GetPaginatedTasksParams) (database.PaginationResult[models.Task], error)
	Update(ctx context.Context, params task.UpdateTaskParams) (*models.Task, error)
	Delete(ctx context.Context, params task.DeleteTaskParams) (*models.TaskDeletionResult, error)
}

type Comments interface {
	Create(ctx context.Context, params task.CreateCommentParams) (*models.Comment, error)
	Get(ctx context.Context, params task.GetCommentParams) (*models.Comment, error)
	GetPaginated(ctx context.Context, params task.GetPaginatedCommentsParams) (database.PaginationResult[models.Comment], error)
	Update(ctx context.Context, params task.UpdateCommentParams) (*models.Comment, error)
	Delete(ctx context.Context, params task.DeleteCommentParams) (*models.CommentDeletionResult, error)
}
