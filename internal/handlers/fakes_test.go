package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/account"
	"taskboard/internal/authentication"
	"taskboard/internal/database"
	"taskboard/internal/models"
	"taskboard/internal/task"
)

var (
	testAccountID = primitive.NewObjectID()
	testPhone     = models.PhoneNumber{CountryCode: "+1", PhoneNumber: "5550000"}
)

const testOTPCode = "1234"

// Each fake embeds its interface so methods a test does not exercise panic.

type fakeAccounts struct {
	Accounts
	created      *account.CreateAccountByUsernameAndPasswordParams
	createdPhone *models.PhoneNumber
	reset        *account.ResetPasswordParams
}

func (f *fakeAccounts) CreateByUsernameAndPassword(_ context.Context, params account.CreateAccountByUsernameAndPasswordParams) (*models.Account, error) {
	f.created = &params
	return &models.Account{ID: testAccountID, Username: params.Username, HashedPassword: "$2a$10$secret"}, nil
}

func (f *fakeAccounts) GetOrCreateByPhoneNumber(_ context.Context, params account.CreateAccountByPhoneNumberParams) (*models.Account, error) {
	f.createdPhone = &params.PhoneNumber
	return &models.Account{ID: testAccountID, PhoneNumber: &params.PhoneNumber}, nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id string) (*models.Account, error) {
	if id != testAccountID.Hex() {
		return nil, account.ErrAccountNotFound
	}
	return &models.Account{ID: testAccountID, Username: "jane@example.com"}, nil
}

func (f *fakeAccounts) GetByPhoneNumber(_ context.Context, phone models.PhoneNumber) (*models.Account, error) {
	if phone != testPhone {
		return nil, account.ErrAccountNotFound.With("account with phone number %s not found", phone)
	}
	return &models.Account{ID: testAccountID, PhoneNumber: &testPhone}, nil
}

func (f *fakeAccounts) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	if username != "jane@example.com" {
		return nil, account.ErrAccountNotFound.With("account with username %s not found", username)
	}
	return &models.Account{ID: testAccountID, Username: username}, nil
}

func (f *fakeAccounts) GetByUsernameAndPassword(_ context.Context, params account.AccountSearchParams) (*models.Account, error) {
	if params.Username != "jane@example.com" || params.Password != "correct-horse" {
		return nil, account.ErrInvalidCredentials
	}
	return &models.Account{ID: testAccountID, Username: params.Username}, nil
}

func (f *fakeAccounts) ResetPassword(_ context.Context, params account.ResetPasswordParams) (*models.Account, error) {
	f.reset = &params
	return &models.Account{ID: testAccountID}, nil
}

type fakeAuth struct {
	Authenticator
	resetsFor []string
}

const testBearer = "valid-token"

func (*fakeAuth) VerifyAccessToken(token string) (authentication.AccessTokenPayload, error) {
	if token != testBearer {
		return authentication.AccessTokenPayload{}, authentication.ErrAccessTokenInvalid
	}
	return authentication.AccessTokenPayload{AccountID: testAccountID.Hex()}, nil
}

func (*fakeAuth) CreateAccessTokenByUsernameAndPassword(acc *models.Account) (authentication.AccessToken, error) {
	return authentication.AccessToken{Token: "issued", AccountID: acc.ID.Hex(), ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (*fakeAuth) CreateAccessTokenByPhoneNumber(_ context.Context, params authentication.OTPBasedAuthParams, acc *models.Account) (authentication.AccessToken, error) {
	if params.OTPCode != testOTPCode {
		return authentication.AccessToken{}, authentication.ErrOTPIncorrect
	}
	return authentication.AccessToken{Token: "issued", AccountID: acc.ID.Hex(), ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeAuth) CreatePasswordResetToken(_ context.Context, acc *models.Account) (*models.PasswordResetToken, error) {
	f.resetsFor = append(f.resetsFor, acc.Username)
	return &models.PasswordResetToken{ID: primitive.NewObjectID(), Account: acc.ID}, nil
}

type fakeTasks struct {
	Tasks
	listed *task.GetPaginatedTasksParams
}

func (f *fakeTasks) GetPaginated(_ context.Context, params task.GetPaginatedTasksParams) (database.PaginationResult[models.Task], error) {
	f.listed = &params
	return database.PaginationResult[models.Task]{Items: []models.Task{}, PaginationParams: params.Pagination}, nil
}

type fakeComments struct {
	Comments
}

func (fakeComments) Create(_ context.Context, params task.CreateCommentParams) (*models.Comment, error) {
	return nil, task.ErrTaskNotFound.With("task %s not found", params.TaskID)
}
