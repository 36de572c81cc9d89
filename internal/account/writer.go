package account

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/apperror"
	"taskboard/internal/authentication"
	"taskboard/internal/database"
	"taskboard/internal/models"
)

type Writer struct {
	coll   *mongo.Collection
	reader *Reader
	now    func() time.Time
}

func NewWriter(db *mongo.Database, reader *Reader) *Writer {
	return &Writer{coll: db.Collection(database.AccountsCollection), reader: reader, now: time.Now}
}

func (w *Writer) CreateByUsernameAndPassword(ctx context.Context, params CreateAccountByUsernameAndPasswordParams) (*models.Account, error) {
	taken, err := w.reader.usernameTaken(ctx, params.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameAlreadyExists.With("an account with username %s already exists", params.Username)
	}

	hashed, err := authentication.HashPassword(params.Password)
	if err != nil {
		return nil, apperror.Internal("hash password", err)
	}

	now := w.now()
	account := models.Account{
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Username:       params.Username,
		HashedPassword: hashed,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return w.insert(ctx, account, ErrUsernameAlreadyExists)
}

func (w *Writer) CreateByPhoneNumber(ctx context.Context, params CreateAccountByPhoneNumberParams) (*models.Account, error) {
	taken, err := w.reader.phoneNumberTaken(ctx, params.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPhoneNumberAlreadyExists.With("an account with phone number %s already exists", params.PhoneNumber.String())
	}

	now := w.now()
	phone := params.PhoneNumber
	account := models.Account{
		PhoneNumber: &phone,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return w.insert(ctx, account, ErrPhoneNumberAlreadyExists)
}

// insert maps a unique index violation to conflict, covering the window
// between the existence check and the write.
func (w *Writer) insert(ctx context.Context, account models.Account, conflict *apperror.Error) (*models.Account, error) {
	res, err := w.coll.InsertOne(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return nil, conflict
	}
	if err != nil {
		return nil, apperror.Internal("insert account", err)
	}
	account.ID = database.InsertedObjectID(res)
	return &account, nil
}

func (w *Writer) UpdatePassword(ctx context.Context, accountID, password string) (*models.Account, error) {
	hashed, err := authentication.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal("hash password", err)
	}
	return w.update(ctx, accountID, bson.M{"hashed_password": hashed})
}

func (w *Writer) UpdateProfile(ctx context.Context, accountID string, params UpdateAccountProfileParams) (*models.Account, error) {
	set := bson.M{}
	if params.FirstName != nil {
		set["first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		set["last_name"] = *params.LastName
	}
	return w.update(ctx, accountID, set)
}

func (w *Writer) update(ctx context.Context, accountID string, set bson.M) (*models.Account, error) {
	oid, ok := database.ParseObjectID(accountID)
	if !ok {
		return nil, accountNotFound(accountID)
	}
	set["updated_at"] = w.now()

	var account models.Account
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := w.coll.FindOneAndUpdate(ctx, activeFilter(bson.M{"_id": oid}), bson.M{"$set": set}, opts).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, accountNotFound(accountID)
	}
	if err != nil {
		return nil, apperror.Internal("update account", err)
	}
	return &account, nil
}

// Delete soft deletes the account. Its username and phone number become
// free for new accounts.
func (w *Writer) Delete(ctx context.Context, accountID string) (*models.AccountDeletionResult, error) {
	oid, ok := database.ParseObjectID(accountID)
	if !ok {
		return nil, accountNotFound(accountID)
	}

	now := w.now()
	res, err := w.coll.UpdateOne(ctx,
		activeFilter(bson.M{"_id": oid}),
		bson.M{"$set": bson.M{"active": false, "deleted_at": now, "updated_at": now}},
	)
	if err != nil {
		return nil, apperror.Internal("delete account", err)
	}
	if res.MatchedCount == 0 {
		return nil, accountNotFound(accountID)
	}
	return &models.AccountDeletionResult{AccountID: accountID, Success: true, DeletedAt: now}, nil
}
