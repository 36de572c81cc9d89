package account

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"taskboard/internal/apperror"
	"taskboard/internal/authentication"
	"taskboard/internal/database"
	"taskboard/internal/models"
)

type Reader struct {
	coll *mongo.Collection
}

func NewReader(db *mongo.Database) *Reader {
	return &Reader{coll: db.Collection(database.AccountsCollection)}
}

func activeFilter(filter bson.M) bson.M {
	filter["active"] = true
	return filter
}

func phoneFilter(phone models.PhoneNumber) bson.M {
	return activeFilter(bson.M{
		"phone_number.country_code": phone.CountryCode,
		"phone_number.phone_number": phone.PhoneNumber,
	})
}

// findOne returns nil, nil when nothing matches.
func (r *Reader) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	var account models.Account
	err := r.coll.FindOne(ctx, filter).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal("find account", err)
	}
	return &account, nil
}

func (r *Reader) GetByID(ctx context.Context, id string) (*models.Account, error) {
	oid, ok := database.ParseObjectID(id)
	if !ok {
		return nil, accountNotFound(id)
	}
	account, err := r.findOne(ctx, activeFilter(bson.M{"_id": oid}))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, accountNotFound(id)
	}
	return account, nil
}

func (r *Reader) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	account, err := r.findOne(ctx, activeFilter(bson.M{"username": username}))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound.With("account with username %s not found", username)
	}
	return account, nil
}

// GetByUsernameAndPassword reports an unknown username and a wrong password
// the same way.
func (r *Reader) GetByUsernameAndPassword(ctx context.Context, params AccountSearchParams) (*models.Account, error) {
	account, err := r.findOne(ctx, activeFilter(bson.M{"username": params.Username}))
	if err != nil {
		return nil, err
	}
	if account == nil || account.HashedPassword == "" ||
		!authentication.ComparePassword(params.Password, account.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (r *Reader) GetByPhoneNumber(ctx context.Context, phone models.PhoneNumber) (*models.Account, error) {
	account, err := r.GetByPhoneNumberOptional(ctx, phone)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound.With("account with phone number %s not found", phone.String())
	}
	return account, nil
}

// GetByPhoneNumberOptional returns nil, nil when no account has the number.
func (r *Reader) GetByPhoneNumberOptional(ctx context.Context, phone models.PhoneNumber) (*models.Account, error) {
	return r.findOne(ctx, phoneFilter(phone))
}

func (r *Reader) usernameTaken(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, activeFilter(bson.M{"username": username}))
	if err != nil {
		return false, apperror.Internal("count accounts", err)
	}
	return n > 0, nil
}

func (r *Reader) phoneNumberTaken(ctx context.Context, phone models.PhoneNumber) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, phoneFilter(phone))
	if err != nil {
		return false, apperror.Internal("count accounts", err)
	}
	return n > 0, nil
}
