package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/apperror"
	"taskboard/internal/database"
	"taskboard/internal/models"
)

type PasswordResetTokenReader struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewPasswordResetTokenReader(db *mongo.Database) *PasswordResetTokenReader {
	return &PasswordResetTokenReader{coll: db.Collection(database.PasswordResetTokensCollection), now: time.Now}
}

// GetByAccountID returns the most recently issued token for the account.
func (r *PasswordResetTokenReader) GetByAccountID(ctx context.Context, accountID string) (*models.PasswordResetToken, error) {
	oid, ok := database.ParseObjectID(accountID)
	if !ok {
		return nil, ErrPasswordResetTokenNotFound.With("password reset token for account %s not found", accountID)
	}

	var token models.PasswordResetToken
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	err := r.coll.FindOne(ctx, bson.M{"account": oid}, opts).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPasswordResetTokenNotFound.With("password reset token for account %s not found", accountID)
	}
	if err != nil {
		return nil, apperror.Internal("find password reset token", err)
	}
	token.IsExpired = IsTokenExpired(r.now(), token.ExpiresAt)
	return &token, nil
}

// Verify checks token against the latest stored hash for the account.
func (r *PasswordResetTokenReader) Verify(ctx context.Context, accountID, token string) (*models.PasswordResetToken, error) {
	stored, err := r.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	switch {
	case stored.IsUsed:
		return nil, ErrPasswordResetTokenAlreadyUsed
	case stored.IsExpired:
		return nil, ErrPasswordResetTokenExpired
	case !ComparePassword(token, stored.Token):
		return nil, ErrPasswordResetTokenInvalid
	}
	return stored, nil
}

type PasswordResetTokenWriter struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewPasswordResetTokenWriter(db *mongo.Database) *PasswordResetTokenWriter {
	return &PasswordResetTokenWriter{coll: db.Collection(database.PasswordResetTokensCollection), now: time.Now}
}

// Create stores only the hash of token.
func (w *PasswordResetTokenWriter) Create(ctx context.Context, accountID, token string, ttl time.Duration) (*models.PasswordResetToken, error) {
	oid, ok := database.ParseObjectID(accountID)
	if !ok {
		return nil, apperror.Internal("create password reset token", fmt.Errorf("invalid account id %q", accountID))
	}

	hashed, err := HashPasswordResetToken(token)
	if err != nil {
		return nil, apperror.Internal("hash password reset token", err)
	}

	now := w.now()
	record := models.PasswordResetToken{
		Account:   oid,
		Token:     hashed,
		ExpiresAt: TokenExpiresAt(now, ttl),
		CreatedAt: now,
	}
	res, err := w.coll.InsertOne(ctx, record)
	if err != nil {
		return nil, apperror.Internal("insert password reset token", err)
	}
	record.ID = database.InsertedObjectID(res)
	return &record, nil
}

func (w *PasswordResetTokenWriter) SetAsUsed(ctx context.Context, tokenID string) (*models.PasswordResetToken, error) {
	oid, ok := database.ParseObjectID(tokenID)
	if !ok {
		return nil, ErrPasswordResetTokenNotFound.With("password reset token %s not found", tokenID)
	}

	var token models.PasswordResetToken
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := w.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"is_used": true}}, opts).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPasswordResetTokenNotFound.With("password reset token %s not found", tokenID)
	}
	if err != nil {
		return nil, apperror.Internal("mark password reset token used", err)
	}
	token.IsExpired = IsTokenExpired(w.now(), token.ExpiresAt)
	return &token, nil
}
