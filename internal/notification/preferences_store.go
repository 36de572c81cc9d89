package notification

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/apperror"
	"taskboard/internal/database"
	"taskboard/internal/models"
)

type PreferencesReader struct {
	coll *mongo.Collection
}

func NewPreferencesReader(db *mongo.Database) *PreferencesReader {
	return &PreferencesReader{coll: db.Collection(database.NotificationPreferencesCollection)}
}

func (r *PreferencesReader) GetByAccountID(ctx context.Context, accountID string) (*models.NotificationPreferences, error) {
	oid, ok := database.ParseObjectID(accountID)
	if !ok {
		return nil, ErrPreferencesNotFound.With("notification preferences for account %s not found", accountID)
	}

	var prefs models.NotificationPreferences
	err := r.coll.FindOne(ctx, bson.M{"account_id": oid}).Decode(&prefs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPreferencesNotFound.With("notification preferences for account %s not found", accountID)
	}
	if err != nil {
		return nil, apperror.Internal("find notification preferences", err)
	}
	return &prefs, nil
}

type PreferencesWriter struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewPreferencesWriter(db *mongo.Database) *PreferencesWriter {
	return &PreferencesWriter{coll: db.Collection(database.NotificationPreferencesCollection), now: time.Now}
}

// CreateOrUpdate upserts the preferences for accountID. Fields left nil keep
// their stored value, or start enabled on insert.
func (w *PreferencesWriter) CreateOrUpdate(ctx context.Context, accountID string, params PreferencesParams) (*models.NotificationPreferences, error) {
	oid, ok := database.ParseObjectID(accountID)
	if !ok {
		return nil, ErrPreferencesNotFound.With("account %s not found", accountID)
	}

	now := w.now()
	set := bson.M{"updated_at": now}
	setOnInsert := bson.M{"account_id": oid, "created_at": now}
	for field, value := range map[string]*bool{
		"email_enabled": params.EmailEnabled,
		"push_enabled":  params.PushEnabled,
		"sms_enabled":   params.SMSEnabled,
	} {
		if value != nil {
			set[field] = *value
		} else {
			setOnInsert[field] = true
		}
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var prefs models.NotificationPreferences
	err := w.coll.FindOneAndUpdate(ctx,
		bson.M{"account_id": oid},
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		opts,
	).Decode(&prefs)
	if err != nil {
		return nil, apperror.Internal("upsert notification preferences", err)
	}
	return &prefs, nil
}
