package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexGroups() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: AccountsCollection,
			models: []mongo.IndexModel{
				{
					Keys: bson.D{{Key: "username", Value: 1}},
					Options: options.Index().
						SetName("username_active_unique").
						SetUnique(true).
						SetPartialFilterExpression(bson.M{
							"active":   true,
							"username": bson.M{"$exists": true},
						}),
				},
				{
					Keys:    bson.D{{Key: "phone_number.country_code", Value: 1}, {Key: "phone_number.phone_number", Value: 1}},
					Options: options.Index().SetName("phone_number_index"),
				},
			},
		},
		{
			collection: OTPsCollection,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "phone_number.phone_number", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("phone_number_status_index"),
			}},
		},
		{
			collection: PasswordResetTokensCollection,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "account", Value: 1}},
				Options: options.Index().SetName("account_index"),
			}},
		},
		{
			collection: TasksCollection,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "account_id", Value: 1}, {Key: "active", Value: 1}},
				Options: options.Index().SetName("account_id_active_index"),
			}},
		},
		{
			collection: CommentsCollection,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "task_id", Value: 1}, {Key: "account_id", Value: 1}, {Key: "active", Value: 1}},
				Options: options.Index().SetName("task_id_account_id_active_index"),
			}},
		},
		{
			collection: NotificationPreferencesCollection,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "account_id", Value: 1}},
				Options: options.Index().SetName("account_id_unique").SetUnique(true),
			}},
		},
	}
}

// EnsureIndexes creates every index the readers rely on. A failing
// collection is logged and skipped; the first error is returned once all
// collections have been attempted.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	log = log.Named("database")

	var firstErr error
	for _, group := range indexGroups() {
		createCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		names, err := db.Collection(group.collection).Indexes().CreateMany(createCtx, group.models)
		cancel()
		if err != nil {
			log.Warn("index creation failed", zap.String("collection", group.collection), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Debug("indexes ensured", zap.String("collection", group.collection), zap.Strings("indexes", names))
	}
	return firstErr
}
