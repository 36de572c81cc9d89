// Package database holds the MongoDB plumbing shared by every reader and
// writer: connection, index setup, pagination and id parsing.
package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	AccountsCollection                = "accounts"
	OTPsCollection                    = "otps"
	PasswordResetTokensCollection     = "password_reset_tokens"
	TasksCollection                   = "tasks"
	CommentsCollection                = "comments"
	NotificationPreferencesCollection = "notification_preferences"
)

// Connect dials uri and verifies the primary is reachable.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Ping checks the connection behind db with a short timeout.
func Ping(ctx context.Context, db *mongo.Database) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Client().Ping(checkCtx, readpref.Primary())
}

// ParseObjectID parses a hex id. Malformed ids are reported as not ok so
// callers can treat them like ids that match nothing.
func ParseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// InsertedObjectID returns the generated _id of an insert, or the zero id if
// the driver reported something else.
func InsertedObjectID(res *mongo.InsertOneResult) primitive.ObjectID {
	if res == nil {
		return primitive.NilObjectID
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid
}
