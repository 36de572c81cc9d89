// Package testutil provides helpers for tests that need a real MongoDB.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"taskboard/internal/config"
	"taskboard/internal/database"
)

// MongoURIEnv names the variable that enables Mongo-backed tests.
const MongoURIEnv = "TEST_MONGODB_URI"

// MongoDatabase returns a fresh database for t and drops it on cleanup. The
// test is skipped when TEST_MONGODB_URI is unset.
func MongoDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(MongoURIEnv)
	if uri == "" {
		t.Skipf("%s not set; skipping MongoDB test", MongoURIEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, uri, 5*time.Second)
	require.NoError(t, err, "connect to test MongoDB")

	name := fmt.Sprintf("taskboard_test_%s", primitive.NewObjectID().Hex())
	db := client.Database(name)
	require.NoError(t, database.EnsureIndexes(ctx, db, zap.NewNop()))

	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})
	return db
}

// Config returns a configuration tree with the values the services need,
// overlaid with overrides (dotted keys).
func Config(overrides map[string]any) *config.Config {
	base := map[string]any{
		"web_app_host": "http://localhost:3000",
		"accounts": map[string]any{
			"token_signing_key":        "testing-signing-key-not-for-production",
			"token_expiry_days":        1,
			"token_expires_in_seconds": 3600,
		},
		"otp": map[string]any{
			"expires_in_seconds":    600,
			"default_otp_code":      "1234",
			"default_phone_numbers": []any{"+919999999999"},
		},
		"mailer": map[string]any{
			"default_email":                    "noreply@taskboard.test",
			"default_email_name":               "Taskboard",
			"forgot_password_mail_template_id": "d-forgot-password",
		},
	}
	for key, value := range overrides {
		setPath(base, key, value)
	}
	return config.New(base)
}

func setPath(tree map[string]any, key string, value any) {
	segments := strings.Split(key, ".")
	for _, segment := range segments[:len(segments)-1] {
		next, ok := tree[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			tree[segment] = next
		}
		tree = next
	}
	tree[segments[len(segments)-1]] = value
}
