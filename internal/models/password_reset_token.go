package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PasswordResetToken only ever stores the bcrypt hash of the token that was
// mailed out.
type PasswordResetToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Account   primitive.ObjectID `bson:"account" json:"account"`
	Token     string             `bson:"token" json:"-"`
	IsUsed    bool               `bson:"is_used" json:"is_used"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	IsExpired bool               `bson:"-" json:"is_expired"`
}
