package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationPreferences struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID    primitive.ObjectID `bson:"account_id" json:"account_id"`
	EmailEnabled bool               `bson:"email_enabled" json:"email_enabled"`
	PushEnabled  bool               `bson:"push_enabled" json:"push_enabled"`
	SMSEnabled   bool               `bson:"sms_enabled" json:"sms_enabled"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
