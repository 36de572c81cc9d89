package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhoneNumber is stored split so lookups do not depend on formatting.
type PhoneNumber struct {
	CountryCode string `bson:"country_code" json:"country_code" validate:"required"`
	PhoneNumber string `bson:"phone_number" json:"phone_number" validate:"required"`
}

// String renders the number in E.164 form.
func (p PhoneNumber) String() string {
	return p.CountryCode + p.PhoneNumber
}

// Account is the root aggregate for OTPs, password reset tokens and
// notification preferences.
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName      string             `bson:"first_name" json:"first_name"`
	LastName       string             `bson:"last_name" json:"last_name"`
	Username       string             `bson:"username,omitempty" json:"username,omitempty"`
	PhoneNumber    *PhoneNumber       `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	HashedPassword string             `bson:"hashed_password,omitempty" json:"-"`
	Active         bool               `bson:"active" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
	DeletedAt      *time.Time         `bson:"deleted_at,omitempty" json:"-"`
}

type AccountDeletionResult struct {
	AccountID string    `json:"account_id"`
	Success   bool      `json:"success"`
	DeletedAt time.Time `json:"deleted_at"`
}
