package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OTPStatus string

const (
	OTPStatusPending OTPStatus = "PENDING"
	OTPStatusSuccess OTPStatus = "SUCCESS"
	OTPStatusExpired OTPStatus = "EXPIRED"
)

type OTP struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PhoneNumber PhoneNumber        `bson:"phone_number" json:"phone_number"`
	OTPCode     string             `bson:"otp_code" json:"-"`
	Status      OTPStatus          `bson:"status" json:"status"`
	Attempts    int                `bson:"attempts" json:"-"`
	ExpiresAt   time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
