package authentication

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/apperror"
	"taskboard/internal/database"
	"taskboard/internal/models"
)

// maxOTPAttempts wrong codes expire the pending OTP.
const maxOTPAttempts = 5

type OTPWriter struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewOTPWriter(db *mongo.Database) *OTPWriter {
	return &OTPWriter{coll: db.Collection(database.OTPsCollection), now: time.Now}
}

func phoneFilter(phone models.PhoneNumber) bson.M {
	return bson.M{
		"phone_number.country_code": phone.CountryCode,
		"phone_number.phone_number": phone.PhoneNumber,
	}
}

// Create expires any pending code for phone and stores a new one.
func (w *OTPWriter) Create(ctx context.Context, phone models.PhoneNumber, code string, ttl time.Duration) (*models.OTP, error) {
	pending := phoneFilter(phone)
	pending["status"] = models.OTPStatusPending
	if _, err := w.coll.UpdateMany(ctx, pending, bson.M{"$set": bson.M{"status": models.OTPStatusExpired}}); err != nil {
		return nil, apperror.Internal("expire pending otps", err)
	}

	now := w.now()
	otp := models.OTP{
		PhoneNumber: phone,
		OTPCode:     code,
		Status:      models.OTPStatusPending,
		ExpiresAt:   TokenExpiresAt(now, ttl),
		CreatedAt:   now,
	}
	res, err := w.coll.InsertOne(ctx, otp)
	if err != nil {
		return nil, apperror.Internal("insert otp", err)
	}
	otp.ID = database.InsertedObjectID(res)
	return &otp, nil
}

// Verify consumes the pending code for phone. A wrong code and a missing
// code fail the same way so the caller learns nothing about the number.
func (w *OTPWriter) Verify(ctx context.Context, phone models.PhoneNumber, code string) (*models.OTP, error) {
	filter := phoneFilter(phone)
	filter["status"] = models.OTPStatusPending

	var otp models.OTP
	err := w.coll.FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})).Decode(&otp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOTPIncorrect
	}
	if err != nil {
		return nil, apperror.Internal("find otp", err)
	}
	if otp.OTPCode != code {
		if err := w.recordFailedAttempt(ctx, otp.ID); err != nil {
			return nil, err
		}
		return nil, ErrOTPIncorrect
	}

	if IsTokenExpired(w.now(), otp.ExpiresAt) {
		if _, err := w.coll.UpdateOne(ctx, bson.M{"_id": otp.ID}, bson.M{"$set": bson.M{"status": models.OTPStatusExpired}}); err != nil {
			return nil, apperror.Internal("expire otp", err)
		}
		return nil, ErrOTPExpired
	}

	// Matching on status as well makes the transition single use even when
	// two verifications race.
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = w.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": otp.ID, "status": models.OTPStatusPending},
		bson.M{"$set": bson.M{"status": models.OTPStatusSuccess}},
		opts,
	).Decode(&otp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOTPIncorrect
	}
	if err != nil {
		return nil, apperror.Internal("consume otp", err)
	}
	return &otp, nil
}

func (w *OTPWriter) recordFailedAttempt(ctx context.Context, id primitive.ObjectID) error {
	var otp models.OTP
	err := w.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": models.OTPStatusPending},
		bson.M{"$inc": bson.M{"attempts": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&otp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return apperror.Internal("record otp attempt", err)
	}
	if otp.Attempts < maxOTPAttempts {
		return nil
	}

	_, err = w.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.OTPStatusPending},
		bson.M{"$set": bson.M{"status": models.OTPStatusExpired}},
	)
	if err != nil {
		return apperror.Internal("expire otp", err)
	}
	return nil
}
