package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID primitive.ObjectID `bson:"account_id" json:"account_id"`
	TaskID    primitive.ObjectID `bson:"task_id" json:"task_id"`
	Content   string             `bson:"content" json:"content"`
	Active    bool               `bson:"active" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time         `bson:"deleted_at,omitempty" json:"-"`
}

type CommentDeletionResult struct {
	CommentID string    `json:"comment_id"`
	Success   bool      `json:"success"`
	DeletedAt time.Time `json:"deleted_at"`
}
