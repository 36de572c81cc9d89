package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/apperror"
	"taskboard/internal/database"
	"taskboard/internal/models"
)

// commentFilter matches an active comment on taskID written by accountID.
func commentFilter(commentID, taskID, accountID string) (bson.M, bool) {
	filter, ok := ownedFilter(commentID, accountID)
	if !ok {
		return nil, false
	}
	task, ok := database.ParseObjectID(taskID)
	if !ok {
		return nil, false
	}
	filter["task_id"] = task
	return filter, true
}

type CommentReader struct {
	coll *mongo.Collection
}

func NewCommentReader(db *mongo.Database) *CommentReader {
	return &CommentReader{coll: db.Collection(database.CommentsCollection)}
}

func (r *CommentReader) Get(ctx context.Context, params GetCommentParams) (*models.Comment, error) {
	filter, ok := commentFilter(params.CommentID, params.TaskID, params.AccountID)
	if !ok {
		return nil, commentNotFound(params.CommentID)
	}

	var comment models.Comment
	err := r.coll.FindOne(ctx, filter).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, commentNotFound(params.CommentID)
	}
	if err != nil {
		return nil, apperror.Internal("find comment", err)
	}
	return &comment, nil
}

func (r *CommentReader) GetPaginated(ctx context.Context, params GetPaginatedCommentsParams) (database.PaginationResult[models.Comment], error) {
	owner, okOwner := database.ParseObjectID(params.AccountID)
	task, okTask := database.ParseObjectID(params.TaskID)
	if !okOwner || !okTask {
		return database.PaginationResult[models.Comment]{Items: []models.Comment{}, PaginationParams: params.Pagination}, nil
	}

	filter := bson.M{"account_id": owner, "task_id": task, "active": true}
	result, err := database.FindPaginated[models.Comment](ctx, r.coll, filter, params.Pagination, params.Sort)
	if err != nil {
		return result, apperror.Internal("list comments", err)
	}
	return result, nil
}

type CommentWriter struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewCommentWriter(db *mongo.Database) *CommentWriter {
	return &CommentWriter{coll: db.Collection(database.CommentsCollection), now: time.Now}
}

func (w *CommentWriter) Create(ctx context.Context, params CreateCommentParams) (*models.Comment, error) {
	owner, okOwner := database.ParseObjectID(params.AccountID)
	task, okTask := database.ParseObjectID(params.TaskID)
	if !okOwner || !okTask {
		return nil, apperror.Internal("create comment", fmt.Errorf("invalid ids account=%q task=%q", params.AccountID, params.TaskID))
	}

	now := w.now()
	comment := models.Comment{
		AccountID: owner,
		TaskID:    task,
		Content:   params.Content,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := w.coll.InsertOne(ctx, comment)
	if err != nil {
		return nil, apperror.Internal("insert comment", err)
	}
	comment.ID = database.InsertedObjectID(res)
	return &comment, nil
}

func (w *CommentWriter) Update(ctx context.Context, params UpdateCommentParams) (*models.Comment, error) {
	filter, ok := commentFilter(params.CommentID, params.TaskID, params.AccountID)
	if !ok {
		return nil, commentNotFound(params.CommentID)
	}

	var comment models.Comment
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := w.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M{
		"content":    params.Content,
		"updated_at": w.now(),
	}}, opts).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, commentNotFound(params.CommentID)
	}
	if err != nil {
		return nil, apperror.Internal("update comment", err)
	}
	return &comment, nil
}

func (w *CommentWriter) Delete(ctx context.Context, params DeleteCommentParams) (*models.CommentDeletionResult, error) {
	filter, ok := commentFilter(params.CommentID, params.TaskID, params.AccountID)
	if !ok {
		return nil, commentNotFound(params.CommentID)
	}

	deletedAt, matched, err := softDelete(ctx, w.coll, filter, w.now())
	if err != nil {
		return nil, apperror.Internal("delete comment", err)
	}
	if !matched {
		return nil, commentNotFound(params.CommentID)
	}
	return &models.CommentDeletionResult{CommentID: params.CommentID, Success: true, DeletedAt: deletedAt}, nil
}
