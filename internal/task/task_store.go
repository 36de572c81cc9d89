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

// ownedFilter matches the active document id that belongs to accountID.
// Either id failing to parse means nothing can match.
func ownedFilter(id, accountID string) (bson.M, bool) {
	oid, ok := database.ParseObjectID(id)
	if !ok {
		return nil, false
	}
	owner, ok := database.ParseObjectID(accountID)
	if !ok {
		return nil, false
	}
	return bson.M{"_id": oid, "account_id": owner, "active": true}, true
}

type TaskReader struct {
	coll *mongo.Collection
}

func NewTaskReader(db *mongo.Database) *TaskReader {
	return &TaskReader{coll: db.Collection(database.TasksCollection)}
}

// Get is scoped to the owning account; another account's task is reported
// as not found.
func (r *TaskReader) Get(ctx context.Context, params GetTaskParams) (*models.Task, error) {
	filter, ok := ownedFilter(params.TaskID, params.AccountID)
	if !ok {
		return nil, taskNotFound(params.TaskID)
	}

	var task models.Task
	err := r.coll.FindOne(ctx, filter).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, taskNotFound(params.TaskID)
	}
	if err != nil {
		return nil, apperror.Internal("find task", err)
	}
	return &task, nil
}

func (r *TaskReader) GetPaginated(ctx context.Context, params GetPaginatedTasksParams) (database.PaginationResult[models.Task], error) {
	owner, ok := database.ParseObjectID(params.AccountID)
	if !ok {
		return database.PaginationResult[models.Task]{Items: []models.Task{}, PaginationParams: params.Pagination}, nil
	}

	result, err := database.FindPaginated[models.Task](ctx, r.coll,
		bson.M{"account_id": owner, "active": true}, params.Pagination, params.Sort)
	if err != nil {
		return result, apperror.Internal("list tasks", err)
	}
	return result, nil
}

type TaskWriter struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewTaskWriter(db *mongo.Database) *TaskWriter {
	return &TaskWriter{coll: db.Collection(database.TasksCollection), now: time.Now}
}

func (w *TaskWriter) Create(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	owner, ok := database.ParseObjectID(params.AccountID)
	if !ok {
		return nil, apperror.Internal("create task", fmt.Errorf("invalid account id %q", params.AccountID))
	}

	now := w.now()
	task := models.Task{
		AccountID:   owner,
		Title:       params.Title,
		Description: params.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := w.coll.InsertOne(ctx, task)
	if err != nil {
		return nil, apperror.Internal("insert task", err)
	}
	task.ID = database.InsertedObjectID(res)
	return &task, nil
}

func (w *TaskWriter) Update(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	filter, ok := ownedFilter(params.TaskID, params.AccountID)
	if !ok {
		return nil, taskNotFound(params.TaskID)
	}

	var task models.Task
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := w.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M{
		"title":       params.Title,
		"description": params.Description,
		"updated_at":  w.now(),
	}}, opts).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, taskNotFound(params.TaskID)
	}
	if err != nil {
		return nil, apperror.Internal("update task", err)
	}
	return &task, nil
}

func (w *TaskWriter) Delete(ctx context.Context, params DeleteTaskParams) (*models.TaskDeletionResult, error) {
	filter, ok := ownedFilter(params.TaskID, params.AccountID)
	if !ok {
		return nil, taskNotFound(params.TaskID)
	}

	deletedAt, matched, err := softDelete(ctx, w.coll, filter, w.now())
	if err != nil {
		return nil, apperror.Internal("delete task", err)
	}
	if !matched {
		return nil, taskNotFound(params.TaskID)
	}
	return &models.TaskDeletionResult{TaskID: params.TaskID, Success: true, DeletedAt: deletedAt}, nil
}

func softDelete(ctx context.Context, coll *mongo.Collection, filter bson.M, now time.Time) (time.Time, bool, error) {
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"active":     false,
		"deleted_at": now,
		"updated_at": now,
	}})
	if err != nil {
		return time.Time{}, false, err
	}
	return now, res.MatchedCount > 0, nil
}
