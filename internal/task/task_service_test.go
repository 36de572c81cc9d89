package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"taskboard/internal/database"
	"taskboard/internal/models"
	"taskboard/internal/testutil"
	"taskboard/internal/validation"
)

const nonExistentID = "507f1f77bcf86cd799439011"

func newAccountID() string { return primitive.NewObjectID().Hex() }

func createTask(t *testing.T, svc *TaskService, accountID, title string) *models.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), CreateTaskParams{
		AccountID:   accountID,
		Title:       title,
		Description: "description of " + title,
	})
	require.NoError(t, err)
	return task
}

func newTaskService(t *testing.T) (*TaskService, *mongo.Database) {
	t.Helper()
	db := testutil.MongoDatabase(t)
	return NewTaskService(db, zap.NewNop()), db
}

func TestCreateAndGetTask(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()
	accountID := newAccountID()

	created := createTask(t, svc, accountID, "Write docs")
	assert.Equal(t, accountID, created.AccountID.Hex())

	got, err := svc.Get(ctx, GetTaskParams{AccountID: accountID, TaskID: created.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, "Write docs", got.Title)
	assert.Equal(t, "description of Write docs", got.Description)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.Create(context.Background(), CreateTaskParams{AccountID: newAccountID()})
	assert.ErrorIs(t, err, validation.ErrInvalidParams)
}

func TestGetTaskIsScopedToAccount(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()
	created := createTask(t, svc, newAccountID(), "Private")

	_, err := svc.Get(ctx, GetTaskParams{AccountID: newAccountID(), TaskID: created.ID.Hex()})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Get(ctx, GetTaskParams{AccountID: newAccountID(), TaskID: nonExistentID})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestGetPaginatedTasks(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()
	accountID := newAccountID()
	for i := 0; i < 5; i++ {
		createTask(t, svc, accountID, fmt.Sprintf("task %d", i))
	}
	createTask(t, svc, newAccountID(), "someone else's")

	page1, err := svc.GetPaginated(ctx, GetPaginatedTasksParams{
		AccountID:  accountID,
		Pagination: database.PaginationParams{Page: 1, Size: 3},
		Sort:       &database.SortParams{SortBy: "title", SortDirection: database.SortAscending},
	})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 3)
	assert.EqualValues(t, 5, page1.TotalCount)
	assert.EqualValues(t, 2, page1.TotalPages)
	assert.Equal(t, "task 0", page1.Items[0].Title)

	page2, err := svc.GetPaginated(ctx, GetPaginatedTasksParams{
		AccountID:  accountID,
		Pagination: database.PaginationParams{Page: 2, Size: 3},
		Sort:       &database.SortParams{SortBy: "title", SortDirection: database.SortAscending},
	})
	require.NoError(t, err)
	assert.Len(t, page2.Items, 2)
	assert.Equal(t, "task 4", page2.Items[1].Title)
}

func TestUpdateTask(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()
	accountID := newAccountID()
	created := createTask(t, svc, accountID, "Original")

	updated, err := svc.Update(ctx, UpdateTaskParams{
		AccountID:   accountID,
		TaskID:      created.ID.Hex(),
		Title:       "Updated",
		Description: "new description",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, "new description", updated.Description)

	_, err = svc.Update(ctx, UpdateTaskParams{AccountID: newAccountID(), TaskID: created.ID.Hex(), Title: "Hijack"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()
	accountID := newAccountID()
	created := createTask(t, svc, accountID, "Short lived")

	result, err := svc.Delete(ctx, DeleteTaskParams{AccountID: accountID, TaskID: created.ID.Hex()})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, created.ID.Hex(), result.TaskID)
	assert.False(t, result.DeletedAt.IsZero())

	_, err = svc.Get(ctx, GetTaskParams{AccountID: accountID, TaskID: created.ID.Hex()})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Delete(ctx, DeleteTaskParams{AccountID: accountID, TaskID: created.ID.Hex()})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
