package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"taskboard/internal/database"
)

// These run against the driver's mock deployment, so they need no server.
// Only the task lookup has a queued reply; any comment command would fail
// with a different error.
func TestCommentOperationsStopAtMissingTask(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	accountID := primitive.NewObjectID().Hex()
	taskID := primitive.NewObjectID().Hex()
	commentID := primitive.NewObjectID().Hex()

	ops := map[string]func(*CommentService) error{
		"create": func(s *CommentService) error {
			_, err := s.Create(context.Background(), CreateCommentParams{AccountID: accountID, TaskID: taskID, Content: "hi"})
			return err
		},
		"get": func(s *CommentService) error {
			_, err := s.Get(context.Background(), GetCommentParams{AccountID: accountID, TaskID: taskID, CommentID: commentID})
			return err
		},
		"update": func(s *CommentService) error {
			_, err := s.Update(context.Background(), UpdateCommentParams{AccountID: accountID, TaskID: taskID, CommentID: commentID, Content: "edited"})
			return err
		},
		"delete": func(s *CommentService) error {
			_, err := s.Delete(context.Background(), DeleteCommentParams{AccountID: accountID, TaskID: taskID, CommentID: commentID})
			return err
		},
	}

	for name, op := range ops {
		mt.Run(name, func(mt *mtest.T) {
			ns := mt.DB.Name() + "." + database.TasksCollection
			mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

			err := op(NewCommentService(mt.DB, zap.NewNop()))
			assert.ErrorIs(mt, err, ErrTaskNotFound)

			for _, started := range mt.GetAllStartedEvents() {
				coll, _ := started.Command.Lookup(started.CommandName).StringValueOK()
				assert.NotEqual(mt, database.CommentsCollection, coll, "%s touched comments", started.CommandName)
			}
		})
	}
}
