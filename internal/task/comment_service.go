package task

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"taskboard/internal/database"
	"taskboard/internal/models"
	"taskboard/internal/validation"
)

// CommentService resolves the parent task, scoped to the caller's account,
// before every operation. A missing or foreign task fails with
// ErrTaskNotFound and the comments collection is never touched.
type CommentService struct {
	tasks  *TaskReader
	reader *CommentReader
	writer *CommentWriter
	log    *zap.Logger
}

func NewCommentService(db *mongo.Database, log *zap.Logger) *CommentService {
	return &CommentService{
		tasks:  NewTaskReader(db),
		reader: NewCommentReader(db),
		writer: NewCommentWriter(db),
		log:    log.Named("comment"),
	}
}

func (s *CommentService) requireTask(ctx context.Context, params any, accountID, taskID string) error {
	if err := validation.Struct(params); err != nil {
		return err
	}
	_, err := s.tasks.Get(ctx, GetTaskParams{AccountID: accountID, TaskID: taskID})
	return err
}

func (s *CommentService) Create(ctx context.Context, params CreateCommentParams) (*models.Comment, error) {
	if err := s.requireTask(ctx, params, params.AccountID, params.TaskID); err != nil {
		return nil, err
	}
	comment, err := s.writer.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	s.log.Debug("comment created", zap.String("task_id", params.TaskID), zap.String("comment_id", comment.ID.Hex()))
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, params GetCommentParams) (*models.Comment, error) {
	if err := s.requireTask(ctx, params, params.AccountID, params.TaskID); err != nil {
		return nil, err
	}
	return s.reader.Get(ctx, params)
}

func (s *CommentService) GetPaginated(ctx context.Context, params GetPaginatedCommentsParams) (database.PaginationResult[models.Comment], error) {
	if err := s.requireTask(ctx, params, params.AccountID, params.TaskID); err != nil {
		return database.PaginationResult[models.Comment]{}, err
	}
	return s.reader.GetPaginated(ctx, params)
}

func (s *CommentService) Update(ctx context.Context, params UpdateCommentParams) (*models.Comment, error) {
	if err := s.requireTask(ctx, params, params.AccountID, params.TaskID); err != nil {
		return nil, err
	}
	return s.writer.Update(ctx, params)
}

func (s *CommentService) Delete(ctx context.Context, params DeleteCommentParams) (*models.CommentDeletionResult, error) {
	if err := s.requireTask(ctx, params, params.AccountID, params.TaskID); err != nil {
		return nil, err
	}
	return s.writer.Delete(ctx, params)
}
