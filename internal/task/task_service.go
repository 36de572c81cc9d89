// Package task holds tasks and the comments written on them.
package task

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"taskboard/internal/database"
	"taskboard/internal/models"
	"taskboard/internal/validation"
)

type TaskService struct {
	reader *TaskReader
	writer *TaskWriter
	log    *zap.Logger
}

func NewTaskService(db *mongo.Database, log *zap.Logger) *TaskService {
	return &TaskService{
		reader: NewTaskReader(db),
		writer: NewTaskWriter(db),
		log:    log.Named("task"),
	}
}

func (s *TaskService) Create(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}
	task, err := s.writer.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	s.log.Debug("task created", zap.String("account_id", params.AccountID), zap.String("task_id", task.ID.Hex()))
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, params GetTaskParams) (*models.Task, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}
	return s.reader.Get(ctx, params)
}

func (s *TaskService) GetPaginated(ctx context.Context, params GetPaginatedTasksParams) (database.PaginationResult[models.Task], error) {
	if err := validation.Struct(params); err != nil {
		return database.PaginationResult[models.Task]{}, err
	}
	return s.reader.GetPaginated(ctx, params)
}

func (s *TaskService) Update(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}
	return s.writer.Update(ctx, params)
}

func (s *TaskService) Delete(ctx context.Context, params DeleteTaskParams) (*models.TaskDeletionResult, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}
	result, err := s.writer.Delete(ctx, params)
	if err != nil {
		return nil, err
	}
	s.log.Debug("task deleted", zap.String("account_id", params.AccountID), zap.String("task_id", params.TaskID))
	return result, nil
}
