package task

import "taskboard/internal/database"

type CreateTaskParams struct {
	AccountID   string `json:"account_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type GetTaskParams struct {
	AccountID string `json:"account_id" validate:"required"`
	TaskID    string `json:"task_id" validate:"required"`
}

type GetPaginatedTasksParams struct {
	AccountID  string                    `json:"account_id" validate:"required"`
	Pagination database.PaginationParams `json:"pagination_params"`
	Sort       *database.SortParams      `json:"sort_params"`
}

type UpdateTaskParams struct {
	AccountID   string `json:"account_id" validate:"required"`
	TaskID      string `json:"task_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type DeleteTaskParams struct {
	AccountID string `json:"account_id" validate:"required"`
	TaskID    string `json:"task_id" validate:"required"`
}

type CreateCommentParams struct {
	AccountID string `json:"account_id" validate:"required"`
	TaskID    string `json:"task_id" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

type GetCommentParams struct {
	AccountID string `json:"account_id" validate:"required"`
	TaskID    string `json:"task_id" validate:"required"`
	CommentID string `json:"comment_id" validate:"required"`
}

type GetPaginatedCommentsParams struct {
	AccountID  string                    `json:"account_id" validate:"required"`
	TaskID     string                    `json:"task_id" validate:"required"`
	Pagination database.PaginationParams `json:"pagination_params"`
	Sort       *database.SortParams      `json:"sort_params"`
}

type UpdateCommentParams struct {
	AccountID string `json:"account_id" validate:"required"`
	TaskID    string `json:"task_id" validate:"required"`
	CommentID string `json:"comment_id" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

type DeleteCommentParams struct {
	AccountID string `json:"account_id" validate:"required"`
	TaskID    string `json:"task_id" validate:"required"`
	CommentID string `json:"comment_id" validate:"required"`
}
