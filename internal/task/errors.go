package task

import "taskboard/internal/apperror"

var (
	ErrTaskNotFound    = apperror.New(apperror.KindNotFound, "TASK_ERR_01", "task not found")
	ErrCommentNotFound = apperror.New(apperror.KindNotFound, "TASK_ERR_02", "comment not found")
)

func taskNotFound(id string) error {
	return ErrTaskNotFound.With("task %s not found", id)
}

func commentNotFound(id string) error {
	return ErrCommentNotFound.With("comment %s not found", id)
}
