package application

import "taskboard/internal/apperror"

var (
	ErrWorkflowServerNotConnected = apperror.New(apperror.KindUnavailable, "APPLICATION_ERR_01", "workflow server is not connected")
	ErrWorkerNotFound             = apperror.New(apperror.KindNotFound, "APPLICATION_ERR_02", "worker not found")
	ErrWorkerStartFailed          = apperror.New(apperror.KindUnavailable, "APPLICATION_ERR_03", "worker could not be started")
)
