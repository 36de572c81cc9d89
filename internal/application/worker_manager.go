package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WorkerManager dispatches workers by type name to the workflow server.
// Worker implementations live in the worker processes, not here.
type WorkerManager struct {
	dial      Dialer
	taskQueue string
	log       *zap.Logger

	mu     sync.RWMutex
	client WorkflowClient
}

func NewWorkerManager(dial Dialer, taskQueue string, log *zap.Logger) *WorkerManager {
	return &WorkerManager{dial: dial, taskQueue: taskQueue, log: log.Named("worker_manager")}
}

// Connect dials the workflow server once; later calls are no-ops.
func (m *WorkerManager) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client != nil {
		return nil
	}

	c, err := m.dial(ctx)
	if err != nil {
		m.log.Error("workflow server connection failed", zap.Error(err))
		return ErrWorkflowServerNotConnected.Wrap(err)
	}
	m.client = c
	m.log.Info("workflow server connected", zap.String("task_queue", m.taskQueue))
	return nil
}

func (m *WorkerManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client != nil {
		m.client.Close()
		m.client = nil
	}
}

func (m *WorkerManager) connected() (WorkflowClient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.client == nil {
		return nil, ErrWorkflowServerNotConnected
	}
	return m.client, nil
}

func (m *WorkerManager) GetWorkerByID(ctx context.Context, workerID string) (Worker, error) {
	c, err := m.connected()
	if err != nil {
		return Worker{}, err
	}
	return c.Describe(ctx, workerID)
}

// RunWorkerImmediately starts a one-off run and returns its worker id.
func (m *WorkerManager) RunWorkerImmediately(ctx context.Context, workerType string, args ...any) (string, error) {
	c, err := m.connected()
	if err != nil {
		return "", err
	}

	id := fmt.Sprintf("%s-%s", workerType, uuid.NewString())
	if _, err := c.Start(ctx, StartOptions{ID: id, WorkerType: workerType, TaskQueue: m.taskQueue, Args: args}); err != nil {
		m.log.Error("worker start failed", zap.String("worker_type", workerType), zap.Error(err))
		return "", ErrWorkerStartFailed.Wrap(err)
	}
	m.log.Info("worker started", zap.String("worker_type", workerType), zap.String("worker_id", id))
	return id, nil
}

// ScheduleWorkerAsCron registers workerType on cronSchedule. The id is
// derived from the type, so scheduling the same type twice keeps one
// schedule.
func (m *WorkerManager) ScheduleWorkerAsCron(ctx context.Context, workerType, cronSchedule string) (string, error) {
	c, err := m.connected()
	if err != nil {
		return "", err
	}

	id := workerType + "-cron"
	_, err = c.Start(ctx, StartOptions{ID: id, WorkerType: workerType, TaskQueue: m.taskQueue, CronSchedule: cronSchedule})
	if err != nil {
		m.log.Error("cron worker start failed", zap.String("worker_type", workerType), zap.Error(err))
		return "", ErrWorkerStartFailed.Wrap(err)
	}
	m.log.Info("cron worker scheduled", zap.String("worker_id", id), zap.String("cron", cronSchedule))
	return id, nil
}

func (m *WorkerManager) CancelWorker(ctx context.Context, workerID string) error {
	c, err := m.connected()
	if err != nil {
		return err
	}
	return c.Cancel(ctx, workerID)
}

func (m *WorkerManager) TerminateWorker(ctx context.Context, workerID string) error {
	c, err := m.connected()
	if err != nil {
		return err
	}
	return c.Terminate(ctx, workerID, "terminated by application")
}
