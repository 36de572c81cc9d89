// Package application dispatches background workers to the workflow server.
package application

import "context"

// Service is the entry point other packages use for background work.
type Service struct {
	manager *WorkerManager
}

func NewService(manager *WorkerManager) *Service {
	return &Service{manager: manager}
}

func (s *Service) ConnectWorkflowServer(ctx context.Context) error {
	return s.manager.Connect(ctx)
}

func (s *Service) GetWorkerByID(ctx context.Context, workerID string) (Worker, error) {
	return s.manager.GetWorkerByID(ctx, workerID)
}

func (s *Service) RunWorkerImmediately(ctx context.Context, workerType string, args ...any) (string, error) {
	return s.manager.RunWorkerImmediately(ctx, workerType, args...)
}

func (s *Service) ScheduleWorkerAsCron(ctx context.Context, workerType, cronSchedule string) (string, error) {
	return s.manager.ScheduleWorkerAsCron(ctx, workerType, cronSchedule)
}

func (s *Service) CancelWorker(ctx context.Context, workerID string) error {
	return s.manager.CancelWorker(ctx, workerID)
}

func (s *Service) TerminateWorker(ctx context.Context, workerID string) error {
	return s.manager.TerminateWorker(ctx, workerID)
}

func (s *Service) Close() {
	s.manager.Close()
}
