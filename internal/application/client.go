package application

import "context"

//go:generate mockgen -source=client.go -destination=mock_client.go -package=application

// WorkflowClient is the part of the workflow server the manager drives.
type WorkflowClient interface {
	Start(ctx context.Context, opts StartOptions) (runID string, err error)
	Describe(ctx context.Context, workerID string) (Worker, error)
	Cancel(ctx context.Context, workerID string) error
	Terminate(ctx context.Context, workerID, reason string) error
	Close()
}

// Dialer opens a WorkflowClient.
type Dialer func(ctx context.Context) (WorkflowClient, error)
