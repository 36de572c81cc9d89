package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"taskboard/internal/apperror"
)

type TemporalOptions struct {
	HostPort  string
	Namespace string
}

// TemporalClient adapts a Temporal SDK client to WorkflowClient.
type TemporalClient struct {
	client client.Client
}

// TemporalDialer dials the Temporal frontend described by opts.
func TemporalDialer(opts TemporalOptions) Dialer {
	return func(ctx context.Context) (WorkflowClient, error) {
		c, err := client.DialContext(ctx, client.Options{
			HostPort:  opts.HostPort,
			Namespace: opts.Namespace,
		})
		if err != nil {
			return nil, err
		}
		return &TemporalClient{client: c}, nil
	}
}

// Start returns the run of an already running workflow with the same id
// instead of failing.
func (t *TemporalClient) Start(ctx context.Context, opts StartOptions) (string, error) {
	run, err := t.client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           opts.ID,
		TaskQueue:    opts.TaskQueue,
		CronSchedule: opts.CronSchedule,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	}, opts.WorkerType, opts.Args...)
	if err != nil {
		return "", err
	}
	return run.GetRunID(), nil
}

func (t *TemporalClient) Describe(ctx context.Context, workerID string) (Worker, error) {
	resp, err := t.client.DescribeWorkflowExecution(ctx, workerID, "")
	if err != nil {
		return Worker{}, workflowError("describe workflow", workerID, err)
	}
	info := resp.GetWorkflowExecutionInfo()
	if info == nil {
		return Worker{}, apperror.Internal("describe workflow", fmt.Errorf("no execution info for %s", workerID))
	}

	worker := Worker{
		ID:     info.GetExecution().GetWorkflowId(),
		RunID:  info.GetExecution().GetRunId(),
		Type:   info.GetType().GetName(),
		Status: info.GetStatus().String(),
	}
	if start := info.GetStartTime(); start != nil {
		worker.StartTime = start.AsTime()
	}
	if closed := info.GetCloseTime(); closed != nil {
		closeTime := closed.AsTime()
		worker.CloseTime = &closeTime
	}
	return worker, nil
}

func (t *TemporalClient) Cancel(ctx context.Context, workerID string) error {
	return workflowError("cancel workflow", workerID, t.client.CancelWorkflow(ctx, workerID, ""))
}

func (t *TemporalClient) Terminate(ctx context.Context, workerID, reason string) error {
	return workflowError("terminate workflow", workerID, t.client.TerminateWorkflow(ctx, workerID, "", reason))
}

// workflowError maps a missing workflow to ErrWorkerNotFound and anything
// else the server reports to an internal error.
func workflowError(op, workerID string, err error) error {
	if err == nil {
		return nil
	}
	var notFound *serviceerror.NotFound
	if errors.As(err, &notFound) {
		return ErrWorkerNotFound.With("worker %s not found", workerID)
	}
	return apperror.Internal(op, err)
}

func (t *TemporalClient) Close() {
	t.client.Close()
}
