package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func connectedService(t *testing.T) (*Service, *MockWorkflowClient) {
	t.Helper()
	client := NewMockWorkflowClient(gomock.NewController(t))
	dial := func(context.Context) (WorkflowClient, error) { return client, nil }

	svc := NewService(NewWorkerManager(dial, "taskboard", zap.NewNop()))
	require.NoError(t, svc.ConnectWorkflowServer(context.Background()))
	return svc, client
}

func TestOperationsFailWhenNotConnected(t *testing.T) {
	dial := func(context.Context) (WorkflowClient, error) { return nil, errors.New("unreachable") }
	svc := NewService(NewWorkerManager(dial, "taskboard", zap.NewNop()))
	ctx := context.Background()

	assert.ErrorIs(t, svc.ConnectWorkflowServer(ctx), ErrWorkflowServerNotConnected)

	_, err := svc.RunWorkerImmediately(ctx, "SendDigest")
	assert.ErrorIs(t, err, ErrWorkflowServerNotConnected)
	_, err = svc.ScheduleWorkerAsCron(ctx, "SendDigest", "0 * * * *")
	assert.ErrorIs(t, err, ErrWorkflowServerNotConnected)
	_, err = svc.GetWorkerByID(ctx, "id")
	assert.ErrorIs(t, err, ErrWorkflowServerNotConnected)
	assert.ErrorIs(t, svc.CancelWorker(ctx, "id"), ErrWorkflowServerNotConnected)
	assert.ErrorIs(t, svc.TerminateWorker(ctx, "id"), ErrWorkflowServerNotConnected)
}

func TestConnectDialsOnce(t *testing.T) {
	client := NewMockWorkflowClient(gomock.NewController(t))
	dials := 0
	dial := func(context.Context) (WorkflowClient, error) {
		dials++
		return client, nil
	}
	manager := NewWorkerManager(dial, "taskboard", zap.NewNop())

	require.NoError(t, manager.Connect(context.Background()))
	require.NoError(t, manager.Connect(context.Background()))
	assert.Equal(t, 1, dials)

	client.EXPECT().Close()
	manager.Close()
}

func TestRunWorkerImmediately(t *testing.T) {
	svc, client := connectedService(t)

	var started StartOptions
	client.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts StartOptions) (string, error) {
			started = opts
			return "run-1", nil
		})

	id, err := svc.RunWorkerImmediately(context.Background(), "SendDigest", "account-1", 3)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "SendDigest-"))
	assert.Equal(t, id, started.ID)
	assert.Equal(t, "SendDigest", started.WorkerType)
	assert.Equal(t, "taskboard", started.TaskQueue)
	assert.Empty(t, started.CronSchedule)
	assert.Equal(t, []any{"account-1", 3}, started.Args)
}

func TestScheduleWorkerAsCron(t *testing.T) {
	svc, client := connectedService(t)

	client.EXPECT().Start(gomock.Any(), StartOptions{
		ID:           "CleanupTokens-cron",
		WorkerType:   "CleanupTokens",
		TaskQueue:    "taskboard",
		CronSchedule: "*/5 * * * *",
	}).Return("run-2", nil)

	id, err := svc.ScheduleWorkerAsCron(context.Background(), "CleanupTokens", "*/5 * * * *")
	require.NoError(t, err)
	assert.Equal(t, "CleanupTokens-cron", id)
}

func TestStartFailureIsWrapped(t *testing.T) {
	svc, client := connectedService(t)
	client.EXPECT().Start(gomock.Any(), gomock.Any()).Return("", errors.New("namespace not found"))

	_, err := svc.RunWorkerImmediately(context.Background(), "SendDigest")
	assert.ErrorIs(t, err, ErrWorkerStartFailed)
}

func TestGetCancelTerminateWorker(t *testing.T) {
	svc, client := connectedService(t)
	ctx := context.Background()

	worker := Worker{ID: "SendDigest-1", RunID: "run-1", Type: "SendDigest", Status: "Running", StartTime: time.Now()}
	client.EXPECT().Describe(gomock.Any(), "SendDigest-1").Return(worker, nil)
	client.EXPECT().Cancel(gomock.Any(), "SendDigest-1").Return(nil)
	client.EXPECT().Terminate(gomock.Any(), "SendDigest-1", gomock.Any()).Return(nil)

	got, err := svc.GetWorkerByID(ctx, "SendDigest-1")
	require.NoError(t, err)
	assert.Equal(t, worker, got)

	assert.NoError(t, svc.CancelWorker(ctx, "SendDigest-1"))
	assert.NoError(t, svc.TerminateWorker(ctx, "SendDigest-1"))
}
