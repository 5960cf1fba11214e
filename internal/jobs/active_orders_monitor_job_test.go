package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"tastyfood/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockActiveOrdersReader struct {
	mock.Mock
}

func (m *MockActiveOrdersReader) Handle(
	ctx context.Context,
	query queries.GetActiveOrdersQuery,
) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]queries.OrderResponse)
	return list, args.Error(1)
}

func TestRunOnce_ReportsOldestActiveOrder(t *testing.T) {
	now := time.Date(2025, 5, 1, 19, 0, 0, 0, time.UTC)
	reader := new(MockActiveOrdersReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderResponse{
		{OrderNo: "FD0003", OrderedAt: now.Add(-5 * time.Minute)},
		{OrderNo: "FD0001", OrderedAt: now.Add(-42 * time.Minute)},
		{OrderNo: "FD0002", OrderedAt: now.Add(-10 * time.Minute)},
	}, nil).Once()

	job := NewActiveOrdersMonitorJob(reader, "0 * * * * *", zap.NewNop())
	job.now = func() time.Time { return now }

	report, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, MonitorReport{Active: 3, OldestOrderNo: "FD0001", OldestAge: 42 * time.Minute}, report)
	reader.AssertExpectations(t)
}

func TestRunOnce_NoActiveOrders(t *testing.T) {
	reader := new(MockActiveOrdersReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderResponse{}, nil).Once()

	report, err := NewActiveOrdersMonitorJob(reader, "0 * * * * *", zap.NewNop()).RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, MonitorReport{}, report)
}

func TestRunOnce_PropagatesReadError(t *testing.T) {
	reader := new(MockActiveOrdersReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := NewActiveOrdersMonitorJob(reader, "0 * * * * *", zap.NewNop()).RunOnce(context.Background())

	require.EqualError(t, err, "db down")
}

func TestStart_InvalidSchedule(t *testing.T) {
	job := NewActiveOrdersMonitorJob(new(MockActiveOrdersReader), "every minute", zap.NewNop())

	err := job.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "every minute")
}

func TestJobManager_RunsMonitorOnSchedule(t *testing.T) {
	reader := new(MockActiveOrdersReader)
	called := make(chan struct{}, 1)
	reader.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case called <- struct{}{}:
			default:
			}
		}).
		Return([]queries.OrderResponse{}, nil)

	jm := NewJobManager(reader, "* * * * * *", zap.NewNop())
	require.NoError(t, jm.StartAll())
	defer jm.StopAll()

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("monitor did not run within 3s")
	}
}

func TestJobManager_StartFailsOnBadSchedule(t *testing.T) {
	jm := NewJobManager(new(MockActiveOrdersReader), "", zap.NewNop())

	require.Error(t, jm.StartAll())
}
