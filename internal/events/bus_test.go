package events

import (
	"context"
	"testing"
	"time"

	"github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBusAuditLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := NewBus(zap.New(core))
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, bus.StartAuditLog(ctx))

	bus.PublishRunCompleted(ctx, &run.RunCompletedEvent{
		RunTaskID:       "RTSK-000001",
		TaskID:          "TSK-000001",
		Status:          "success",
		Environment:     "DEV",
		CreatedBy:       "tester",
		ExecutionTimeMs: 12.5,
	})

	require.Eventually(t, func() bool {
		return logs.FilterMessage("run completed").Len() == 1
	}, time.Second, 10*time.Millisecond)

	entry := logs.FilterMessage("run completed").All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "RTSK-000001", fields["run_task_id"])
	assert.Equal(t, "success", fields["status"])
	assert.Equal(t, "DEV", fields["environment"])
}

func TestBusCloseStopsConsumer(t *testing.T) {
	bus := NewBus(zap.NewNop())

	ctx := context.Background()
	require.NoError(t, bus.StartAuditLog(ctx))
	require.NoError(t, bus.Close())
}
