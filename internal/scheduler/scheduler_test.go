package scheduler

import (
	"context"
	"testing"

	"github.com/sahilkruz07/sqlautomation/internal/biz/task"
	"github.com/sahilkruz07/sqlautomation/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTaskRepo struct {
	scheduled []*task.Task
}

func (r *fakeTaskRepo) Create(context.Context, *task.Task) error { return nil }
func (r *fakeTaskRepo) GetByTaskID(context.Context, string) (*task.Task, error) {
	return nil, nil
}
func (r *fakeTaskRepo) List(context.Context, int, int, string) ([]*task.Task, error) {
	return nil, nil
}
func (r *fakeTaskRepo) Update(context.Context, string, *task.TaskPatch) error { return nil }
func (r *fakeTaskRepo) Delete(context.Context, string) error                  { return nil }
func (r *fakeTaskRepo) FindScheduled(context.Context) ([]*task.Task, error) {
	return r.scheduled, nil
}

func TestStartDisabledIsNoop(t *testing.T) {
	s := New(config.SchedulerConfig{Enabled: false}, &fakeTaskRepo{}, nil, zap.NewNop())
	require.NoError(t, s.Start())
	s.Stop()
}

func TestSyncRegistersAndRemoves(t *testing.T) {
	repo := &fakeTaskRepo{scheduled: []*task.Task{
		{TaskID: "TSK-000001", Schedule: "@hourly", ScheduleEnv: "DEV"},
		{TaskID: "TSK-000002", Schedule: "@daily", ScheduleEnv: "QA"},
		// 环境缺失的不注册
		{TaskID: "TSK-000003", Schedule: "@daily"},
		// 表达式非法的不注册
		{TaskID: "TSK-000004", Schedule: "not-a-cron", ScheduleEnv: "DEV"},
	}}

	s := New(config.SchedulerConfig{Enabled: true}, repo, nil, zap.NewNop())
	s.sync(context.Background())

	s.mu.Lock()
	assert.Len(t, s.entries, 2)
	assert.Contains(t, s.entries, "TSK-000001")
	assert.Contains(t, s.entries, "TSK-000002")
	s.mu.Unlock()

	// 任务下线后注销
	repo.scheduled = repo.scheduled[:1]
	s.sync(context.Background())

	s.mu.Lock()
	assert.Len(t, s.entries, 1)
	assert.Contains(t, s.entries, "TSK-000001")
	s.mu.Unlock()
}

func TestSyncReregistersOnChange(t *testing.T) {
	repo := &fakeTaskRepo{scheduled: []*task.Task{
		{TaskID: "TSK-000001", Schedule: "@hourly", ScheduleEnv: "DEV"},
	}}

	s := New(config.SchedulerConfig{Enabled: true}, repo, nil, zap.NewNop())
	s.sync(context.Background())

	s.mu.Lock()
	before := s.entries["TSK-000001"]
	s.mu.Unlock()

	// 表达式或环境变化时换新的cron entry
	repo.scheduled[0].ScheduleEnv = "QA"
	s.sync(context.Background())

	s.mu.Lock()
	after := s.entries["TSK-000001"]
	s.mu.Unlock()

	assert.NotEqual(t, before.id, after.id)
	assert.Equal(t, "@hourly|QA", after.signature)
}
