package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"github.com/sahilkruz07/sqlautomation/internal/biz/task"
	"github.com/sahilkruz07/sqlautomation/pkg/config"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(New)

// scheduleActor 定时触发的执行在审计记录里的操作者标识
const scheduleActor = "scheduler"

type entry struct {
	id        cron.EntryID
	signature string // schedule+env，变化时重新注册
}

// Scheduler 定时执行器
// 周期性同步task表里配置了cron表达式的任务，到点触发一次编排执行
type Scheduler struct {
	cfg    config.SchedulerConfig
	tasks  task.Repo
	runner *run.Usecase
	cron   *cron.Cron
	logger *zap.Logger

	mu      sync.Mutex
	entries map[string]entry // task_id -> cron entry
	cancel  context.CancelFunc
}

func New(cfg config.SchedulerConfig, tasks task.Repo, runner *run.Usecase, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		tasks:   tasks,
		runner:  runner,
		cron:    cron.New(),
		logger:  logger,
		entries: make(map[string]entry),
	}
}

func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("scheduler disabled")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.cron.Start()
	s.sync(ctx)

	go func() {
		ticker := time.NewTicker(s.cfg.SyncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sync(ctx)
			}
		}
	}()

	s.logger.Info("scheduler started",
		zap.Duration("sync_interval", s.cfg.SyncInterval))
	return nil
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	<-s.cron.Stop().Done()
}

// sync 对齐cron注册表和task表：新增、变更重注册、删除
func (s *Scheduler) sync(ctx context.Context) {
	scheduled, err := s.tasks.FindScheduled(ctx)
	if err != nil {
		s.logger.Error("failed to load scheduled tasks", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(scheduled))
	for _, t := range scheduled {
		if t.ScheduleEnv == "" {
			s.logger.Warn("scheduled task has no environment, skipping",
				zap.String("task_id", t.TaskID))
			continue
		}
		seen[t.TaskID] = true
		signature := t.Schedule + "|" + t.ScheduleEnv

		if existing, ok := s.entries[t.TaskID]; ok {
			if existing.signature == signature {
				continue
			}
			s.cron.Remove(existing.id)
			delete(s.entries, t.TaskID)
		}

		taskID, env := t.TaskID, t.ScheduleEnv
		id, err := s.cron.AddFunc(t.Schedule, func() {
			s.trigger(taskID, env)
		})
		if err != nil {
			s.logger.Error("invalid schedule expression",
				zap.String("task_id", t.TaskID),
				zap.String("schedule", t.Schedule),
				zap.Error(err))
			continue
		}
		s.entries[t.TaskID] = entry{id: id, signature: signature}
		s.logger.Info("task scheduled",
			zap.String("task_id", t.TaskID),
			zap.String("schedule", t.Schedule),
			zap.String("environment", env))
	}

	for taskID, e := range s.entries {
		if !seen[taskID] {
			s.cron.Remove(e.id)
			delete(s.entries, taskID)
			s.logger.Info("task unscheduled", zap.String("task_id", taskID))
		}
	}
}

func (s *Scheduler) trigger(taskID, env string) {
	_, err := s.runner.Run(context.Background(), &run.RunRequest{
		TaskID:      taskID,
		Environment: env,
		CreatedBy:   scheduleActor,
	})
	if err != nil {
		s.logger.Error("scheduled run failed",
			zap.String("task_id", taskID),
			zap.String("environment", env),
			zap.Error(err))
	}
}
