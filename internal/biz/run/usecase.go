package run

import (
	"context"
	"fmt"
	"time"

	"github.com/google/wire"
	"github.com/sahilkruz07/sqlautomation/internal/biz/envconfig"
	"github.com/sahilkruz07/sqlautomation/internal/biz/task"
	domerr "github.com/sahilkruz07/sqlautomation/internal/domain/error"
	"github.com/sahilkruz07/sqlautomation/internal/rollback"
	"github.com/sahilkruz07/sqlautomation/internal/sqlexec"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(NewUsecase)

// Usecase 执行编排器
// 一次调用走完 取任务→解析环境→[抓前像]→执行→生成回滚→审计落库 的状态机，
// 终态只有持久化成功/持久化失败两种，不做重试
type Usecase struct {
	taskRepo task.Repo
	resolver *envconfig.Resolver
	executor sqlexec.Executor
	synth    *rollback.Synthesizer
	repo     Repo
	events   EventPublisher
	logger   *zap.Logger
}

func NewUsecase(
	taskRepo task.Repo,
	resolver *envconfig.Resolver,
	executor sqlexec.Executor,
	synth *rollback.Synthesizer,
	repo Repo,
	events EventPublisher,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		taskRepo: taskRepo,
		resolver: resolver,
		executor: executor,
		synth:    synth,
		repo:     repo,
		events:   events,
		logger:   logger,
	}
}

// Run 在指定环境执行任务
// 任务或环境配置未找到直接返回错误，不写审计记录（执行未发生）；
// 语句执行失败仍会尽力生成回滚、落一条failed审计再把错误抛给调用方
func (u *Usecase) Run(ctx context.Context, req *RunRequest) (*RunOutcome, error) {
	start := time.Now()

	u.logger.Info("execution requested",
		zap.String("task_id", req.TaskID),
		zap.String("environment", req.Environment))

	t, err := u.taskRepo.GetByTaskID(ctx, req.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task %s: %w", req.TaskID, err)
	}
	if t == nil {
		u.logger.Error("task not found", zap.String("task_id", req.TaskID))
		return nil, domerr.ErrTaskNotFound
	}

	desc, err := u.resolver.Resolve(ctx, t.DBName, req.Environment)
	if err != nil {
		return nil, err
	}

	// UPDATE/DELETE先抓前像；失败不致命，回滚生成降级到无数据分支
	var pre *rollback.PreImage
	if t.QueryType.IsMutation() {
		pre = u.capturePreImage(ctx, desc, t.SQLQuery, req.Parameters)
	}

	result, execErr := u.executor.Execute(ctx, desc, t.SQLQuery, req.Parameters)
	if execErr != nil {
		u.logger.Error("execution failed",
			zap.String("task_id", req.TaskID),
			zap.Error(execErr))

		rollbackQuery := u.synth.Synthesize(string(t.QueryType), t.SQLQuery, req.Parameters, pre)
		detail := u.saveFailedRun(ctx, req, t, execErr, start, rollbackQuery)
		return nil, domerr.NewBusinessError("EXECUTION_FAILED", detail, execErr)
	}

	elapsed := elapsedMs(start)
	u.logger.Info("task executed",
		zap.String("task_id", req.TaskID),
		zap.Float64("execution_time_ms", elapsed))

	var message string
	if len(result.Rows) > 0 {
		message = fmt.Sprintf("Query executed successfully. Rows returned: %d", len(result.Rows))
	} else {
		message = fmt.Sprintf("Query executed successfully. Rows affected: %d", result.Affected)
	}

	rollbackQuery := u.synth.Synthesize(string(t.QueryType), t.SQLQuery, req.Parameters, pre)

	outcome := &RunOutcome{
		TaskID:          req.TaskID,
		Status:          RunSuccess,
		Environment:     req.Environment,
		Message:         message,
		Data:            result.Rows,
		RollbackQuery:   rollbackQuery,
		TaskDescription: t.TaskDescription,
		SQLQuery:        t.SQLQuery,
		CreatedBy:       req.CreatedBy,
		ExecutionTimeMs: elapsed,
	}
	u.saveSuccessRun(ctx, req, outcome)
	return outcome, nil
}

// capturePreImage 从变更语句提取表和WHERE，派生SELECT * 抓取改动前的行
func (u *Usecase) capturePreImage(ctx context.Context, desc *envconfig.ConnDescriptor, stmt string, params map[string]any) *rollback.PreImage {
	table, where, ok := u.synth.Extractor().ExtractTarget(stmt)
	if !ok {
		return nil
	}

	derived := fmt.Sprintf("SELECT * FROM %s %s", table, where)
	u.logger.Info("fetching rollback data", zap.String("statement", derived))

	result, err := u.executor.Execute(ctx, desc, derived, params)
	if err != nil {
		u.logger.Warn("failed to fetch old data for rollback", zap.Error(err))
		return nil
	}
	u.logger.Info("fetched rows for rollback generation", zap.Int("count", len(result.Rows)))
	return &rollback.PreImage{Columns: result.Columns, Rows: result.Rows}
}

// saveSuccessRun 落成功审计并回填RunTaskID/CreatedDate，失败只记日志
func (u *Usecase) saveSuccessRun(ctx context.Context, req *RunRequest, outcome *RunOutcome) {
	record := &Run{
		TaskID:            outcome.TaskID,
		Status:            RunSuccess,
		Environment:       outcome.Environment,
		Message:           outcome.Message,
		Data:              outcome.Data,
		RollbackQuery:     outcome.RollbackQuery,
		TaskDescription:   outcome.TaskDescription,
		SQLQuery:          outcome.SQLQuery,
		CreatedBy:         req.CreatedBy,
		ExecutionTimeMs:   outcome.ExecutionTimeMs,
		RequestParameters: req.Parameters,
	}
	if err := u.repo.Create(ctx, record); err != nil {
		u.logger.Error("failed to save success run record", zap.Error(err))
		return
	}
	outcome.RunTaskID = record.RunTaskID
	outcome.CreatedDate = &record.CreatedDate

	u.events.PublishRunCompleted(ctx, &RunCompletedEvent{
		RunTaskID:       record.RunTaskID,
		TaskID:          record.TaskID,
		Status:          string(RunSuccess),
		Environment:     record.Environment,
		CreatedBy:       record.CreatedBy,
		ExecutionTimeMs: record.ExecutionTimeMs,
	})
}

// saveFailedRun 落失败审计，返回带RunTaskID的错误描述；落库失败只记日志
func (u *Usecase) saveFailedRun(ctx context.Context, req *RunRequest, t *task.Task, execErr error, start time.Time, rollbackQuery string) string {
	record := &Run{
		TaskID:            req.TaskID,
		Status:            RunFailed,
		Environment:       req.Environment,
		Message:           fmt.Sprintf("Execution failed: %s", execErr),
		RollbackQuery:     rollbackQuery,
		TaskDescription:   t.TaskDescription,
		SQLQuery:          t.SQLQuery,
		CreatedBy:         req.CreatedBy,
		ExecutionTimeMs:   elapsedMs(start),
		RequestParameters: req.Parameters,
	}
	if err := u.repo.Create(ctx, record); err != nil {
		u.logger.Error("failed to save failed run record", zap.Error(err))
		return fmt.Sprintf("Execution failed: %s", execErr)
	}

	u.events.PublishRunCompleted(ctx, &RunCompletedEvent{
		RunTaskID:       record.RunTaskID,
		TaskID:          record.TaskID,
		Status:          string(RunFailed),
		Environment:     record.Environment,
		CreatedBy:       record.CreatedBy,
		ExecutionTimeMs: record.ExecutionTimeMs,
	})
	return fmt.Sprintf("Execution failed: %s (Run ID: %s)", execErr, record.RunTaskID)
}

func (u *Usecase) Get(ctx context.Context, runTaskID string) (*Run, error) {
	record, err := u.repo.FindByRunTaskID(ctx, runTaskID)
	if err != nil {
		return nil, err
	} else if record == nil {
		return nil, domerr.ErrRunNotFound
	}
	return record, nil
}

func (u *Usecase) List(ctx context.Context, skip, limit int, search string) ([]*Run, error) {
	return u.repo.List(ctx, skip, limit, search)
}

func (u *Usecase) Delete(ctx context.Context, runTaskID string) error {
	record, err := u.repo.FindByRunTaskID(ctx, runTaskID)
	if err != nil {
		return err
	} else if record == nil {
		return domerr.ErrRunNotFound
	}
	return u.repo.Delete(ctx, runTaskID)
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
