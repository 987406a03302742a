package task

import "context"

// Repo 任务存储接口
type Repo interface {
	// Create 生成TaskID并落库，回填ID与时间戳
	Create(ctx context.Context, task *Task) error
	// GetByTaskID 未找到时返回(nil, nil)
	GetByTaskID(ctx context.Context, taskID string) (*Task, error)
	// List 按创建时间倒序、TaskID倒序，search对多字段做模糊匹配
	List(ctx context.Context, skip, limit int, search string) ([]*Task, error)
	Update(ctx context.Context, taskID string, patch *TaskPatch) error
	Delete(ctx context.Context, taskID string) error
	// FindScheduled 返回配置了cron表达式的任务
	FindScheduled(ctx context.Context) ([]*Task, error)
}
