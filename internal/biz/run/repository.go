package run

import "context"

// Repo 执行记录存储接口，只追加不更新
type Repo interface {
	// Create 生成RunTaskID并落库，回填ID与时间戳；ID分配失败则整个保存中止
	Create(ctx context.Context, run *Run) error
	// FindByRunTaskID 未找到时返回(nil, nil)
	FindByRunTaskID(ctx context.Context, runTaskID string) (*Run, error)
	// List 按创建时间倒序、RunTaskID倒序，search对多字段做模糊匹配
	List(ctx context.Context, skip, limit int, search string) ([]*Run, error)
	Delete(ctx context.Context, runTaskID string) error
}
