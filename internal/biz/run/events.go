package run

import "context"

// RunCompletedEvent 一次执行到达终态后发布
type RunCompletedEvent struct {
	RunTaskID       string  `json:"run_task_id"`
	TaskID          string  `json:"task_id"`
	Status          string  `json:"status"`
	Environment     string  `json:"environment"`
	CreatedBy       string  `json:"created_by"`
	ExecutionTimeMs float64 `json:"execution_time_ms"`
}

// EventPublisher 执行事件发布接口，发布失败不影响执行结果
type EventPublisher interface {
	PublishRunCompleted(ctx context.Context, event *RunCompletedEvent)
}
