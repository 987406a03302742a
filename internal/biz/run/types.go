package run

import "time"

// RunRequest 执行请求
type RunRequest struct {
	TaskID      string
	Environment string
	Parameters  map[string]any
	CreatedBy   string
}

// RunOutcome 执行结果
// 审计落库失败时RunTaskID和CreatedDate为空，已算出的结果照常返回
type RunOutcome struct {
	TaskID          string
	RunTaskID       string
	Status          RunStatus
	Environment     string
	Message         string
	Data            []map[string]any
	RollbackQuery   string
	TaskDescription string
	SQLQuery        string
	CreatedBy       string
	ExecutionTimeMs float64
	CreatedDate     *time.Time
}
