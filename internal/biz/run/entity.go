package run

import "time"

// RunStatus 执行状态
type RunStatus string

const (
	RunSuccess RunStatus = "success"
	RunFailed  RunStatus = "failed"
)

// Run 一次任务执行的审计记录，创建后不再修改
type Run struct {
	RunTaskID         string // RTSK-000001
	TaskID            string
	Status            RunStatus
	Environment       string
	Message           string
	Data              []map[string]any // 结果行集，可为空
	RollbackQuery     string           // 生成的回滚语句，可为空
	TaskDescription   string
	SQLQuery          string
	CreatedBy         string
	ExecutionTimeMs   float64
	RequestParameters map[string]any
	CreatedDate       time.Time
}
