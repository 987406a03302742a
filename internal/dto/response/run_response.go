package response

import (
	"time"

	"github.com/sahilkruz07/sqlautomation/internal/biz/run"
)

// RunResponse 执行结果/执行记录响应
type RunResponse struct {
	TaskID          string           `json:"task_id"`
	RunTaskID       string           `json:"run_task_id,omitempty"`
	Status          run.RunStatus    `json:"status"`
	Environment     string           `json:"environment"`
	Message         string           `json:"message"`
	Data            []map[string]any `json:"data"`
	RollbackQuery   string           `json:"rollback_query"`
	TaskDescription string           `json:"task_description,omitempty"`
	SQLQuery        string           `json:"sql_query,omitempty"`
	CreatedBy       string           `json:"created_by,omitempty"`
	ExecutionTimeMs float64          `json:"execution_time_ms"`
	CreatedDate     *time.Time       `json:"created_date,omitempty"`
}

// RunListResponse 执行记录列表响应
type RunListResponse struct {
	Runs  []RunResponse `json:"runs"`
	Count int           `json:"count"`
}
