package request

// RunTaskRequest 执行任务请求
type RunTaskRequest struct {
	TaskID      string         `json:"task_id" binding:"required"`     // TSK-000001
	Environment string         `json:"environment" binding:"required"` // DEV/QA/PROD
	Parameters  map[string]any `json:"parameters"`                     // SQL命名参数
	CreatedBy   string         `json:"created_by" binding:"required"`
}
