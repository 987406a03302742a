package response

import (
	"time"

	"github.com/sahilkruz07/sqlautomation/internal/biz/task"
)

// TaskResponse 任务响应
type TaskResponse struct {
	TaskID          string         `json:"task_id"`
	TaskDescription string         `json:"task_description"`
	DBName          string         `json:"db_name"`
	SQLQuery        string         `json:"sql_query"`
	QueryType       task.QueryType `json:"query_type"`
	CreatedBy       string         `json:"created_by"`
	Schedule        string         `json:"schedule,omitempty"`
	ScheduleEnv     string         `json:"schedule_env,omitempty"`
	CreatedDate     time.Time      `json:"created_date"`
	UpdatedDate     time.Time      `json:"updated_date"`
}

// TaskListResponse 任务列表响应
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}
