package request

import "github.com/sahilkruz07/sqlautomation/internal/biz/task"

// CreateTaskRequest 创建任务请求
type CreateTaskRequest struct {
	TaskDescription string         `json:"task_description" binding:"required"`
	DBName          string         `json:"db_name" binding:"required"`
	SQLQuery        string         `json:"sql_query" binding:"required"`
	QueryType       task.QueryType `json:"query_type" binding:"required"`
	CreatedBy       string         `json:"created_by" binding:"required"`
	Schedule        string         `json:"schedule"`
	ScheduleEnv     string         `json:"schedule_env"`
}

// UpdateTaskRequest 更新任务请求，缺省字段不修改
type UpdateTaskRequest struct {
	TaskDescription *string         `json:"task_description"`
	DBName          *string         `json:"db_name"`
	SQLQuery        *string         `json:"sql_query"`
	QueryType       *task.QueryType `json:"query_type"`
	Schedule        *string         `json:"schedule"`
	ScheduleEnv     *string         `json:"schedule_env"`
}

// ListRequest 分页+搜索请求
type ListRequest struct {
	Skip   int    `form:"skip,default=0" binding:"min=0"`
	Limit  int    `form:"limit,default=100" binding:"min=1,max=1000"`
	Search string `form:"search"`
}
