package task

import "time"

// Task SQL任务定义
// 执行引擎只读，修改仅通过任务管理接口
type Task struct {
	TaskID          string // TSK-000001
	TaskDescription string
	DBName          string // 逻辑库名，和环境一起决定目标库
	SQLQuery        string
	QueryType       QueryType
	CreatedBy       string
	Schedule        string // cron表达式，空表示不定时执行
	ScheduleEnv     string // 定时执行的目标环境
	CreatedDate     time.Time
	UpdatedDate     time.Time
}

// TaskPatch 部分更新
type TaskPatch struct {
	TaskDescription *string
	DBName          *string
	SQLQuery        *string
	QueryType       *QueryType
	Schedule        *string
	ScheduleEnv     *string
}

func NewTaskPatch() *TaskPatch {
	return &TaskPatch{}
}

func (p *TaskPatch) Empty() bool {
	return p.TaskDescription == nil && p.DBName == nil && p.SQLQuery == nil &&
		p.QueryType == nil && p.Schedule == nil && p.ScheduleEnv == nil
}
