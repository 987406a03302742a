package taskrepo

import (
	domain "github.com/sahilkruz07/sqlautomation/internal/biz/task"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/commonrepo"
)

type TaskPo struct {
	commonrepo.Mode
	TaskID          string           `gorm:"column:task_id;uniqueIndex;size:20;not null"` // TSK-000001
	TaskDescription string           `gorm:"column:task_description;type:text;not null"`
	DBName          string           `gorm:"column:db_name;size:255;not null;index"`
	SQLQuery        string           `gorm:"column:sql_query;type:text;not null"`
	QueryType       domain.QueryType `gorm:"column:query_type;size:20;not null"`
	CreatedBy       string           `gorm:"column:created_by;size:255;not null"`
	Schedule        string           `gorm:"column:schedule;size:100"`    // cron表达式，空表示不定时执行
	ScheduleEnv     string           `gorm:"column:schedule_env;size:50"` // 定时执行环境
}

func (TaskPo) TableName() string {
	return "task_master"
}

func (p *TaskPo) FromDomain(task *domain.Task) *TaskPo {
	p.TaskID = task.TaskID
	p.TaskDescription = task.TaskDescription
	p.DBName = task.DBName
	p.SQLQuery = task.SQLQuery
	p.QueryType = task.QueryType
	p.CreatedBy = task.CreatedBy
	p.Schedule = task.Schedule
	p.ScheduleEnv = task.ScheduleEnv
	return p
}

func (p *TaskPo) ToDomain() *domain.Task {
	return &domain.Task{
		TaskID:          p.TaskID,
		TaskDescription: p.TaskDescription,
		DBName:          p.DBName,
		SQLQuery:        p.SQLQuery,
		QueryType:       p.QueryType,
		CreatedBy:       p.CreatedBy,
		Schedule:        p.Schedule,
		ScheduleEnv:     p.ScheduleEnv,
		CreatedDate:     p.CreatedAt,
		UpdatedDate:     p.UpdatedAt,
	}
}
