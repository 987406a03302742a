package runrepo

import (
	"encoding/json"

	domain "github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/commonrepo"
	"gorm.io/datatypes"
)

type RunPo struct {
	commonrepo.Mode
	RunTaskID         string            `gorm:"column:run_task_id;uniqueIndex;size:20;not null"` // RTSK-000001
	TaskID            string            `gorm:"column:task_id;size:20;not null;index"`
	Status            domain.RunStatus  `gorm:"column:status;size:20;not null;index"`
	Environment       string            `gorm:"column:environment;size:50;not null"`
	Message           string            `gorm:"column:message;type:text"`
	Data              datatypes.JSON    `gorm:"column:data;type:json"` // 结果行集
	RollbackQuery     string            `gorm:"column:rollback_query;type:text"`
	TaskDescription   string            `gorm:"column:task_description;type:text"`
	SQLQuery          string            `gorm:"column:sql_query;type:text"`
	CreatedBy         string            `gorm:"column:created_by;size:255"`
	ExecutionTimeMs   float64           `gorm:"column:execution_time_ms"`
	RequestParameters datatypes.JSONMap `gorm:"column:request_parameters;type:json"`
}

func (RunPo) TableName() string {
	return "run_master"
}

func (p *RunPo) FromDomain(run *domain.Run) *RunPo {
	p.RunTaskID = run.RunTaskID
	p.TaskID = run.TaskID
	p.Status = run.Status
	p.Environment = run.Environment
	p.Message = run.Message
	p.RollbackQuery = run.RollbackQuery
	p.TaskDescription = run.TaskDescription
	p.SQLQuery = run.SQLQuery
	p.CreatedBy = run.CreatedBy
	p.ExecutionTimeMs = run.ExecutionTimeMs
	p.RequestParameters = run.RequestParameters
	if run.Data != nil {
		if raw, err := json.Marshal(run.Data); err == nil {
			p.Data = raw
		}
	}
	return p
}

func (p *RunPo) ToDomain() *domain.Run {
	run := &domain.Run{
		RunTaskID:         p.RunTaskID,
		TaskID:            p.TaskID,
		Status:            p.Status,
		Environment:       p.Environment,
		Message:           p.Message,
		RollbackQuery:     p.RollbackQuery,
		TaskDescription:   p.TaskDescription,
		SQLQuery:          p.SQLQuery,
		CreatedBy:         p.CreatedBy,
		ExecutionTimeMs:   p.ExecutionTimeMs,
		RequestParameters: p.RequestParameters,
		CreatedDate:       p.CreatedAt,
	}
	if len(p.Data) > 0 {
		_ = json.Unmarshal(p.Data, &run.Data)
	}
	return run
}
