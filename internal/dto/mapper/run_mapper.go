package mapper

import (
	"github.com/samber/lo"
	"github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"github.com/sahilkruz07/sqlautomation/internal/dto/response"
)

// ToRunOutcomeResponse 执行结果转响应DTO
func ToRunOutcomeResponse(outcome *run.RunOutcome) response.RunResponse {
	return response.RunResponse{
		TaskID:          outcome.TaskID,
		RunTaskID:       outcome.RunTaskID,
		Status:          outcome.Status,
		Environment:     outcome.Environment,
		Message:         outcome.Message,
		Data:            outcome.Data,
		RollbackQuery:   outcome.RollbackQuery,
		TaskDescription: outcome.TaskDescription,
		SQLQuery:        outcome.SQLQuery,
		CreatedBy:       outcome.CreatedBy,
		ExecutionTimeMs: outcome.ExecutionTimeMs,
		CreatedDate:     outcome.CreatedDate,
	}
}

// ToRunResponse 执行记录转响应DTO
func ToRunResponse(r *run.Run) response.RunResponse {
	created := r.CreatedDate
	return response.RunResponse{
		TaskID:          r.TaskID,
		RunTaskID:       r.RunTaskID,
		Status:          r.Status,
		Environment:     r.Environment,
		Message:         r.Message,
		Data:            r.Data,
		RollbackQuery:   r.RollbackQuery,
		TaskDescription: r.TaskDescription,
		SQLQuery:        r.SQLQuery,
		CreatedBy:       r.CreatedBy,
		ExecutionTimeMs: r.ExecutionTimeMs,
		CreatedDate:     &created,
	}
}

// ToRunListResponse 执行记录列表转响应DTO
func ToRunListResponse(runs []*run.Run) response.RunListResponse {
	items := lo.Map(runs, func(r *run.Run, _ int) response.RunResponse {
		return ToRunResponse(r)
	})
	return response.RunListResponse{Runs: items, Count: len(items)}
}
