package mapper

import (
	"github.com/samber/lo"
	"github.com/sahilkruz07/sqlautomation/internal/biz/task"
	"github.com/sahilkruz07/sqlautomation/internal/dto/response"
)

// ToTaskResponse 任务实体转响应DTO
func ToTaskResponse(t *task.Task) response.TaskResponse {
	return response.TaskResponse{
		TaskID:          t.TaskID,
		TaskDescription: t.TaskDescription,
		DBName:          t.DBName,
		SQLQuery:        t.SQLQuery,
		QueryType:       t.QueryType,
		CreatedBy:       t.CreatedBy,
		Schedule:        t.Schedule,
		ScheduleEnv:     t.ScheduleEnv,
		CreatedDate:     t.CreatedDate,
		UpdatedDate:     t.UpdatedDate,
	}
}

// ToTaskListResponse 任务列表转响应DTO
func ToTaskListResponse(tasks []*task.Task) response.TaskListResponse {
	items := lo.Map(tasks, func(t *task.Task, _ int) response.TaskResponse {
		return ToTaskResponse(t)
	})
	return response.TaskListResponse{Tasks: items, Count: len(items)}
}
