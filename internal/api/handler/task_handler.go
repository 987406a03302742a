package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/mo"
	"github.com/sahilkruz07/sqlautomation/internal/biz/task"
	"github.com/sahilkruz07/sqlautomation/internal/dto/mapper"
	"github.com/sahilkruz07/sqlautomation/internal/dto/request"
	"github.com/sahilkruz07/sqlautomation/internal/dto/response"
)

// TaskHandler 任务管理处理器
type TaskHandler struct {
	tasks *task.Usecase
}

func NewTaskHandler(tasks *task.Usecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTask 创建任务
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req request.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}

	t := &task.Task{
		TaskDescription: req.TaskDescription,
		DBName:          req.DBName,
		SQLQuery:        req.SQLQuery,
		QueryType:       req.QueryType,
		CreatedBy:       req.CreatedBy,
		Schedule:        req.Schedule,
		ScheduleEnv:     req.ScheduleEnv,
	}
	if err := h.tasks.Create(c.Request.Context(), t); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskResponse(t))
}

// GetTask 获取任务
func (h *TaskHandler) GetTask(c *gin.Context) {
	t, err := h.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskResponse(t))
}

// ListTasks 任务列表，支持skip/limit分页与多字段模糊搜索
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), req.Skip, req.Limit, req.Search)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskListResponse(tasks))
}

// UpdateTask 更新任务
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}

	updated, err := h.tasks.Update(c.Request.Context(), c.Param("id"), &task.UpdateRequest{
		TaskDescription: opt(req.TaskDescription),
		DBName:          opt(req.DBName),
		SQLQuery:        opt(req.SQLQuery),
		QueryType:       opt(req.QueryType),
		Schedule:        opt(req.Schedule),
		ScheduleEnv:     opt(req.ScheduleEnv),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskResponse(updated))
}

// DeleteTask 删除任务
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if err := h.tasks.Delete(c.Request.Context(), taskID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: true, ID: taskID})
}

func opt[T any](p *T) mo.Option[T] {
	if p == nil {
		return mo.None[T]()
	}
	return mo.Some(*p)
}
