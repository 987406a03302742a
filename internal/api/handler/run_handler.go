package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"github.com/sahilkruz07/sqlautomation/internal/dto/mapper"
	"github.com/sahilkruz07/sqlautomation/internal/dto/request"
	"github.com/sahilkruz07/sqlautomation/internal/dto/response"
)

// RunHandler 任务执行与审计记录处理器
type RunHandler struct {
	runs *run.Usecase
}

func NewRunHandler(runs *run.Usecase) *RunHandler {
	return &RunHandler{runs: runs}
}

// RunTask 在指定环境执行已登记的任务
func (h *RunHandler) RunTask(c *gin.Context) {
	var req request.RunTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}

	outcome, err := h.runs.Run(c.Request.Context(), &run.RunRequest{
		TaskID:      req.TaskID,
		Environment: req.Environment,
		Parameters:  req.Parameters,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToRunOutcomeResponse(outcome))
}

// GetRun 按执行ID获取审计记录
func (h *RunHandler) GetRun(c *gin.Context) {
	record, err := h.runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToRunResponse(record))
}

// ListRuns 审计记录列表，新记录在前
func (h *RunHandler) ListRuns(c *gin.Context) {
	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}

	records, err := h.runs.List(c.Request.Context(), req.Skip, req.Limit, req.Search)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToRunListResponse(records))
}

// DeleteRun 删除审计记录
func (h *RunHandler) DeleteRun(c *gin.Context) {
	runTaskID := c.Param("id")
	if err := h.runs.Delete(c.Request.Context(), runTaskID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: true, ID: runTaskID})
}
