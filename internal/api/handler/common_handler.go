package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahilkruz07/sqlautomation/internal/orm"
)

// CommonHandler 健康检查等通用接口
type CommonHandler struct {
	storage *orm.Storage
}

func NewCommonHandler(storage *orm.Storage) *CommonHandler {
	return &CommonHandler{storage: storage}
}

// HealthCheck 健康检查，含元数据库连通性
func (h *CommonHandler) HealthCheck(c *gin.Context) {
	if err := h.storage.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
