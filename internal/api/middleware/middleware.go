package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domerr "github.com/sahilkruz07/sqlautomation/internal/domain/error"
	"github.com/sahilkruz07/sqlautomation/internal/dto/response"
	"go.uber.org/zap"
)

// RequestIDHeader 请求ID头
const RequestIDHeader = "X-Request-ID"

// RequestID 为每个请求分配uuid，写入响应头和gin上下文
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// ErrorHandling 统一错误处理中间件
// panic恢复 + 按领域错误映射HTTP状态码，保持biz层与传输层解耦
func ErrorHandling(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method))

				c.JSON(http.StatusInternalServerError, response.ErrorResponse{
					Code:    "INTERNAL_ERROR",
					Message: "An internal error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		logger.Error("request error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("request_id", c.GetString("request_id")))

		// 按错误类型返回适当的响应
		var bizErr *domerr.BusinessError
		switch {
		case errors.Is(err, domerr.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "TASK_NOT_FOUND",
				Message: err.Error(),
			})
		case errors.Is(err, domerr.ErrRunNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "RUN_NOT_FOUND",
				Message: err.Error(),
			})
		case errors.Is(err, domerr.ErrEnvConfigNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "ENV_CONFIG_NOT_FOUND",
				Message: err.Error(),
			})
		case errors.Is(err, domerr.ErrTaskInvalidType), errors.Is(err, domerr.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "INVALID_INPUT",
				Message: err.Error(),
			})
		case errors.As(err, &bizErr):
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    bizErr.Code(),
				Message: bizErr.Message(),
			})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "INTERNAL_ERROR",
				Message: "An internal error occurred",
				Details: err.Error(),
			})
		}
	}
}
