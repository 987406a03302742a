package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	domerr "github.com/sahilkruz07/sqlautomation/internal/domain/error"
	"github.com/sahilkruz07/sqlautomation/internal/dto/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.Use(ErrorHandling(zap.NewNop()))
	engine.GET("/test", handler)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	engine.ServeHTTP(w, req)

	var body response.ErrorResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestRequestIDAssigned(t *testing.T) {
	engine := newTestEngine(func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w, _ := doRequest(t, engine)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDPreserved(t *testing.T) {
	engine := newTestEngine(func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestErrorHandlingMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"任务未找到", domerr.ErrTaskNotFound, http.StatusNotFound, "TASK_NOT_FOUND"},
		{"执行记录未找到", domerr.ErrRunNotFound, http.StatusNotFound, "RUN_NOT_FOUND"},
		{"环境配置未找到", domerr.ErrEnvConfigNotFound, http.StatusBadRequest, "ENV_CONFIG_NOT_FOUND"},
		{"查询类型无效", domerr.ErrTaskInvalidType, http.StatusBadRequest, "INVALID_INPUT"},
		{
			"业务错误带错误码",
			domerr.NewBusinessError("EXECUTION_FAILED", "Execution failed: syntax error", nil),
			http.StatusInternalServerError, "EXECUTION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			w, body := doRequest(t, engine)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestErrorHandlingPanicRecovery(t *testing.T) {
	engine := newTestEngine(func(c *gin.Context) {
		panic("boom")
	})

	w, body := doRequest(t, engine)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
}
