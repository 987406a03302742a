package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sahilkruz07/sqlautomation/internal/api/handler"
	"github.com/sahilkruz07/sqlautomation/internal/api/middleware"
	"github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"github.com/sahilkruz07/sqlautomation/internal/biz/task"
	"github.com/sahilkruz07/sqlautomation/internal/orm"
	"go.uber.org/zap"
)

// Router API路由器
type Router struct {
	taskHandler   *handler.TaskHandler
	runHandler    *handler.RunHandler
	commonHandler *handler.CommonHandler
	logger        *zap.Logger
}

// NewRouter 创建API路由器
func NewRouter(tasks *task.Usecase, runs *run.Usecase, storage *orm.Storage, logger *zap.Logger) *Router {
	return &Router{
		taskHandler:   handler.NewTaskHandler(tasks),
		runHandler:    handler.NewRunHandler(runs),
		commonHandler: handler.NewCommonHandler(storage),
		logger:        logger,
	}
}

// SetupRoutes 设置路由
func (r *Router) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.ErrorHandling(r.logger))

	// CORS配置
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(config))

	// API v1路由组
	v1 := engine.Group("/api/v1")
	{
		// 任务路由
		tasks := v1.Group("/tasks")
		{
			tasks.POST("", r.taskHandler.CreateTask)
			tasks.GET("", r.taskHandler.ListTasks)
			tasks.GET("/:id", r.taskHandler.GetTask)
			tasks.PUT("/:id", r.taskHandler.UpdateTask)
			tasks.DELETE("/:id", r.taskHandler.DeleteTask)
		}

		// 执行路由
		v1.POST("/run", r.runHandler.RunTask)
		runs := v1.Group("/runs")
		{
			runs.GET("", r.runHandler.ListRuns)
			runs.GET("/:id", r.runHandler.GetRun)
			runs.DELETE("/:id", r.runHandler.DeleteRun)
		}
	}

	// 健康检查
	engine.GET("/health", r.commonHandler.HealthCheck)

	return engine
}
