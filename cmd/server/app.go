package main

import (
	redis "github.com/go-redis/redis/v8"
	"github.com/sahilkruz07/sqlautomation/internal/api"
	"github.com/sahilkruz07/sqlautomation/internal/events"
	"github.com/sahilkruz07/sqlautomation/internal/orm"
	"github.com/sahilkruz07/sqlautomation/internal/scheduler"
)

// App 常驻组件的聚合，注入完成后由main统一启停
type App struct {
	Router    *api.Router
	Scheduler *scheduler.Scheduler
	Bus       *events.Bus
	Storage   *orm.Storage
	Redis     *redis.Client // redis未启用时为nil
}

func NewApp(
	router *api.Router,
	sched *scheduler.Scheduler,
	bus *events.Bus,
	storage *orm.Storage,
	redisClient *redis.Client,
) *App {
	return &App{
		Router:    router,
		Scheduler: sched,
		Bus:       bus,
		Storage:   storage,
		Redis:     redisClient,
	}
}
