package main

import (
	"fmt"
	"time"

	redis "github.com/go-redis/redis/v8"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/commonrepo"
	"github.com/sahilkruz07/sqlautomation/internal/orm"
	"github.com/sahilkruz07/sqlautomation/pkg/config"
)

// ProvideRedisClient builds a redis client from typed config.
// Returns nil when redis is disabled.
func ProvideRedisClient(cfg config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// ProvideDB exposes the gorm handle as the repository DB dependency.
func ProvideDB(storage *orm.Storage) commonrepo.DB {
	return storage.DB()
}

func ProvideDatabaseConfig(cfg config.Config) config.DatabaseConfig {
	return cfg.Database
}

func ProvideExecutorConfig(cfg config.Config) config.ExecutorConfig {
	return cfg.Executor
}

func ProvideSchedulerConfig(cfg config.Config) config.SchedulerConfig {
	return cfg.Scheduler
}

// ProvideCacheTTL env config cache expiry for the resolver.
func ProvideCacheTTL(cfg config.Config) time.Duration {
	return cfg.Redis.CacheTTL
}
