package envconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/go-redis/redis/v8"
	"github.com/google/wire"
	domerr "github.com/sahilkruz07/sqlautomation/internal/domain/error"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(NewResolver)

// Resolver 环境解析器：把(逻辑库名, 环境)解析为连接描述符
// redis可选，作为配置的读穿缓存；redis异常一律回落到存储查询
type Resolver struct {
	repo     Repo
	cache    *redis.Client // nil表示不启用缓存
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewResolver(repo Repo, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, dbName, env string) (*ConnDescriptor, error) {
	if desc := r.fromCache(ctx, dbName, env); desc != nil {
		return desc, nil
	}

	cfg, err := r.repo.GetConfig(ctx, dbName, env)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch env config: %w", err)
	}
	if cfg == nil {
		r.logger.Warn("env config not found",
			zap.String("db_name", dbName),
			zap.String("env", env))
		return nil, domerr.ErrEnvConfigNotFound
	}
	if !cfg.Complete() {
		// 子字段残缺的记录按未找到处理
		r.logger.Warn("env config incomplete",
			zap.String("db_name", dbName),
			zap.String("env", env))
		return nil, domerr.ErrEnvConfigNotFound
	}

	desc := &ConnDescriptor{
		Engine:   cfg.Engine,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Database: cfg.Database,
		Username: cfg.Username,
		Password: cfg.Password,
	}
	r.toCache(ctx, dbName, env, desc)
	return desc, nil
}

func cacheKey(dbName, env string) string {
	return "envcfg:" + dbName + ":" + env
}

func (r *Resolver) fromCache(ctx context.Context, dbName, env string) *ConnDescriptor {
	if r.cache == nil {
		return nil
	}
	raw, err := r.cache.Get(ctx, cacheKey(dbName, env)).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("env config cache read failed", zap.Error(err))
		}
		return nil
	}
	var desc ConnDescriptor
	if err := json.Unmarshal([]byte(raw), &desc); err != nil {
		return nil
	}
	return &desc
}

func (r *Resolver) toCache(ctx context.Context, dbName, env string, desc *ConnDescriptor) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(desc)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKey(dbName, env), raw, r.cacheTTL).Err(); err != nil {
		r.logger.Warn("env config cache write failed", zap.Error(err))
	}
}
