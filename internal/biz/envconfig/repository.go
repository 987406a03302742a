package envconfig

import "context"

// Repo 环境配置存储接口，对引擎只读
type Repo interface {
	// GetConfig 按(config_key, env)精确匹配，未找到时返回(nil, nil)
	GetConfig(ctx context.Context, configKey, env string) (*EnvConfig, error)
}
