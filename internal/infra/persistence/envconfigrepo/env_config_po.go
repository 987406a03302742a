package envconfigrepo

import (
	domain "github.com/sahilkruz07/sqlautomation/internal/biz/envconfig"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/commonrepo"
	"github.com/spf13/cast"
	"gorm.io/datatypes"
)

// EnvConfigPo 环境配置表
// config_value保持文档结构（原始键名为sql_db_*），沿用运维侧既有的配置格式
type EnvConfigPo struct {
	commonrepo.Mode
	ConfigKey   string            `gorm:"column:config_key;size:255;not null;uniqueIndex:idx_key_env"`
	Env         string            `gorm:"column:env;size:50;not null;uniqueIndex:idx_key_env"`
	ConfigValue datatypes.JSONMap `gorm:"column:config_value;type:json"`
}

func (EnvConfigPo) TableName() string {
	return "env_config"
}

func (p *EnvConfigPo) ToDomain() *domain.EnvConfig {
	v := p.ConfigValue
	engine := domain.Engine(cast.ToString(v["sql_db_engine"]))
	if engine == "" {
		engine = domain.EngineMySQL
	}
	return &domain.EnvConfig{
		ConfigKey: p.ConfigKey,
		Env:       p.Env,
		Engine:    engine,
		Username:  cast.ToString(v["sql_db_username"]),
		Password:  cast.ToString(v["sql_db_password"]),
		Host:      cast.ToString(v["sql_db_host"]),
		Port:      cast.ToInt(v["sql_db_port"]),
		Database:  cast.ToString(v["sql_db_name"]),
	}
}
