package envconfigrepo

import (
	"testing"

	domain "github.com/sahilkruz07/sqlautomation/internal/biz/envconfig"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestToDomain(t *testing.T) {
	po := &EnvConfigPo{
		ConfigKey: "LK_MASTER_DB",
		Env:       "DEV",
		ConfigValue: datatypes.JSONMap{
			"sql_db_username": "app",
			"sql_db_password": "secret",
			"sql_db_host":     "db.dev.internal",
			"sql_db_port":     float64(3306), // JSON数字解码为float64
			"sql_db_name":     "master",
		},
	}

	cfg := po.ToDomain()
	assert.Equal(t, "LK_MASTER_DB", cfg.ConfigKey)
	assert.Equal(t, "DEV", cfg.Env)
	// 引擎缺省为mysql
	assert.Equal(t, domain.EngineMySQL, cfg.Engine)
	assert.Equal(t, "app", cfg.Username)
	assert.Equal(t, 3306, cfg.Port)
	assert.Equal(t, "master", cfg.Database)
	assert.True(t, cfg.Complete())
}

func TestToDomainExplicitEngine(t *testing.T) {
	po := &EnvConfigPo{
		ConfigKey: "LK_REPORT_DB",
		Env:       "PROD",
		ConfigValue: datatypes.JSONMap{
			"sql_db_engine":   "postgres",
			"sql_db_username": "app",
			"sql_db_password": "secret",
			"sql_db_host":     "pg.prod.internal",
			"sql_db_port":     "5432", // 字符串端口也接受
			"sql_db_name":     "report",
		},
	}

	cfg := po.ToDomain()
	assert.Equal(t, domain.EnginePostgres, cfg.Engine)
	assert.Equal(t, 5432, cfg.Port)
}

func TestToDomainIncomplete(t *testing.T) {
	po := &EnvConfigPo{
		ConfigKey:   "LK_MASTER_DB",
		Env:         "QA",
		ConfigValue: datatypes.JSONMap{"sql_db_host": "db.qa.internal"},
	}
	assert.False(t, po.ToDomain().Complete())
}
