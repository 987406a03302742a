package envconfig

import (
	"context"
	"errors"
	"testing"
	"time"

	domerr "github.com/sahilkruz07/sqlautomation/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memEnvRepo struct {
	configs map[string]*EnvConfig
	err     error
}

func (r *memEnvRepo) GetConfig(_ context.Context, configKey, env string) (*EnvConfig, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.configs[configKey+":"+env], nil
}

func newTestResolver(repo Repo) *Resolver {
	return NewResolver(repo, nil, time.Minute, zap.NewNop())
}

func TestResolve(t *testing.T) {
	repo := &memEnvRepo{configs: map[string]*EnvConfig{
		"LK_MASTER_DB:DEV": {
			ConfigKey: "LK_MASTER_DB",
			Env:       "DEV",
			Engine:    EngineMySQL,
			Username:  "app",
			Password:  "secret",
			Host:      "db.dev.internal",
			Port:      3306,
			Database:  "master",
		},
	}}

	desc, err := newTestResolver(repo).Resolve(context.Background(), "LK_MASTER_DB", "DEV")
	require.NoError(t, err)
	assert.Equal(t, EngineMySQL, desc.Engine)
	assert.Equal(t, "db.dev.internal", desc.Host)
	assert.Equal(t, "master", desc.Database)
}

func TestResolveNotFound(t *testing.T) {
	repo := &memEnvRepo{configs: map[string]*EnvConfig{}}

	_, err := newTestResolver(repo).Resolve(context.Background(), "LK_MASTER_DB", "PROD")
	assert.ErrorIs(t, err, domerr.ErrEnvConfigNotFound)
}

func TestResolveIncompleteConfig(t *testing.T) {
	// 缺host的残缺记录按未找到处理
	repo := &memEnvRepo{configs: map[string]*EnvConfig{
		"LK_MASTER_DB:QA": {
			ConfigKey: "LK_MASTER_DB",
			Env:       "QA",
			Engine:    EngineMySQL,
			Username:  "app",
			Password:  "secret",
			Port:      3306,
			Database:  "master",
		},
	}}

	_, err := newTestResolver(repo).Resolve(context.Background(), "LK_MASTER_DB", "QA")
	assert.ErrorIs(t, err, domerr.ErrEnvConfigNotFound)
}

func TestResolveRepoError(t *testing.T) {
	repo := &memEnvRepo{err: errors.New("connection refused")}

	_, err := newTestResolver(repo).Resolve(context.Background(), "LK_MASTER_DB", "DEV")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domerr.ErrEnvConfigNotFound)
}

func TestConnDescriptorDSN(t *testing.T) {
	mysql := &ConnDescriptor{
		Engine: EngineMySQL, Host: "h", Port: 3306,
		Database: "db", Username: "u", Password: "p",
	}
	assert.Equal(t, "mysql", mysql.Driver())
	assert.Equal(t, "u:p@tcp(h:3306)/db?parseTime=true&loc=Local", mysql.DSN())
	assert.Equal(t, "mysql://u:p@h:3306/db", mysql.URI())
	assert.Equal(t, "mysql://h:3306/db", mysql.Redacted())

	pg := &ConnDescriptor{
		Engine: EnginePostgres, Host: "h", Port: 5432,
		Database: "db", Username: "u", Password: "p",
	}
	assert.Equal(t, "postgres", pg.Driver())
	assert.Equal(t, "postgres://u:p@h:5432/db?sslmode=disable", pg.DSN())

	lite := &ConnDescriptor{Engine: EngineSQLite, Database: "/tmp/x.db"}
	assert.Equal(t, "sqlite3", lite.Driver())
	assert.Equal(t, "/tmp/x.db", lite.DSN())
}
