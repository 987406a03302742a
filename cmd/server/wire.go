//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/sahilkruz07/sqlautomation/internal/api"
	"github.com/sahilkruz07/sqlautomation/internal/biz/envconfig"
	"github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"github.com/sahilkruz07/sqlautomation/internal/biz/sequence"
	"github.com/sahilkruz07/sqlautomation/internal/biz/task"
	"github.com/sahilkruz07/sqlautomation/internal/events"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/counterrepo"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/envconfigrepo"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/runrepo"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/taskrepo"
	"github.com/sahilkruz07/sqlautomation/internal/orm"
	"github.com/sahilkruz07/sqlautomation/internal/rollback"
	"github.com/sahilkruz07/sqlautomation/internal/scheduler"
	"github.com/sahilkruz07/sqlautomation/internal/sqlexec"
	"github.com/sahilkruz07/sqlautomation/pkg/config"
	"go.uber.org/zap"
)

func InitializeApp(logger *zap.Logger, cfg config.Config) (*App, error) {
	wire.Build(
		NewApp,

		// config field extractors + infrastructure handles
		ProvideRedisClient,
		ProvideDB,
		ProvideDatabaseConfig,
		ProvideExecutorConfig,
		ProvideSchedulerConfig,
		ProvideCacheTTL,

		api.NewRouter,
		orm.Provider,
		events.Provider,
		scheduler.Provider,
		rollback.Provider,
		sqlexec.Provider,

		// biz providers
		sequence.Provider,
		task.Provider,
		run.Provider,
		envconfig.Provider,

		// infra providers
		counterrepo.Provider,
		taskrepo.Provider,
		runrepo.Provider,
		envconfigrepo.Provider,
	)
	return nil, nil
}
