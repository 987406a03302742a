package envconfigrepo

import (
	"context"
	"errors"

	"github.com/google/wire"
	domain "github.com/sahilkruz07/sqlautomation/internal/biz/envconfig"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/commonrepo"
	"gorm.io/gorm"
)

var Provider = wire.NewSet(NewMysqlRepositoryImpl)

type MysqlRepositoryImpl struct {
	commonrepo.DefaultRepo
}

func NewMysqlRepositoryImpl(db commonrepo.DB) domain.Repo {
	return &MysqlRepositoryImpl{DefaultRepo: commonrepo.NewDefaultRepo(db)}
}

// GetConfig 精确匹配(config_key, env)，不做任何归一化
func (r *MysqlRepositoryImpl) GetConfig(ctx context.Context, configKey, env string) (*domain.EnvConfig, error) {
	var po EnvConfigPo
	err := r.Db(ctx).Where("config_key = ? AND env = ?", configKey, env).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return po.ToDomain(), nil
}
