package counterrepo

import (
	"context"

	"github.com/google/wire"
	domain "github.com/sahilkruz07/sqlautomation/internal/biz/sequence"
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

// IncrementAndFetch 单事务内upsert自增再回读
// INSERT ... ON DUPLICATE KEY UPDATE 持有行锁直到提交，并发调用在行锁上串行化，
// 事务内的回读只会看到自己递增后的值，不会出现重复或跳号
func (r *MysqlRepositoryImpl) IncrementAndFetch(ctx context.Context, counterType domain.CounterType) (uint64, error) {
	var value uint64
	err := r.Db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"INSERT INTO counter_master (counter_type, counter_value) VALUES (?, 1) "+
				"ON DUPLICATE KEY UPDATE counter_value = counter_value + 1",
			counterType,
		).Error; err != nil {
			return err
		}
		return tx.Raw(
			"SELECT counter_value FROM counter_master WHERE counter_type = ?",
			counterType,
		).Scan(&value).Error
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}
