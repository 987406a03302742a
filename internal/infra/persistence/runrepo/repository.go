package runrepo

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/samber/lo"
	domain "github.com/sahilkruz07/sqlautomation/internal/biz/run"
	"github.com/sahilkruz07/sqlautomation/internal/biz/sequence"
	"github.com/sahilkruz07/sqlautomation/internal/infra/persistence/commonrepo"
	"gorm.io/gorm"
)

var Provider = wire.NewSet(NewMysqlRepositoryImpl)

type MysqlRepositoryImpl struct {
	commonrepo.DefaultRepo
	seq sequence.Allocator
}

func NewMysqlRepositoryImpl(db commonrepo.DB, seq sequence.Allocator) domain.Repo {
	return &MysqlRepositoryImpl{DefaultRepo: commonrepo.NewDefaultRepo(db), seq: seq}
}

// Create 先从计数器分配RunTaskID再插入，分配失败则整个保存中止
func (r *MysqlRepositoryImpl) Create(ctx context.Context, run *domain.Run) error {
	runTaskID, err := r.seq.NextID(ctx, sequence.CounterRun)
	if err != nil {
		return err
	}
	run.RunTaskID = runTaskID

	po := new(RunPo).FromDomain(run)
	if err := r.Db(ctx).Create(po).Error; err != nil {
		return err
	}
	run.CreatedDate = po.CreatedAt
	return nil
}

func (r *MysqlRepositoryImpl) FindByRunTaskID(ctx context.Context, runTaskID string) (*domain.Run, error) {
	var po RunPo
	if err := r.Db(ctx).Where("run_task_id = ?", runTaskID).First(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return po.ToDomain(), nil
}

func (r *MysqlRepositoryImpl) List(ctx context.Context, skip, limit int, search string) ([]*domain.Run, error) {
	query := r.Db(ctx).Model(&RunPo{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"run_task_id LIKE ? OR task_id LIKE ? OR status LIKE ? OR environment LIKE ? OR created_by LIKE ?",
			like, like, like, like, like,
		)
	}

	var pos []RunPo
	err := query.Order("created_at DESC, run_task_id DESC").Offset(skip).Limit(limit).Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return lo.Map(pos, func(po RunPo, _ int) *domain.Run {
		return po.ToDomain()
	}), nil
}

func (r *MysqlRepositoryImpl) Delete(ctx context.Context, runTaskID string) error {
	return r.Db(ctx).Where("run_task_id = ?", runTaskID).Delete(&RunPo{}).Error
}
