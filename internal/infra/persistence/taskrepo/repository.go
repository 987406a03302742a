package taskrepo

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/sahilkruz07/sqlautomation/internal/biz/sequence"
	domain "github.com/sahilkruz07/sqlautomation/internal/biz/task"
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

// Create 先从计数器分配TaskID再插入，分配失败则整个创建中止
func (r *MysqlRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	taskID, err := r.seq.NextID(ctx, sequence.CounterTask)
	if err != nil {
		return err
	}
	task.TaskID = taskID

	po := new(TaskPo).FromDomain(task)
	if err := r.Db(ctx).Create(po).Error; err != nil {
		return err
	}
	task.CreatedDate = po.CreatedAt
	task.UpdatedDate = po.UpdatedAt
	return nil
}

func (r *MysqlRepositoryImpl) GetByTaskID(ctx context.Context, taskID string) (*domain.Task, error) {
	var po TaskPo
	if err := r.Db(ctx).Where("task_id = ?", taskID).First(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return po.ToDomain(), nil
}

func (r *MysqlRepositoryImpl) List(ctx context.Context, skip, limit int, search string) ([]*domain.Task, error) {
	query := r.Db(ctx).Model(&TaskPo{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"task_id LIKE ? OR task_description LIKE ? OR db_name LIKE ? OR query_type LIKE ? OR created_by LIKE ?",
			like, like, like, like, like,
		)
	}

	var pos []TaskPo
	err := query.Order("created_at DESC, task_id DESC").Offset(skip).Limit(limit).Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return lo.Map(pos, func(po TaskPo, _ int) *domain.Task {
		return po.ToDomain()
	}), nil
}

func (r *MysqlRepositoryImpl) Update(ctx context.Context, taskID string, patch *domain.TaskPatch) error {
	values := patchToMap(patch)
	if len(values) == 0 {
		return nil
	}
	return r.Db(ctx).Model(&TaskPo{}).Where("task_id = ?", taskID).Updates(values).Error
}

func (r *MysqlRepositoryImpl) Delete(ctx context.Context, taskID string) error {
	return r.Db(ctx).Where("task_id = ?", taskID).Delete(&TaskPo{}).Error
}

func (r *MysqlRepositoryImpl) FindScheduled(ctx context.Context) ([]*domain.Task, error) {
	var pos []TaskPo
	if err := r.Db(ctx).Where("schedule <> ''").Find(&pos).Error; err != nil {
		return nil, err
	}
	return lo.Map(pos, func(po TaskPo, _ int) *domain.Task {
		return po.ToDomain()
	}), nil
}

func patchToMap(patch *domain.TaskPatch) map[string]any {
	values := make(map[string]any)
	if patch.TaskDescription != nil {
		values["task_description"] = *patch.TaskDescription
	}
	if patch.DBName != nil {
		values["db_name"] = *patch.DBName
	}
	if patch.SQLQuery != nil {
		values["sql_query"] = *patch.SQLQuery
	}
	if patch.QueryType != nil {
		values["query_type"] = *patch.QueryType
	}
	if patch.Schedule != nil {
		values["schedule"] = *patch.Schedule
	}
	if patch.ScheduleEnv != nil {
		values["schedule_env"] = *patch.ScheduleEnv
	}
	return values
}
