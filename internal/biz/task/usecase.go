package task

import (
	"context"

	"github.com/google/wire"
	"github.com/samber/mo"
	domerr "github.com/sahilkruz07/sqlautomation/internal/domain/error"
)

var Provider = wire.NewSet(NewUsecase)

type Usecase struct {
	repo Repo
}

func NewUsecase(repo Repo) *Usecase {
	return &Usecase{repo: repo}
}

func (u *Usecase) Create(ctx context.Context, task *Task) error {
	if !task.QueryType.Valid() {
		return domerr.ErrTaskInvalidType
	}
	return u.repo.Create(ctx, task)
}

func (u *Usecase) Get(ctx context.Context, taskID string) (*Task, error) {
	task, err := u.repo.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	} else if task == nil {
		return nil, domerr.ErrTaskNotFound
	}
	return task, nil
}

func (u *Usecase) List(ctx context.Context, skip, limit int, search string) ([]*Task, error) {
	return u.repo.List(ctx, skip, limit, search)
}

// UpdateRequest 任务更新入参，缺省字段不修改
type UpdateRequest struct {
	TaskDescription mo.Option[string]
	DBName          mo.Option[string]
	SQLQuery        mo.Option[string]
	QueryType       mo.Option[QueryType]
	Schedule        mo.Option[string]
	ScheduleEnv     mo.Option[string]
}

func (u *Usecase) Update(ctx context.Context, taskID string, req *UpdateRequest) (*Task, error) {
	task, err := u.repo.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	} else if task == nil {
		return nil, domerr.ErrTaskNotFound
	}

	if qt, ok := req.QueryType.Get(); ok && !qt.Valid() {
		return nil, domerr.ErrTaskInvalidType
	}

	patch := NewTaskPatch()
	patch.TaskDescription = req.TaskDescription.ToPointer()
	patch.DBName = req.DBName.ToPointer()
	patch.SQLQuery = req.SQLQuery.ToPointer()
	patch.QueryType = req.QueryType.ToPointer()
	patch.Schedule = req.Schedule.ToPointer()
	patch.ScheduleEnv = req.ScheduleEnv.ToPointer()

	if !patch.Empty() {
		if err := u.repo.Update(ctx, taskID, patch); err != nil {
			return nil, err
		}
	}
	return u.repo.GetByTaskID(ctx, taskID)
}

func (u *Usecase) Delete(ctx context.Context, taskID string) error {
	task, err := u.repo.GetByTaskID(ctx, taskID)
	if err != nil {
		return err
	} else if task == nil {
		return domerr.ErrTaskNotFound
	}
	return u.repo.Delete(ctx, taskID)
}
