package sequence

import (
	"context"
	"fmt"

	"github.com/google/wire"
)

var Provider = wire.NewSet(NewUsecase, wire.Bind(new(Allocator), new(*Usecase)))

// Allocator 人类可读ID分配器
type Allocator interface {
	NextID(ctx context.Context, counterType CounterType) (string, error)
}

type Usecase struct {
	repo Repo
}

func NewUsecase(repo Repo) *Usecase {
	return &Usecase{repo: repo}
}

// NextID 分配下一个ID，格式为 {PREFIX}-{6位零填充计数值}，如 TSK-000001
// 计数器自增失败时直接返回错误，调用方必须中止整个操作，不得用占位ID落库
func (u *Usecase) NextID(ctx context.Context, counterType CounterType) (string, error) {
	value, err := u.repo.IncrementAndFetch(ctx, counterType)
	if err != nil {
		return "", fmt.Errorf("failed to allocate %s id: %w", counterType, err)
	}
	return fmt.Sprintf("%s-%06d", counterType.Prefix(), value), nil
}
