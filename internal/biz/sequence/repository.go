package sequence

import "context"

// Repo 计数器存储接口
// IncrementAndFetch 必须是原子的"自增并取回新值"：计数器不存在时按初值0插入再自增，
// 首次分配返回1。读后写的实现并发下会丢失更新，不允许。
type Repo interface {
	IncrementAndFetch(ctx context.Context, counterType CounterType) (uint64, error)
}
