package sequence

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCounterRepo 内存计数器，模拟数据库的原子自增
type memCounterRepo struct {
	mu       sync.Mutex
	counters map[CounterType]uint64
	err      error
}

func newMemCounterRepo() *memCounterRepo {
	return &memCounterRepo{counters: make(map[CounterType]uint64)}
}

func (r *memCounterRepo) IncrementAndFetch(_ context.Context, counterType CounterType) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.counters[counterType]++
	return r.counters[counterType], nil
}

func TestNextIDFormat(t *testing.T) {
	alloc := NewUsecase(newMemCounterRepo())

	id, err := alloc.NextID(context.Background(), CounterTask)
	require.NoError(t, err)
	assert.Equal(t, "TSK-000001", id)

	id, err = alloc.NextID(context.Background(), CounterRun)
	require.NoError(t, err)
	assert.Equal(t, "RTSK-000001", id)

	// 各类型独立计数
	id, err = alloc.NextID(context.Background(), CounterTask)
	require.NoError(t, err)
	assert.Equal(t, "TSK-000002", id)
}

func TestNextIDWidthGrows(t *testing.T) {
	repo := newMemCounterRepo()
	repo.counters[CounterTask] = 999999

	alloc := NewUsecase(repo)
	id, err := alloc.NextID(context.Background(), CounterTask)
	require.NoError(t, err)
	// 超过6位后自然变宽，不截断
	assert.Equal(t, "TSK-1000000", id)
}

func TestNextIDConcurrent(t *testing.T) {
	const n = 100

	alloc := NewUsecase(newMemCounterRepo())

	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := alloc.NextID(context.Background(), CounterTask)
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	// 无重复无空洞
	seen := make(map[string]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.True(t, seen["TSK-000001"])
	assert.True(t, seen["TSK-000100"])
}

func TestNextIDRepoError(t *testing.T) {
	repo := newMemCounterRepo()
	repo.err = errors.New("connection lost")

	alloc := NewUsecase(repo)
	id, err := alloc.NextID(context.Background(), CounterTask)
	assert.Error(t, err)
	assert.Empty(t, id)
}
