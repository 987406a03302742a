package sqlexec

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sahilkruz07/sqlautomation/internal/biz/envconfig"
	"github.com/sahilkruz07/sqlautomation/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	_ "github.com/mattn/go-sqlite3"
)

// newTestTarget 建一个带种子数据的sqlite目标库
func newTestTarget(t *testing.T) *envconfig.ConnDescriptor {
	t.Helper()

	path := filepath.Join(t.TempDir(), "target.db")
	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users (id, name, age) VALUES (1, 'alice', 30), (2, 'bob', 25)`)
	require.NoError(t, err)

	return &envconfig.ConnDescriptor{
		Engine:   envconfig.EngineSQLite,
		Database: path,
	}
}

func newTestExecutor(t *testing.T) *DBExecutor {
	t.Helper()
	return New(config.ExecutorConfig{
		RowLimit:     25,
		QueryTimeout: 10 * time.Second,
	}, zap.NewNop())
}

func TestDBExecutorSelect(t *testing.T) {
	desc := newTestTarget(t)
	exec := newTestExecutor(t)

	result, err := exec.Execute(context.Background(), desc, "SELECT id, name FROM users ORDER BY id", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, result.Columns)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "alice", result.Rows[0]["name"])
	assert.Equal(t, int64(1), result.Rows[0]["id"])
}

func TestDBExecutorNamedParams(t *testing.T) {
	desc := newTestTarget(t)
	exec := newTestExecutor(t)

	result, err := exec.Execute(context.Background(), desc,
		"SELECT name FROM users WHERE age > :min_age ORDER BY id",
		map[string]any{"min_age": 26})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "alice", result.Rows[0]["name"])
}

func TestDBExecutorMutation(t *testing.T) {
	desc := newTestTarget(t)
	exec := newTestExecutor(t)

	result, err := exec.Execute(context.Background(), desc,
		"UPDATE users SET age = :age WHERE name = :name",
		map[string]any{"age": 31, "name": "alice"})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Equal(t, int64(1), result.Affected)

	// 变更对后续连接可见
	check, err := exec.Execute(context.Background(), desc,
		"SELECT age FROM users WHERE name = :name", map[string]any{"name": "alice"})
	require.NoError(t, err)
	require.Len(t, check.Rows, 1)
	assert.Equal(t, int64(31), check.Rows[0]["age"])
}

func TestDBExecutorInsertAffected(t *testing.T) {
	desc := newTestTarget(t)
	exec := newTestExecutor(t)

	result, err := exec.Execute(context.Background(), desc,
		"INSERT INTO users (id, name, age) VALUES (:id, :name, :age)",
		map[string]any{"id": 3, "name": "carol", "age": 40})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Affected)
}

func TestNormalizeRowRestoresNumericColumns(t *testing.T) {
	row := map[string]any{
		"id":    []byte("1"),
		"price": []byte("9.5"),
		"code":  []byte("007"),
		"note":  []byte("O'Brien"),
	}
	colTypes := map[string]string{
		"id":    "BIGINT",
		"price": "DECIMAL",
		"code":  "VARCHAR",
		"note":  "TEXT",
	}

	got := normalizeRow(row, colTypes)
	assert.Equal(t, int64(1), got["id"])
	assert.Equal(t, 9.5, got["price"])
	// 数字样的字符串列不动，避免吃掉前导零
	assert.Equal(t, "007", got["code"])
	assert.Equal(t, "O'Brien", got["note"])
}

func TestRestoreValueFallsBackToString(t *testing.T) {
	// 超出int64的无符号值解析失败，保持string而不是产出坏字面量
	assert.Equal(t, "18446744073709551615", restoreValue([]byte("18446744073709551615"), "BIGINT"))
	// 未知列类型保持string
	assert.Equal(t, "42", restoreValue([]byte("42"), ""))
}

func TestDBExecutorStatementError(t *testing.T) {
	desc := newTestTarget(t)
	exec := newTestExecutor(t)

	_, err := exec.Execute(context.Background(), desc, "SELECT * FROM no_such_table", nil)
	assert.Error(t, err)

	_, err = exec.Execute(context.Background(), desc, "DELETE FROM no_such_table WHERE id = 1", nil)
	assert.Error(t, err)
}
