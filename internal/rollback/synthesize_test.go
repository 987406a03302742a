package rollback

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizer(NewRegexExtractor())
}

func TestExtractTarget(t *testing.T) {
	ex := NewRegexExtractor()

	table, where, ok := ex.ExtractTarget("DELETE FROM users WHERE id = 1")
	assert.True(t, ok)
	assert.Equal(t, "users", table)
	assert.Equal(t, "WHERE id = 1", where)

	table, where, ok = ex.ExtractTarget("UPDATE users SET name = 'x' WHERE id = 2")
	assert.True(t, ok)
	assert.Equal(t, "users", table)
	assert.Equal(t, "WHERE id = 2", where)

	// 无WHERE的变更不提取，前像抓取直接跳过
	_, _, ok = ex.ExtractTarget("DELETE FROM users")
	assert.False(t, ok)

	_, _, ok = ex.ExtractTarget("INSERT INTO users (id) VALUES (1)")
	assert.False(t, ok)

	_, _, ok = ex.ExtractTarget("SELECT * FROM users WHERE id = 1")
	assert.False(t, ok)
}

func TestSynthesizeSelect(t *testing.T) {
	s := newTestSynthesizer()
	assert.Equal(t, "", s.Synthesize("SELECT", "SELECT * FROM users", nil, nil))
}

func TestSynthesizeInsert(t *testing.T) {
	s := newTestSynthesizer()

	got := s.Synthesize("INSERT",
		"INSERT INTO users (id, name) VALUES (1, 'a'), (2, 'b')", nil, nil)
	assert.Equal(t, "DELETE FROM users WHERE id IN (1, 2)", got)

	got = s.Synthesize("INSERT", "INSERT INTO users (id) VALUES (7);", nil, nil)
	assert.Equal(t, "DELETE FROM users WHERE id IN (7)", got)

	// 解析不了的INSERT给诊断注释
	got = s.Synthesize("INSERT", "INSERT INTO users SELECT * FROM staging", nil, nil)
	assert.Equal(t, "-- Could not generate rollback for INSERT (Complex parsing required)", got)
}

func TestSynthesizeDelete(t *testing.T) {
	s := newTestSynthesizer()

	pre := &PreImage{
		Columns: []string{"id", "name"},
		Rows: []map[string]any{
			{"id": int64(1), "name": "alice"},
			{"id": int64(2), "name": "O'Brien"},
		},
	}
	got := s.Synthesize("DELETE", "DELETE FROM users WHERE age > 20", nil, pre)
	want := "INSERT INTO users (id, name) VALUES (1, 'alice');\n" +
		"INSERT INTO users (id, name) VALUES (2, 'O''Brien');"
	assert.Equal(t, want, got, spew.Sdump(pre))

	got = s.Synthesize("DELETE", "DELETE FROM users WHERE id = 99", nil, nil)
	assert.Equal(t, "-- No old data found to rollback DELETE", got)
}

func TestSynthesizeUpdate(t *testing.T) {
	s := newTestSynthesizer()

	pre := &PreImage{
		Columns: []string{"id", "name"},
		Rows: []map[string]any{
			{"id": int64(1), "name": "old"},
		},
	}
	got := s.Synthesize("UPDATE", "UPDATE users SET name = 'new' WHERE id = 1", nil, pre)
	assert.Equal(t, "UPDATE users SET id = 1, name = 'old' WHERE id = 1;", got)

	got = s.Synthesize("UPDATE", "UPDATE users SET name = 'new' WHERE id = 99", nil, nil)
	assert.Equal(t, "-- No old data found to rollback UPDATE", got)
}

func TestSynthesizeUpdateFallbackColumnOrder(t *testing.T) {
	s := newTestSynthesizer()

	// 列序缺失时按键名排序，保证输出稳定
	pre := &PreImage{
		Rows: []map[string]any{
			{"name": "old", "id": int64(1)},
		},
	}
	got := s.Synthesize("UPDATE", "UPDATE users SET name = 'new' WHERE id = 1", nil, pre)
	assert.Equal(t, "UPDATE users SET id = 1, name = 'old' WHERE id = 1;", got)
}

func TestPreImageFirstColumn(t *testing.T) {
	assert.Equal(t, "", (*PreImage)(nil).FirstColumn())
	assert.Equal(t, "id", (&PreImage{Columns: []string{"id", "name"}}).FirstColumn())
	assert.Equal(t, "a", (&PreImage{Rows: []map[string]any{{"b": 1, "a": 2}}}).FirstColumn())
	assert.Equal(t, "", (&PreImage{}).FirstColumn())
}
