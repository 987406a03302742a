package rollback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NULL", FormatValue(nil))
	assert.Equal(t, "5", FormatValue(5))
	assert.Equal(t, "42", FormatValue(int64(42)))
	assert.Equal(t, "3.14", FormatValue(3.14))
	assert.Equal(t, "'hello'", FormatValue("hello"))
	assert.Equal(t, "'O''Brien'", FormatValue("O'Brien"))
	assert.Equal(t, "'bytes'", FormatValue([]byte("bytes")))

	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "'2024-05-01 12:30:00'", FormatValue(ts))
}

func TestFormatAssignment(t *testing.T) {
	assert.Equal(t, "name = 'alice'", FormatAssignment("name", "alice"))
	assert.Equal(t, "age = NULL", FormatAssignment("age", nil))
}
