package rollback

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatValue 把值格式化为SQL字面量
// NULL；整数/浮点不加引号；其余（含日期/字符串）单引号包裹，内部单引号翻倍转义
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return quote(x.Format("2006-01-02 15:04:05"))
	case []byte:
		return quote(string(x))
	default:
		return quote(fmt.Sprintf("%v", x))
	}
}

// FormatAssignment col = val 形式的赋值子句
func FormatAssignment(column string, value any) string {
	return column + " = " + FormatValue(value)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
