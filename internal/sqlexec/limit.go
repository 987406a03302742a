package sqlexec

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	limitRe     = regexp.MustCompile(`(?i)\bLIMIT\b`)
	procedureRe = regexp.MustCompile(`(?i)\bPROCEDURE\b`)
)

// FirstKeyword 语句首个关键字（去空白、大写）
func FirstKeyword(stmt string) string {
	fields := strings.Fields(strings.TrimSpace(stmt))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// InjectLimit SELECT语句缺少LIMIT时在末尾追加LIMIT {limit}
// 仅检查最外层语句文本：首关键字必须是SELECT、全文没有LIMIT、不涉及存储过程。
// 追加前去掉末尾分号。子查询和CTE不做改写，这是文本层保护而非执行计划级保证。
func InjectLimit(stmt string, limit int) string {
	clean := strings.TrimSpace(stmt)
	if FirstKeyword(clean) != "SELECT" {
		return stmt
	}
	if limitRe.MatchString(clean) || procedureRe.MatchString(clean) {
		return stmt
	}
	clean = strings.TrimSuffix(clean, ";")
	return fmt.Sprintf("%s LIMIT %d", clean, limit)
}
