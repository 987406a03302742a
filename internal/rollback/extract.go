package rollback

import (
	"regexp"
	"strings"
)

// TargetExtractor 从变更语句里提取目标表和WHERE子句
// 正则提取是脆弱的，收敛在这个接口后面，换成真正的SQL解析器时不动编排层
type TargetExtractor interface {
	ExtractTarget(stmt string) (table, where string, ok bool)
}

var (
	deleteTargetRe = regexp.MustCompile(`(?is)DELETE\s+FROM\s+(\S+)\s+(WHERE\s+.+)`)
	updateTargetRe = regexp.MustCompile(`(?is)UPDATE\s+(\S+)\s+SET\s+.+\s+(WHERE\s+.+)`)

	deleteTableRe = regexp.MustCompile(`(?i)DELETE\s+FROM\s+(\S+)`)
	updateTableRe = regexp.MustCompile(`(?i)UPDATE\s+(\S+)`)
	insertHeadRe  = regexp.MustCompile(`(?is)INSERT\s+INTO\s+([^\s(]+)\s*\((.+?)\)\s*VALUES\s*(.+)`)
	valueTupleRe  = regexp.MustCompile(`\(([^)]*)\)`)
)

// RegexExtractor 默认实现，只匹配最外层语句
type RegexExtractor struct{}

func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

func (RegexExtractor) ExtractTarget(stmt string) (string, string, bool) {
	switch firstKeyword(stmt) {
	case "DELETE":
		if m := deleteTargetRe.FindStringSubmatch(stmt); m != nil {
			return m[1], m[2], true
		}
	case "UPDATE":
		if m := updateTargetRe.FindStringSubmatch(stmt); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

func firstKeyword(stmt string) string {
	fields := strings.Fields(strings.TrimSpace(stmt))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}
