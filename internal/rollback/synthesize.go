package rollback

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/wire"
)

var Provider = wire.NewSet(NewSynthesizer, NewRegexExtractor, wire.Bind(new(TargetExtractor), new(*RegexExtractor)))

// PreImage 变更语句执行前经派生SELECT抓取的行集
// Columns保留查询返回的列序，回滚生成依赖这个顺序
type PreImage struct {
	Columns []string
	Rows    []map[string]any
}

// FirstColumn 首列名，列序缺失时取首行键名排序后的第一个
func (p *PreImage) FirstColumn() string {
	if p == nil {
		return ""
	}
	if len(p.Columns) > 0 {
		return p.Columns[0]
	}
	if len(p.Rows) == 0 {
		return ""
	}
	keys := sortedKeys(p.Rows[0])
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

func (p *PreImage) columnsFor(row map[string]any) []string {
	if len(p.Columns) > 0 {
		return p.Columns
	}
	return sortedKeys(row)
}

// Synthesizer 逆向语句生成器，尽力而为的纯文本处理
// 任何内部失败都返回"-- "开头的诊断注释而不是报错
type Synthesizer struct {
	extractor TargetExtractor
}

func NewSynthesizer(extractor TargetExtractor) *Synthesizer {
	return &Synthesizer{extractor: extractor}
}

// Extractor 编排层派生前像SELECT时复用同一套提取逻辑
func (s *Synthesizer) Extractor() TargetExtractor {
	return s.extractor
}

// Synthesize 按声明的语句类型生成回滚语句
func (s *Synthesizer) Synthesize(queryType, stmt string, params map[string]any, pre *PreImage) (rollback string) {
	defer func() {
		if r := recover(); r != nil {
			rollback = fmt.Sprintf("-- Error generating rollback: %v", r)
		}
	}()

	switch strings.ToUpper(strings.TrimSpace(queryType)) {
	case "SELECT":
		// 只读，无需回滚
		return ""
	case "INSERT":
		return s.insertRollback(stmt)
	case "DELETE":
		return s.deleteRollback(stmt, pre)
	case "UPDATE":
		return s.updateRollback(stmt, pre)
	}
	return ""
}

// insertRollback INSERT的逆操作：按首列值生成DELETE ... WHERE col IN (...)
// 每个值元组只取到首个分隔符为止的字面量，这是启发式而非完整表达式解析
func (s *Synthesizer) insertRollback(stmt string) string {
	m := insertHeadRe.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return "-- Could not generate rollback for INSERT (Complex parsing required)"
	}
	table := m[1]
	firstCol := strings.TrimSpace(strings.SplitN(m[2], ",", 2)[0])
	valuesPart := strings.TrimSuffix(strings.TrimSpace(m[3]), ";")

	var values []string
	for _, tuple := range valueTupleRe.FindAllStringSubmatch(valuesPart, -1) {
		first := strings.TrimSpace(strings.SplitN(tuple[1], ",", 2)[0])
		values = append(values, first)
	}
	if len(values) == 0 {
		return "-- Could not generate rollback for INSERT (Complex parsing required)"
	}
	return fmt.Sprintf("DELETE FROM %s WHERE %s IN (%s)", table, firstCol, strings.Join(values, ", "))
}

// deleteRollback DELETE的逆操作：对每行前像生成一条INSERT
func (s *Synthesizer) deleteRollback(stmt string, pre *PreImage) string {
	if pre == nil || len(pre.Rows) == 0 {
		return "-- No old data found to rollback DELETE"
	}

	table := "UNKNOWN_TABLE"
	if m := deleteTableRe.FindStringSubmatch(strings.TrimSpace(stmt)); m != nil {
		table = m[1]
	}

	inserts := make([]string, 0, len(pre.Rows))
	for _, row := range pre.Rows {
		cols := pre.columnsFor(row)
		vals := make([]string, 0, len(cols))
		for _, col := range cols {
			vals = append(vals, FormatValue(row[col]))
		}
		inserts = append(inserts, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
			table, strings.Join(cols, ", "), strings.Join(vals, ", ")))
	}
	return strings.Join(inserts, "\n")
}

// updateRollback UPDATE的逆操作：用前像重建每行，WHERE键取行的首列
// 首列不保证是主键，这是原设计保留下来的启发式选键
func (s *Synthesizer) updateRollback(stmt string, pre *PreImage) string {
	if pre == nil || len(pre.Rows) == 0 {
		return "-- No old data found to rollback UPDATE"
	}

	table := "UNKNOWN_TABLE"
	if m := updateTableRe.FindStringSubmatch(strings.TrimSpace(stmt)); m != nil {
		table = m[1]
	}

	firstCol := pre.FirstColumn()
	updates := make([]string, 0, len(pre.Rows))
	for _, row := range pre.Rows {
		cols := pre.columnsFor(row)
		assignments := make([]string, 0, len(cols))
		for _, col := range cols {
			assignments = append(assignments, FormatAssignment(col, row[col]))
		}
		setClause := strings.Join(assignments, ", ")

		if firstCol == "" {
			updates = append(updates, fmt.Sprintf(
				"-- Warning: No columns found to identify row. UPDATE %s SET %s WHERE ...;", table, setClause))
			continue
		}
		updates = append(updates, fmt.Sprintf("UPDATE %s SET %s WHERE %s;",
			table, setClause, FormatAssignment(firstCol, row[firstCol])))
	}
	return strings.Join(updates, "\n")
}

func sortedKeys(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
