package sqlexec

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/wire"
	"github.com/jmoiron/sqlx"
	"github.com/sahilkruz07/sqlautomation/internal/biz/envconfig"
	"github.com/sahilkruz07/sqlautomation/pkg/config"
	"go.uber.org/zap"

	// 目标库驱动
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

var Provider = wire.NewSet(New, wire.Bind(new(Executor), new(*DBExecutor)))

// Result 一次语句执行的结果
// 返回行集的语句填充Rows，Affected仅供参考；
// 不返回行集的语句Rows为空，Affected为权威值
type Result struct {
	Columns  []string // 结果集列序
	Rows     []map[string]any
	Affected int64
}

// Executor 目标库语句执行接口
type Executor interface {
	Execute(ctx context.Context, desc *envconfig.ConnDescriptor, stmt string, params map[string]any) (*Result, error)
}

type DBExecutor struct {
	cfg    config.ExecutorConfig
	logger *zap.Logger
}

func New(cfg config.ExecutorConfig, logger *zap.Logger) *DBExecutor {
	return &DBExecutor{cfg: cfg, logger: logger}
}

// Execute 每次调用独立建连，所有退出路径都释放连接
// SELECT缺少LIMIT时按配置上限追加，命名参数经sqlx按驱动绑定
func (e *DBExecutor) Execute(ctx context.Context, desc *envconfig.ConnDescriptor, stmt string, params map[string]any) (*Result, error) {
	db, err := sqlx.Open(desc.Driver(), desc.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open connection to %s: %w", desc.Redacted(), err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if e.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.QueryTimeout)
		defer cancel()
	}

	stmt = InjectLimit(stmt, e.cfg.RowLimit)
	if params == nil {
		params = map[string]any{}
	}

	e.logger.Debug("executing statement",
		zap.String("target", desc.Redacted()),
		zap.String("statement", stmt))

	if returnsRows(stmt) {
		return e.query(ctx, db, stmt, params)
	}
	return e.exec(ctx, db, stmt, params)
}

func (e *DBExecutor) query(ctx context.Context, db *sqlx.DB, stmt string, params map[string]any) (*Result, error) {
	rows, err := sqlx.NamedQueryContext(ctx, db, stmt, params)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	// MySQL文本协议下数值列也以[]byte返回，记下列类型才能还原成数字
	colTypes := make(map[string]string, len(columns))
	if cts, ctErr := rows.ColumnTypes(); ctErr == nil {
		for _, ct := range cts {
			colTypes[ct.Name()] = ct.DatabaseTypeName()
		}
	}

	var data []map[string]any
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		data = append(data, normalizeRow(row, colTypes))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	e.logger.Debug("query returned rows", zap.Int("count", len(data)))
	return &Result{Columns: columns, Rows: data, Affected: int64(len(data))}, nil
}

func (e *DBExecutor) exec(ctx context.Context, db *sqlx.DB, stmt string, params map[string]any) (*Result, error) {
	res, err := db.NamedExecContext(ctx, stmt, params)
	if err != nil {
		return nil, fmt.Errorf("statement failed: %w", err)
	}

	// 部分驱动对无结果集的语句拿不到affected数，按0行处理而不是报错
	affected, err := res.RowsAffected()
	if err != nil {
		affected = 0
	}

	e.logger.Debug("statement affected rows", zap.Int64("count", affected))
	return &Result{Affected: affected}, nil
}

// returnsRows 按首关键字判断语句是否返回行集
func returnsRows(stmt string) bool {
	switch FirstKeyword(stmt) {
	case "SELECT", "SHOW", "DESC", "DESCRIBE", "EXPLAIN", "WITH":
		return true
	}
	return false
}

// normalizeRow 驱动返回的[]byte按列类型还原：数值列转回数字，其余转string
// 不还原的话数值在回滚语句里会被当字符串加引号
func normalizeRow(row map[string]any, colTypes map[string]string) map[string]any {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = restoreValue(b, colTypes[k])
		}
	}
	return row
}

// restoreValue 只按列类型转换，不做内容嗅探；解析失败回落到string
func restoreValue(b []byte, dbType string) any {
	switch strings.ToUpper(dbType) {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT", "INT2", "INT4", "INT8":
		if n, err := strconv.ParseInt(string(b), 10, 64); err == nil {
			return n
		}
	case "FLOAT", "DOUBLE", "DECIMAL", "NUMERIC", "REAL", "FLOAT4", "FLOAT8":
		if f, err := strconv.ParseFloat(string(b), 64); err == nil {
			return f
		}
	}
	return string(b)
}
