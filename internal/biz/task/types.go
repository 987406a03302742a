package task

// QueryType 任务声明的语句类型
type QueryType string

const (
	QuerySelect QueryType = "SELECT"
	QueryInsert QueryType = "INSERT"
	QueryUpdate QueryType = "UPDATE"
	QueryDelete QueryType = "DELETE"
)

func (t QueryType) Valid() bool {
	switch t {
	case QuerySelect, QueryInsert, QueryUpdate, QueryDelete:
		return true
	}
	return false
}

// IsMutation UPDATE/DELETE需要在执行前抓取前像用于回滚生成
func (t QueryType) IsMutation() bool {
	return t == QueryUpdate || t == QueryDelete
}
