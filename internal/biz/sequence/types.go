package sequence

// CounterType 计数器类型标签
type CounterType string

const (
	CounterTask CounterType = "TASK"
	CounterRun  CounterType = "RUN_TASK"
)

// Prefix 对应ID的固定前缀
func (t CounterType) Prefix() string {
	switch t {
	case CounterTask:
		return "TSK"
	case CounterRun:
		return "RTSK"
	default:
		return string(t)
	}
}
