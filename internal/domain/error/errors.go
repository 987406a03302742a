package error

import "errors"

// 领域层错误定义

var (
	// Task相关错误
	ErrTaskNotFound     = errors.New("任务未找到")
	ErrTaskInvalidType  = errors.New("查询类型无效")
	ErrTaskInvalidInput = errors.New("任务输入无效")

	// Run相关错误
	ErrRunNotFound = errors.New("执行记录未找到")

	// 环境配置相关错误
	ErrEnvConfigNotFound = errors.New("环境配置未找到")

	// 通用错误
	ErrInvalidInput  = errors.New("输入参数无效")
	ErrInternalError = errors.New("内部错误")
)

// DomainError 领域错误接口
type DomainError interface {
	error
	Code() string
	Message() string
}

// BusinessError 业务错误
type BusinessError struct {
	code    string
	message string
	cause   error
}

func NewBusinessError(code, message string, cause error) *BusinessError {
	return &BusinessError{
		code:    code,
		message: message,
		cause:   cause,
	}
}

func (e *BusinessError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *BusinessError) Code() string {
	return e.code
}

func (e *BusinessError) Message() string {
	return e.message
}

func (e *BusinessError) Unwrap() error {
	return e.cause
}
