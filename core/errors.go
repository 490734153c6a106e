package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - Store 错误：NOT_FOUND, UNAVAILABLE
//   - Engine 错误：INVALID_INPUT, INTERNAL_ERROR
//
// 注意：输入快照（衣柜/偏好/历史/评分池）获取失败属于可降级场景，
// 引擎内部消化为默认值，不会以 DomainError 形式抛给调用方。
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "INTERNAL_ERROR"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "engine"）
	Cause   error  // 底层错误（可选）
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*DomainError)
	return ok
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorWithCause 创建带底层错误的领域错误
func NewDomainErrorWithCause(module, code, message string, cause error) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeUnavailable   = "UNAVAILABLE"    // 服务不可用
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleStore      = "store"      // 存储模块
	ModuleCloset     = "closet"     // 衣柜模块
	ModulePreference = "preference" // 偏好模块
	ModuleRating     = "rating"     // 评分历史模块
	ModuleEngine     = "engine"     // 推荐引擎
)

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsUnavailable 检查错误是否为 UNAVAILABLE
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeUnavailable
	}
	return false
}

// IsInternal 检查错误是否为 INTERNAL_ERROR
func IsInternal(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInternalError
	}
	return false
}
