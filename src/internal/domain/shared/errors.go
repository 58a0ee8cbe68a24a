package shared

// ===========================
// DomainError 共用錯誤結構
// ===========================

// ErrorCode 錯誤代碼（各 bounded context 定義自己的常量）
type ErrorCode string

// ErrorKind 錯誤分類
//
// 分類語義（呼叫端依此決定行為）：
// - Validation: 輸入格式錯誤，修正輸入後重試
// - NotFound: 目標不存在（token / voucher / branch / prize）
// - Conflict: 狀態衝突（TokenAlreadyUsed / AlreadyRedeemed）
//   與 NotFound 區分：呼叫端可顯示「已被領取」而非「不存在」
// - PolicyViolation: 違反業務政策（過期、每日上限、分店停用）
// - Transient: 儲存層暫時性失敗，整個操作可安全重試
//
// 重要約束：
// - Conflict 和 PolicyViolation 絕不降級為 Transient
// - 只有真正的儲存層/通訊失敗才標記為 Transient
type ErrorKind string

// ErrorKind 常量
const (
	ErrorKindValidation ErrorKind = "VALIDATION"
	ErrorKindNotFound   ErrorKind = "NOT_FOUND"
	ErrorKindConflict   ErrorKind = "CONFLICT"
	ErrorKindPolicy     ErrorKind = "POLICY_VIOLATION"
	ErrorKindTransient  ErrorKind = "TRANSIENT"
)

// DomainError 領域錯誤結構
//
// 設計原則：
// 1. 不使用 fmt.Errorf 或 errors.New（避免字串錯誤）
// 2. 結構化錯誤（Code + Kind + Message + Context）
// 3. 支援錯誤包裝（errors.Is 以 Code 比較）
// 4. 提供上下文信息（WithContext 方法）
//
// 各 bounded context 以此結構定義自己的錯誤實例，
// Kind 讓 Application / Interface Layer 能做統一的分類處理
// （例如 HTTP 狀態碼映射、重試決策），而不需要認識每一個 Code。
type DomainError struct {
	Code    ErrorCode
	Kind    ErrorKind
	Message string
	Context map[string]interface{}
}

// Error 實作 error 介面
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}

	// 包含上下文信息
	return e.Message + " (context: " + formatContext(e.Context) + ")"
}

// WithContext 添加上下文信息（返回新實例，不修改原錯誤）
//
// 使用範例：
//   return ErrTokenExpired.WithContext("token", token, "expired_at", expiresAt)
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	newErr := &DomainError{
		Code:    e.Code,
		Kind:    e.Kind,
		Message: e.Message,
		Context: make(map[string]interface{}),
	}

	// 複製現有上下文
	for k, v := range e.Context {
		newErr.Context[k] = v
	}

	// 添加新上下文
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic("WithContext keys must be strings")
		}
		newErr.Context[key] = keyValues[i+1]
	}

	return newErr
}

// Wrap 包裝底層錯誤（保留原因供除錯，分類與代碼不變）
//
// 使用場景：
// - Infrastructure Layer 將資料庫錯誤轉換為 Transient 錯誤時，
//   保留原始錯誤訊息在 Context 中
func (e *DomainError) Wrap(cause error) *DomainError {
	if cause == nil {
		return e
	}
	return e.WithContext("cause", cause.Error())
}

// Is 實作 errors.Is 比較（以 Code 為準）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// KindOf 取得錯誤的分類
//
// 非 DomainError 的錯誤一律視為 Transient：
// 引擎內所有業務失敗都以 DomainError 表達，
// 會漏出來的未分類錯誤只可能是儲存層/驅動層的意外失敗。
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Kind
	}
	return ErrorKindTransient
}

// IsRetryable 判斷錯誤是否可安全重試
//
// 只有 Transient 可重試；身份 upsert 冪等、voucher code 有碰撞檢查，
// 因此整個 spin / redeem 呼叫在 Transient 失敗後重跑是安全的。
func IsRetryable(err error) bool {
	return KindOf(err) == ErrorKindTransient
}

// formatContext 格式化上下文信息
func formatContext(context map[string]interface{}) string {
	if len(context) == 0 {
		return ""
	}

	result := ""
	for k, v := range context {
		if result != "" {
			result += ", "
		}
		result += k + "=" + formatValue(v)
	}
	return result
}

// formatValue 格式化單個值
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	default:
		return "<value>"
	}
}
