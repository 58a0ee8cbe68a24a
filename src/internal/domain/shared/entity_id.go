package shared

import (
	"github.com/google/uuid"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 是一個泛型實體 ID 值對象
//
// 設計原則：
// 1. 使用 Go 1.18+ 泛型消除重複代碼（DRY 原則）
// 2. 類型安全：不同實體的 ID 不能混用（SessionID ≠ VoucherID）
// 3. 不可變性（unexported field）
// 4. 自我驗證（建構函數檢查）
//
// 泛型參數 T：
// - 用於類型區分的標記類型（marker type）
// - 例如：EntityID[SessionMarker] 和 EntityID[VoucherMarker] 是不同類型
// - T 不需要有任何方法或字段，只用於編譯時類型檢查
//
// 使用範例：
//   // 定義標記類型
//   type VoucherMarker struct{}
//   type VoucherID = shared.EntityID[VoucherMarker]
//
//   // 使用
//   id := shared.NewEntityID[VoucherMarker]()
//   parsed, _ := shared.EntityIDFromString[VoucherMarker]("uuid-string", ErrInvalidVoucherID)
type EntityID[T any] struct {
	value uuid.UUID
}

// NewEntityID 生成新的實體 ID（使用 UUID v4）
func NewEntityID[T any]() EntityID[T] {
	return EntityID[T]{value: uuid.New()}
}

// EntityIDFromString 從字串解析實體 ID
//
// 參數：
//   s - UUID 字串（標準格式：xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx）
//   errTemplate - 解析失敗時返回的錯誤（由調用者提供，保持錯誤類型一致性）
//
// 設計決策：為什麼需要 errTemplate 參數？
// - 不同實體的 ID 應該返回不同的錯誤（ErrInvalidVoucherID vs ErrInvalidSessionID）
// - 錯誤實例定義在各自的 bounded context（session, voucher, etc.）
// - shared 層不應依賴具體業務錯誤，保持通用性
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	id, err := uuid.Parse(s)
	if err != nil {
		// 使用調用者提供的錯誤模板，並添加上下文
		if domainErr, ok := errTemplate.(*DomainError); ok {
			return EntityID[T]{}, domainErr.WithContext(
				"input", s,
				"parse_error", err.Error(),
			)
		}
		// 非 DomainError 的模板直接返回
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: id}, nil
}

// String 轉換為字串表示（小寫 UUID）
func (e EntityID[T]) String() string {
	return e.value.String()
}

// Equals 比較兩個 EntityID 是否相等
//
// 注意：只能比較相同類型的 ID
//   voucherID1.Equals(voucherID2) ✓
//   voucherID.Equals(sessionID) ✗ 編譯錯誤（類型不匹配）
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為空 ID（零值）
//
// 空 ID 的場景：
// - 未初始化的結構體字段
// - 解析失敗後的零值返回
func (e EntityID[T]) IsEmpty() bool {
	return e.value == uuid.Nil
}
