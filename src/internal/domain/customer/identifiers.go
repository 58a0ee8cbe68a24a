package customer

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// CustomerMarker 是 CustomerID 的標記類型
type CustomerMarker struct{}

// CustomerID 顧客的唯一標識符
//
// 實現：EntityID[CustomerMarker] 的類型別名
// 使用：id := NewCustomerID() 或 CustomerIDFromString(s)
type CustomerID = shared.EntityID[CustomerMarker]

// NewCustomerID 生成新的顧客 ID（UUID v4）
//
// 使用場景：首次以手機號碼註冊顧客時
func NewCustomerID() CustomerID {
	return shared.NewEntityID[CustomerMarker]()
}

// CustomerIDFromString 從字串解析顧客 ID
//
// 使用場景：
// - 從數據庫讀取顧客信息
// - API 請求解析
func CustomerIDFromString(s string) (CustomerID, error) {
	return shared.EntityIDFromString[CustomerMarker](s, ErrInvalidCustomerID)
}
