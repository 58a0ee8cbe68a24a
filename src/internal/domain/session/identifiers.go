package session

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================
//
// 設計原則：每個 bounded context 定義自己的外鍵 ID 類型
// （SessionID 與分店主檔的 branch.BranchID 刻意不共用類型，
// 邊界上以字串傳遞、各自解析，保持 context 之間零依賴）

// SessionMarker 是 SessionID 的標記類型
type SessionMarker struct{}

// SessionID session 的唯一標識符
type SessionID = shared.EntityID[SessionMarker]

// NewSessionID 生成新的 session ID（UUID v4）
func NewSessionID() SessionID {
	return shared.NewEntityID[SessionMarker]()
}

// SessionIDFromString 從字串解析 session ID
func SessionIDFromString(s string) (SessionID, error) {
	return shared.EntityIDFromString[SessionMarker](s, ErrInvalidSessionID)
}

// BranchMarker 是 BranchID 的標記類型
type BranchMarker struct{}

// BranchID session 綁定的分店 ID（本 context 內的表示）
type BranchID = shared.EntityID[BranchMarker]

// NewBranchID 生成新的分店 ID（測試與資料準備用）
func NewBranchID() BranchID {
	return shared.NewEntityID[BranchMarker]()
}

// BranchIDFromString 從字串解析分店 ID
func BranchIDFromString(s string) (BranchID, error) {
	return shared.EntityIDFromString[BranchMarker](s, ErrInvalidBranchID)
}
