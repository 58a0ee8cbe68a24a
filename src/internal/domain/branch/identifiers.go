package branch

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// BranchMarker 是 BranchID 的標記類型
type BranchMarker struct{}

// BranchID 分店的唯一標識符
//
// 實現：EntityID[BranchMarker] 的類型別名
type BranchID = shared.EntityID[BranchMarker]

// NewBranchID 生成新的分店 ID（UUID v4）
//
// 使用場景：平台建立分店主檔時（引擎內只在測試中用到）
func NewBranchID() BranchID {
	return shared.NewEntityID[BranchMarker]()
}

// BranchIDFromString 從字串解析分店 ID
func BranchIDFromString(s string) (BranchID, error) {
	return shared.EntityIDFromString[BranchMarker](s, ErrInvalidBranchID)
}
