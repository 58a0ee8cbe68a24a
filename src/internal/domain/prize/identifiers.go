package prize

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// PrizeMarker 是 PrizeID 的標記類型
type PrizeMarker struct{}

// PrizeID 獎項的唯一標識符
type PrizeID = shared.EntityID[PrizeMarker]

// NewPrizeID 生成新的獎項 ID（UUID v4）
func NewPrizeID() PrizeID {
	return shared.NewEntityID[PrizeMarker]()
}

// PrizeIDFromString 從字串解析獎項 ID
func PrizeIDFromString(s string) (PrizeID, error) {
	return shared.EntityIDFromString[PrizeMarker](s, ErrInvalidPrizeID)
}
