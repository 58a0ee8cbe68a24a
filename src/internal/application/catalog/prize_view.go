package catalog

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
)

// ===========================
// Catalog DTOs
// ===========================

// PrizeView 獎項的只讀視圖（Output DTO）
type PrizeView struct {
	PrizeID     string
	Name        string
	Weight      int
	IsActive    bool
	DailyLimit  *int   // nil = 不設上限
	RetailValue string // decimal 字串表示
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toPrizeView 將獎項實體轉換為視圖 DTO
func toPrizeView(p *prize.Prize) *PrizeView {
	return &PrizeView{
		PrizeID:     p.PrizeID().String(),
		Name:        p.Name(),
		Weight:      p.Weight(),
		IsActive:    p.IsActive(),
		DailyLimit:  p.DailyLimit(),
		RetailValue: p.RetailValue().String(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
