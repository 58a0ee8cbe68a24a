package prize

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
)

// ===========================
// GORM Models
// ===========================

// PrizeGORM 獎項資料表模型
//
// 資料庫約束：
// - prize_id: 主鍵（UUID）
// - weight: 正整數（業務驗證在 Domain Layer，資料庫只存值）
// - daily_limit: 可為 NULL（NULL = 不設上限）
// - retail_value: decimal(12,2)，報表用參考零售價
type PrizeGORM struct {
	// 識別欄位
	PrizeID string `gorm:"column:prize_id;type:varchar(36);primaryKey"` // UUID 字串
	Name    string `gorm:"column:name;type:varchar(255);not null"`

	// 抽獎配置
	Weight     int  `gorm:"column:weight;not null"`
	// 不設 default 標籤：GORM 對帶 default 的零值欄位會在 INSERT 時省略，
	// 停用中的獎項寫入後會被資料庫預設值翻回 true
	IsActive   bool `gorm:"column:is_active;not null;index"`
	DailyLimit *int `gorm:"column:daily_limit"` // Nullable

	// 報表信息
	RetailValue decimal.Decimal `gorm:"column:retail_value;type:decimal(12,2);not null"`

	// 審計欄位
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (PrizeGORM) TableName() string {
	return "prizes"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *PrizeGORM) toDomain() (*prize.Prize, error) {
	prizeID, err := prize.PrizeIDFromString(m.PrizeID)
	if err != nil {
		return nil, err
	}

	return prize.ReconstructPrize(
		prizeID,
		m.Name,
		m.Weight,
		m.IsActive,
		m.DailyLimit,
		m.RetailValue,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(p *prize.Prize) *PrizeGORM {
	return &PrizeGORM{
		PrizeID:     p.PrizeID().String(),
		Name:        p.Name(),
		Weight:      p.Weight(),
		IsActive:    p.IsActive(),
		DailyLimit:  p.DailyLimit(),
		RetailValue: p.RetailValue(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
