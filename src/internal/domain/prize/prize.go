package prize

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// Prize Entity
// ===========================

// Prize 獎項實體
//
// 聚合邊界：
// - 獎項基本信息（ID, Name, RetailValue）
// - 抽獎配置（Weight, IsActive, DailyLimit）
//
// 不變量（Invariants）：
// 1. Weight 必須是正整數（抽中機率 = weight / Σweights）
// 2. DailyLimit 若設定必須是正整數（nil 表示不設上限）
// 3. 只有 IsActive 且（若設上限）當日發出數 < DailyLimit 的獎項可進入抽獎池
//
// 設計說明：
// - RetailValue 是報表用的參考零售價，不參與任何抽獎邏輯
// - 當日發出數不儲存在獎項上，由 voucher 紀錄按日計數推導
type Prize struct {
	// 識別欄位
	prizeID PrizeID
	name    string

	// 抽獎配置
	weight     int
	isActive   bool
	dailyLimit *int // nil = 不設上限

	// 報表信息
	retailValue decimal.Decimal

	// 審計欄位
	createdAt time.Time
	updatedAt time.Time
}

// NewPrize 創建新獎項（Checked Constructor）
//
// 參數：
// - name: 獎項名稱（不能為空）
// - weight: 抽獎權重（必須 > 0）
// - dailyLimit: 每日發出上限（nil 表示不設上限；設定時必須 > 0）
// - retailValue: 參考零售價（報表用途）
//
// 新獎項預設為啟用（isActive = true）
func NewPrize(name string, weight int, dailyLimit *int, retailValue decimal.Decimal) (*Prize, error) {
	if name == "" {
		return nil, ErrInvalidPrizeName
	}
	if weight <= 0 {
		return nil, ErrInvalidWeight.WithContext("weight", weight)
	}
	if dailyLimit != nil && *dailyLimit <= 0 {
		return nil, ErrInvalidDailyLimit.WithContext("daily_limit", *dailyLimit)
	}

	now := time.Now()

	return &Prize{
		prizeID:     NewPrizeID(),
		name:        name,
		weight:      weight,
		isActive:    true,
		dailyLimit:  copyLimit(dailyLimit),
		retailValue: retailValue,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPrize 重建獎項實體（用於從資料庫載入）
//
// 不執行完整業務驗證，但仍檢查 ID 有效性，防止損壞資料污染領域層
func ReconstructPrize(
	prizeID PrizeID,
	name string,
	weight int,
	isActive bool,
	dailyLimit *int,
	retailValue decimal.Decimal,
	createdAt time.Time,
	updatedAt time.Time,
) (*Prize, error) {
	if prizeID.IsEmpty() {
		return nil, ErrInvalidPrizeID.WithContext(
			"reason", "invalid prize ID in database",
		)
	}

	return &Prize{
		prizeID:     prizeID,
		name:        name,
		weight:      weight,
		isActive:    isActive,
		dailyLimit:  copyLimit(dailyLimit),
		retailValue: retailValue,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// UpdateConfiguration 更新抽獎配置
//
// 業務規則與 NewPrize 相同；獎項名稱與配置一起更新
func (p *Prize) UpdateConfiguration(name string, weight int, dailyLimit *int, retailValue decimal.Decimal) error {
	if name == "" {
		return ErrInvalidPrizeName
	}
	if weight <= 0 {
		return ErrInvalidWeight.WithContext("weight", weight)
	}
	if dailyLimit != nil && *dailyLimit <= 0 {
		return ErrInvalidDailyLimit.WithContext("daily_limit", *dailyLimit)
	}

	p.name = name
	p.weight = weight
	p.dailyLimit = copyLimit(dailyLimit)
	p.retailValue = retailValue
	p.updatedAt = time.Now()

	return nil
}

// Activate 啟用獎項
func (p *Prize) Activate() {
	if !p.isActive {
		p.isActive = true
		p.updatedAt = time.Now()
	}
}

// Deactivate 停用獎項（停用後不再進入抽獎池，已發出的 voucher 不受影響）
func (p *Prize) Deactivate() {
	if p.isActive {
		p.isActive = false
		p.updatedAt = time.Now()
	}
}

// ===========================
// 查詢方法
// ===========================

// IsDrawEligible 判斷獎項是否可進入抽獎池
//
// 參數：
// - issuedToday: 該獎項今日已發出的 voucher 數（由 voucher 紀錄計數）
//
// 業務規則：
// - 必須啟用中
// - 權重必須 > 0
// - 若設有每日上限，今日發出數必須 < 上限
func (p *Prize) IsDrawEligible(issuedToday int) bool {
	if !p.isActive || p.weight <= 0 {
		return false
	}
	if p.dailyLimit != nil && issuedToday >= *p.dailyLimit {
		return false
	}
	return true
}

// PrizeID 返回獎項 ID
func (p *Prize) PrizeID() PrizeID {
	return p.prizeID
}

// Name 返回獎項名稱
func (p *Prize) Name() string {
	return p.name
}

// Weight 返回抽獎權重
func (p *Prize) Weight() int {
	return p.weight
}

// IsActive 返回是否啟用
func (p *Prize) IsActive() bool {
	return p.isActive
}

// DailyLimit 返回每日上限（nil 表示不設上限；返回副本，防止外部修改）
func (p *Prize) DailyLimit() *int {
	return copyLimit(p.dailyLimit)
}

// RetailValue 返回參考零售價
func (p *Prize) RetailValue() decimal.Decimal {
	return p.retailValue
}

// CreatedAt 返回創建時間
func (p *Prize) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt 返回更新時間
func (p *Prize) UpdatedAt() time.Time {
	return p.updatedAt
}

// copyLimit 複製每日上限指標（保持聚合不可變性）
func copyLimit(limit *int) *int {
	if limit == nil {
		return nil
	}
	v := *limit
	return &v
}
