package voucher

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/voucher"
)

// ===========================
// GORM Models
// ===========================

// VoucherGORM voucher 資料表模型
//
// 資料庫約束：
// - voucher_id: 主鍵（UUID）
// - code: 唯一索引（VOUCH-XXXXXX，店員查找鍵）
// - customer_id / branch_id / prize_id: 跨 context 參照，存字串
// - created_at: 索引（每日發放計數的查詢鍵）
// - redeemed_at / redeemed_branch_id: 同進同出，
//   NULL 表示未核銷；條件式核銷以 redeemed_at IS NULL 仲裁
type VoucherGORM struct {
	// 識別欄位
	VoucherID string `gorm:"column:voucher_id;type:varchar(36);primaryKey"` // UUID 字串
	Code      string `gorm:"column:code;type:varchar(12);uniqueIndex;not null"`

	// 發放信息
	CustomerID string `gorm:"column:customer_id;type:varchar(36);not null;index"`
	BranchID   string `gorm:"column:branch_id;type:varchar(36);not null;index"`
	PrizeID    string `gorm:"column:prize_id;type:varchar(36);not null;index"`
	IPAddress  string `gorm:"column:ip_address;type:varchar(45)"` // IPv6 最長 45 字元

	// 生命週期
	CreatedAt        time.Time  `gorm:"column:created_at;not null;index"`
	RedeemedAt       *time.Time `gorm:"column:redeemed_at"`                          // Nullable
	RedeemedBranchID *string    `gorm:"column:redeemed_branch_id;type:varchar(36)"` // Nullable
}

// TableName 指定資料表名稱
func (VoucherGORM) TableName() string {
	return "vouchers"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *VoucherGORM) toDomain() (*voucher.Voucher, error) {
	voucherID, err := voucher.VoucherIDFromString(m.VoucherID)
	if err != nil {
		return nil, err
	}

	code, err := voucher.CodeFromString(m.Code)
	if err != nil {
		return nil, err
	}

	customerID, err := voucher.CustomerIDFromString(m.CustomerID)
	if err != nil {
		return nil, err
	}

	branchID, err := voucher.BranchIDFromString(m.BranchID)
	if err != nil {
		return nil, err
	}

	prizeID, err := voucher.PrizeIDFromString(m.PrizeID)
	if err != nil {
		return nil, err
	}

	// 核銷欄位（處理 NULL）
	var redeemedBranchID *voucher.BranchID
	if m.RedeemedBranchID != nil {
		id, err := voucher.BranchIDFromString(*m.RedeemedBranchID)
		if err != nil {
			return nil, err
		}
		redeemedBranchID = &id
	}

	return voucher.ReconstructVoucher(
		voucherID,
		code,
		customerID,
		branchID,
		prizeID,
		m.IPAddress,
		m.CreatedAt,
		m.RedeemedAt,
		redeemedBranchID,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(v *voucher.Voucher) *VoucherGORM {
	// 處理核銷欄位（未核銷 → NULL）
	var redeemedBranchID *string
	if id := v.RedeemedBranchID(); id != nil {
		s := id.String()
		redeemedBranchID = &s
	}

	return &VoucherGORM{
		VoucherID:        v.VoucherID().String(),
		Code:             v.Code().String(),
		CustomerID:       v.CustomerID().String(),
		BranchID:         v.BranchID().String(),
		PrizeID:          v.PrizeID().String(),
		IPAddress:        v.IPAddress(),
		CreatedAt:        v.CreatedAt(),
		RedeemedAt:       v.RedeemedAt(),
		RedeemedBranchID: redeemedBranchID,
	}
}
