package redemption

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"github.com/Xahmuh/reward_engine/src/internal/domain/voucher"
)

// ===========================
// FindVoucher Use Case
// ===========================

// FindVoucherQuery 查找 voucher 的查詢
//
// Code 接受店員輸入的原始字串：
// 不分大小寫，容忍部分掃描（完整後綴片段可比對）
type FindVoucherQuery struct {
	Code string
}

// VoucherView voucher 的只讀視圖（Output DTO）
//
// Status 是讀取時計算的值（active / redeemed / expired）；
// 到期提醒等外部消費者只依賴這個計算狀態，引擎不提供通知機制
type VoucherView struct {
	VoucherID        string
	Code             string
	Status           string
	CustomerID       string
	BranchID         string // 發出分店
	PrizeID          string
	IssuedAt         time.Time
	ExpiresAt        time.Time // IssuedAt + 7 天（核銷期限）
	RedeemedAt       *time.Time
	RedeemedBranchID *string
}

// FindVoucherUseCase 查找 voucher Use Case（核銷前的店員查詢）
type FindVoucherUseCase struct {
	voucherRepo voucher.VoucherRepository
}

// NewFindVoucherUseCase 創建 Use Case 實例
func NewFindVoucherUseCase(voucherRepo voucher.VoucherRepository) *FindVoucherUseCase {
	return &FindVoucherUseCase{voucherRepo: voucherRepo}
}

// Execute 執行查找
//
// 錯誤處理：
// - voucher.ErrVoucherNotFound: 查無此券（含模糊比對的情況）
func (uc *FindVoucherUseCase) Execute(query FindVoucherQuery) (*VoucherView, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查找（獨立查詢可傳 nil）
func (uc *FindVoucherUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query FindVoucherQuery,
) (*VoucherView, error) {
	v, err := uc.voucherRepo.FindByCode(ctx, query.Code)
	if err != nil {
		return nil, err
	}
	return toVoucherView(v, time.Now()), nil
}

// toVoucherView 將聚合轉換為只讀視圖 DTO
func toVoucherView(v *voucher.Voucher, now time.Time) *VoucherView {
	view := &VoucherView{
		VoucherID:  v.VoucherID().String(),
		Code:       v.Code().String(),
		Status:     string(v.StatusAt(now)),
		CustomerID: v.CustomerID().String(),
		BranchID:   v.BranchID().String(),
		PrizeID:    v.PrizeID().String(),
		IssuedAt:   v.CreatedAt(),
		ExpiresAt:  v.CreatedAt().Add(voucher.RedemptionWindow),
	}
	if at := v.RedeemedAt(); at != nil {
		view.RedeemedAt = at
	}
	if id := v.RedeemedBranchID(); id != nil {
		s := id.String()
		view.RedeemedBranchID = &s
	}
	return view
}
