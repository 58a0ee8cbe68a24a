package reporting

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"github.com/Xahmuh/reward_engine/src/internal/domain/voucher"
)

// ===========================
// ListVouchers Use Case
// ===========================

// ListVouchersQuery voucher 報表查詢（零值欄位 = 不過濾）
type ListVouchersQuery struct {
	BranchID   string
	CustomerID string
	IssuedFrom *time.Time // 發出時間下界（含）
	IssuedTo   *time.Time // 發出時間上界（不含）
}

// VoucherRecord 報表列項
//
// Status 是查詢時計算的值；到期提醒等下游消費者
// 以 ExpiresAt 與 Status 自行排程，引擎不主動通知
type VoucherRecord struct {
	VoucherID        string
	Code             string
	Status           string
	CustomerID       string
	BranchID         string
	PrizeID          string
	IssuedAt         time.Time
	ExpiresAt        time.Time
	RedeemedAt       *time.Time
	RedeemedBranchID *string
}

// ListVouchersUseCase voucher 報表 Use Case（只讀）
type ListVouchersUseCase struct {
	voucherRepo voucher.VoucherRepository
}

// NewListVouchersUseCase 創建 Use Case 實例
func NewListVouchersUseCase(voucherRepo voucher.VoucherRepository) *ListVouchersUseCase {
	return &ListVouchersUseCase{voucherRepo: voucherRepo}
}

// Execute 執行查詢（獨立讀取，不參與事務）
//
// 錯誤處理：
// - voucher.ErrInvalidBranchID / ErrInvalidCustomerID: 過濾條件格式無效
func (uc *ListVouchersUseCase) Execute(query ListVouchersQuery) ([]*VoucherRecord, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
func (uc *ListVouchersUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query ListVouchersQuery,
) ([]*VoucherRecord, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	vouchers, err := uc.voucherRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	records := make([]*VoucherRecord, 0, len(vouchers))
	for _, v := range vouchers {
		records = append(records, toVoucherRecord(v, now))
	}
	return records, nil
}

// buildFilter 將查詢參數轉換為倉儲過濾條件
func buildFilter(query ListVouchersQuery) (voucher.ListFilter, error) {
	filter := voucher.ListFilter{
		IssuedFrom: query.IssuedFrom,
		IssuedTo:   query.IssuedTo,
	}

	if query.BranchID != "" {
		branchID, err := voucher.BranchIDFromString(query.BranchID)
		if err != nil {
			return voucher.ListFilter{}, err
		}
		filter.BranchID = &branchID
	}

	if query.CustomerID != "" {
		customerID, err := voucher.CustomerIDFromString(query.CustomerID)
		if err != nil {
			return voucher.ListFilter{}, err
		}
		filter.CustomerID = &customerID
	}

	return filter, nil
}

// toVoucherRecord 將聚合轉換為報表列項
func toVoucherRecord(v *voucher.Voucher, now time.Time) *VoucherRecord {
	record := &VoucherRecord{
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
		record.RedeemedAt = at
	}
	if id := v.RedeemedBranchID(); id != nil {
		s := id.String()
		record.RedeemedBranchID = &s
	}
	return record
}
