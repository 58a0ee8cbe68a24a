package voucher

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================
//
// 設計原則：每個 bounded context 定義自己的外鍵 ID 類型，
// context 之間以字串傳遞、各自解析（與 session context 相同）

// VoucherMarker 是 VoucherID 的標記類型
type VoucherMarker struct{}

// VoucherID voucher 的唯一標識符
type VoucherID = shared.EntityID[VoucherMarker]

// NewVoucherID 生成新的 voucher ID（UUID v4）
func NewVoucherID() VoucherID {
	return shared.NewEntityID[VoucherMarker]()
}

// VoucherIDFromString 從字串解析 voucher ID
func VoucherIDFromString(s string) (VoucherID, error) {
	return shared.EntityIDFromString[VoucherMarker](s, ErrInvalidVoucherID)
}

// CustomerMarker 是 CustomerID 的標記類型
type CustomerMarker struct{}

// CustomerID 持有 voucher 的顧客 ID（本 context 內的表示）
type CustomerID = shared.EntityID[CustomerMarker]

// NewCustomerID 生成新的顧客 ID（測試與資料準備用）
func NewCustomerID() CustomerID {
	return shared.NewEntityID[CustomerMarker]()
}

// CustomerIDFromString 從字串解析顧客 ID
func CustomerIDFromString(s string) (CustomerID, error) {
	return shared.EntityIDFromString[CustomerMarker](s, ErrInvalidCustomerID)
}

// BranchMarker 是 BranchID 的標記類型
type BranchMarker struct{}

// BranchID 發出/核銷 voucher 的分店 ID（本 context 內的表示）
type BranchID = shared.EntityID[BranchMarker]

// NewBranchID 生成新的分店 ID（測試與資料準備用）
func NewBranchID() BranchID {
	return shared.NewEntityID[BranchMarker]()
}

// BranchIDFromString 從字串解析分店 ID
func BranchIDFromString(s string) (BranchID, error) {
	return shared.EntityIDFromString[BranchMarker](s, ErrInvalidBranchID)
}

// PrizeMarker 是 PrizeID 的標記類型
type PrizeMarker struct{}

// PrizeID voucher 對應的獎項 ID（本 context 內的表示）
type PrizeID = shared.EntityID[PrizeMarker]

// NewPrizeID 生成新的獎項 ID（測試與資料準備用）
func NewPrizeID() PrizeID {
	return shared.NewEntityID[PrizeMarker]()
}

// PrizeIDFromString 從字串解析獎項 ID
func PrizeIDFromString(s string) (PrizeID, error) {
	return shared.EntityIDFromString[PrizeMarker](s, ErrInvalidPrizeIDRef)
}
