package voucher

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// Voucher 領域事件
// ===========================
//
// 消費者是平台的外部協作者（報表匯出、到期提醒觸發器）；
// 引擎只負責發布，不認識任何訂閱者

// VoucherIssuedEvent voucher 已發出事件
type VoucherIssuedEvent struct {
	eventID    string
	voucherID  VoucherID
	customerID CustomerID
	branchID   BranchID
	prizeID    PrizeID
	code       Code
	occurredAt time.Time
}

// NewVoucherIssuedEvent 創建 voucher 已發出事件
func NewVoucherIssuedEvent(
	voucherID VoucherID,
	customerID CustomerID,
	branchID BranchID,
	prizeID PrizeID,
	code Code,
) *VoucherIssuedEvent {
	return &VoucherIssuedEvent{
		eventID:    uuid.New().String(),
		voucherID:  voucherID,
		customerID: customerID,
		branchID:   branchID,
		prizeID:    prizeID,
		code:       code,
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *VoucherIssuedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *VoucherIssuedEvent) EventType() string {
	return "voucher.issued"
}

// OccurredAt 實現 DomainEvent 介面
func (e *VoucherIssuedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *VoucherIssuedEvent) AggregateID() string {
	return e.voucherID.String()
}

// VoucherID 獲取 voucher ID
func (e *VoucherIssuedEvent) VoucherID() VoucherID {
	return e.voucherID
}

// CustomerID 獲取顧客 ID
func (e *VoucherIssuedEvent) CustomerID() CustomerID {
	return e.customerID
}

// BranchID 獲取發出分店 ID
func (e *VoucherIssuedEvent) BranchID() BranchID {
	return e.branchID
}

// PrizeID 獲取獎項 ID
func (e *VoucherIssuedEvent) PrizeID() PrizeID {
	return e.prizeID
}

// Code 獲取 voucher code
func (e *VoucherIssuedEvent) Code() Code {
	return e.code
}

// ===========================
// VoucherRedeemed 領域事件
// ===========================

// VoucherRedeemedEvent voucher 已核銷事件
type VoucherRedeemedEvent struct {
	eventID           string
	voucherID         VoucherID
	code              Code
	redeemingBranchID BranchID
	redeemedAt        time.Time
	occurredAt        time.Time
}

// NewVoucherRedeemedEvent 創建 voucher 已核銷事件
func NewVoucherRedeemedEvent(
	voucherID VoucherID,
	code Code,
	redeemingBranchID BranchID,
	redeemedAt time.Time,
) *VoucherRedeemedEvent {
	return &VoucherRedeemedEvent{
		eventID:           uuid.New().String(),
		voucherID:         voucherID,
		code:              code,
		redeemingBranchID: redeemingBranchID,
		redeemedAt:        redeemedAt,
		occurredAt:        time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *VoucherRedeemedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *VoucherRedeemedEvent) EventType() string {
	return "voucher.redeemed"
}

// OccurredAt 實現 DomainEvent 介面
func (e *VoucherRedeemedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *VoucherRedeemedEvent) AggregateID() string {
	return e.voucherID.String()
}

// VoucherID 獲取 voucher ID
func (e *VoucherRedeemedEvent) VoucherID() VoucherID {
	return e.voucherID
}

// Code 獲取 voucher code
func (e *VoucherRedeemedEvent) Code() Code {
	return e.code
}

// RedeemingBranchID 獲取核銷分店 ID
func (e *VoucherRedeemedEvent) RedeemingBranchID() BranchID {
	return e.redeemingBranchID
}

// RedeemedAt 獲取核銷時間
func (e *VoucherRedeemedEvent) RedeemedAt() time.Time {
	return e.redeemedAt
}
