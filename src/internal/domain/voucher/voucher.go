package voucher

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Voucher Status
// ===========================

// Status voucher 狀態（計算值，不落地儲存）
type Status string

// Status 常量
const (
	StatusActive   Status = "active"
	StatusRedeemed Status = "redeemed"
	StatusExpired  Status = "expired"
)

// RedemptionWindow voucher 核銷期限（發出後 7 天）
const RedemptionWindow = 7 * 24 * time.Hour

// ===========================
// Voucher Aggregate Root
// ===========================

// Voucher 憑證聚合根（一次 spin 的產出紀錄）
//
// 聚合邊界：
// - 發出信息（顧客、發出分店、獎項、code、客戶端 IP）
// - 核銷狀態（redeemedAt, redeemedBranchID）
//
// 不變量（Invariants）：
// 1. 生命週期單向：Active → Redeemed 是唯一的已儲存轉移，且只發生一次
// 2. Active → Expired 是讀取時計算的狀態（now > createdAt + 7 天
//    且從未核銷），不是儲存的轉移，過期的 voucher 資料列不會被改寫
// 3. 發出信息在創建後不可變；只有核銷欄位會被寫入一次
// 4. redeemedAt 與 redeemedBranchID 同時設置（由 Repository 的
//    compare-and-set 保證恰好一次，見 Repository.Redeem）
//
// 所有權：
// - Spin 協調者是唯一的創建者
// - 核銷管理者是核銷欄位的唯一寫入者
// - 其他消費者（報表、提醒）一律只讀
type Voucher struct {
	// 識別欄位
	voucherID VoucherID
	code      Code

	// 發出信息
	customerID CustomerID
	branchID   BranchID // 發出分店
	prizeID    PrizeID
	ipAddress  string // 客戶端 IP（可為空；每日 IP 限流計數用）

	// 核銷狀態
	redeemedAt       *time.Time
	redeemedBranchID *BranchID

	// 審計欄位
	createdAt time.Time

	// 待發布的領域事件
	events []shared.DomainEvent
}

// NewVoucher 創建新 voucher（由 Spin 協調者在抽中獎項後呼叫）
//
// 參數：
// - code: 已查重的 voucher code（唯一性由協調者 + DB 約束保證）
// - ipAddress: 客戶端 IP（可為空字串）
//
// 業務規則：
// 1. 所有發出信息必填（IP 除外）
// 2. 初始狀態為 Active（redeemedAt = nil）
// 3. 發布 voucher.issued 事件
func NewVoucher(
	customerID CustomerID,
	branchID BranchID,
	prizeID PrizeID,
	code Code,
	ipAddress string,
) (*Voucher, error) {
	if customerID.IsEmpty() {
		return nil, ErrInvalidCustomerID.WithContext("reason", "customerID cannot be empty")
	}
	if branchID.IsEmpty() {
		return nil, ErrInvalidBranchID.WithContext("reason", "branchID cannot be empty")
	}
	if prizeID.IsEmpty() {
		return nil, ErrInvalidPrizeIDRef.WithContext("reason", "prizeID cannot be empty")
	}
	if code.IsZero() {
		return nil, ErrInvalidVoucherCode.WithContext("reason", "code cannot be empty")
	}

	v := &Voucher{
		voucherID:  NewVoucherID(),
		code:       code,
		customerID: customerID,
		branchID:   branchID,
		prizeID:    prizeID,
		ipAddress:  ipAddress,
		createdAt:  time.Now(),
		events:     make([]shared.DomainEvent, 0),
	}

	v.addEvent(NewVoucherIssuedEvent(v.voucherID, v.customerID, v.branchID, v.prizeID, v.code))

	return v, nil
}

// ReconstructVoucher 重建 voucher 聚合（用於從資料庫載入）
//
// 重要：即使是從資料庫重建，也驗證 ID 有效性，防止損壞資料污染領域層
func ReconstructVoucher(
	voucherID VoucherID,
	code Code,
	customerID CustomerID,
	branchID BranchID,
	prizeID PrizeID,
	ipAddress string,
	createdAt time.Time,
	redeemedAt *time.Time,
	redeemedBranchID *BranchID,
) (*Voucher, error) {
	if voucherID.IsEmpty() {
		return nil, ErrInvalidVoucherID.WithContext("reason", "invalid voucher ID in database")
	}
	if code.IsZero() {
		return nil, ErrInvalidVoucherCode.WithContext("reason", "missing code in database")
	}
	// 不變量：核銷欄位同進同出
	if (redeemedAt == nil) != (redeemedBranchID == nil) {
		return nil, ErrInvalidVoucherID.WithContext(
			"reason", "redemption fields are inconsistent in database",
			"voucher_id", voucherID.String(),
		)
	}

	return &Voucher{
		voucherID:        voucherID,
		code:             code,
		customerID:       customerID,
		branchID:         branchID,
		prizeID:          prizeID,
		ipAddress:        ipAddress,
		createdAt:        createdAt,
		redeemedAt:       redeemedAt,
		redeemedBranchID: redeemedBranchID,
		events:           make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// 查詢方法
// ===========================

// StatusAt 計算 voucher 在指定時間點的狀態
//
// 規則：
// - redeemedAt 已設置 → Redeemed（終態，不受時間影響）
// - 未核銷且 now > createdAt + 7 天 → Expired（計算值）
// - 其他 → Active
func (v *Voucher) StatusAt(now time.Time) Status {
	if v.redeemedAt != nil {
		return StatusRedeemed
	}
	if now.After(v.createdAt.Add(RedemptionWindow)) {
		return StatusExpired
	}
	return StatusActive
}

// EnsureRedeemableAt 檢查 voucher 在指定時間點是否可核銷
//
// 返回：
// - nil: 可核銷
// - ErrAlreadyRedeemed: 已被核銷（終態）
// - ErrVoucherExpired: 已過期且從未核銷
//
// 競態注意事項：
// 與 Session.ValidateAt 相同，這是快速失敗檢查。
// 恰好一次核銷的最終保證在 Repository.Redeem 的
// compare-and-set（redeemed_at IS NULL 條件式更新）。
func (v *Voucher) EnsureRedeemableAt(now time.Time) error {
	switch v.StatusAt(now) {
	case StatusRedeemed:
		return ErrAlreadyRedeemed.WithContext(
			"code", v.code.String(),
			"redeemed_at", v.redeemedAt.Format(time.RFC3339),
		)
	case StatusExpired:
		return ErrVoucherExpired.WithContext(
			"code", v.code.String(),
			"issued_at", v.createdAt.Format(time.RFC3339),
		)
	default:
		return nil
	}
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// MarkRedeemed 將聚合標記為已核銷
//
// 呼叫約束：
// 只能在 Repository.Redeem 的 compare-and-set 成功之後呼叫，
// 用來讓記憶體中的聚合與資料庫一致並發布 voucher.redeemed 事件。
// 恰好一次的保證來自資料庫的條件式更新，不是這個方法。
func (v *Voucher) MarkRedeemed(redeemingBranchID BranchID, at time.Time) error {
	if v.redeemedAt != nil {
		return ErrAlreadyRedeemed.WithContext("code", v.code.String())
	}
	if redeemingBranchID.IsEmpty() {
		return ErrInvalidBranchID.WithContext("reason", "redeeming branchID cannot be empty")
	}

	v.redeemedAt = &at
	v.redeemedBranchID = &redeemingBranchID

	v.addEvent(NewVoucherRedeemedEvent(v.voucherID, v.code, redeemingBranchID, at))

	return nil
}

// ===========================
// 事件管理
// ===========================

// addEvent 添加領域事件到待發布列表（私有方法）
func (v *Voucher) addEvent(event shared.DomainEvent) {
	v.events = append(v.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
//
// 使用場景：
// - 事務提交成功後，由 Application Layer 取出並交給 EventPublisher
// - Pull 模式：聚合根不依賴 EventPublisher；只讀取一次，避免重複發布
func (v *Voucher) PullEvents() []shared.DomainEvent {
	events := v.events
	v.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// Getters
// ===========================

// VoucherID 返回 voucher ID
func (v *Voucher) VoucherID() VoucherID {
	return v.voucherID
}

// Code 返回 voucher code
func (v *Voucher) Code() Code {
	return v.code
}

// CustomerID 返回顧客 ID
func (v *Voucher) CustomerID() CustomerID {
	return v.customerID
}

// BranchID 返回發出分店 ID
func (v *Voucher) BranchID() BranchID {
	return v.branchID
}

// PrizeID 返回獎項 ID
func (v *Voucher) PrizeID() PrizeID {
	return v.prizeID
}

// IPAddress 返回發出時的客戶端 IP（可能為空）
func (v *Voucher) IPAddress() string {
	return v.ipAddress
}

// CreatedAt 返回發出時間
func (v *Voucher) CreatedAt() time.Time {
	return v.createdAt
}

// RedeemedAt 返回核銷時間（未核銷為 nil）
func (v *Voucher) RedeemedAt() *time.Time {
	if v.redeemedAt == nil {
		return nil
	}
	t := *v.redeemedAt
	return &t
}

// RedeemedBranchID 返回核銷分店 ID（未核銷為 nil）
//
// 發出分店與核銷分店可以不同：voucher 全分店通用
func (v *Voucher) RedeemedBranchID() *BranchID {
	if v.redeemedBranchID == nil {
		return nil
	}
	id := *v.redeemedBranchID
	return &id
}
