package redemption

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/branch"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"github.com/Xahmuh/reward_engine/src/internal/domain/voucher"
)

// ===========================
// RedeemVoucher Use Case
// ===========================

// RedeemVoucherCommand 核銷 voucher 的命令
//
// BranchID 是執行核銷的分店，允許與發出分店不同（跨店核銷）
type RedeemVoucherCommand struct {
	Code     string
	BranchID string
}

// RedeemVoucherResult 核銷結果
type RedeemVoucherResult struct {
	VoucherID        string
	Code             string
	Status           string
	RedeemedAt       time.Time
	RedeemedBranchID string
}

// RedeemVoucherUseCase 核銷 voucher Use Case
//
// 核心業務規則：
// 1. 核銷是一次性的狀態轉換（active -> redeemed），由資料庫條件更新保證原子性
// 2. 發出超過 7 天的券不可核銷（過期檢查以核銷當下時間計算）
// 3. 併發核銷同一張券時恰好一個請求成功，其餘收到衝突錯誤
type RedeemVoucherUseCase struct {
	voucherRepo voucher.VoucherRepository
	directory   branch.Directory
	txManager   shared.TransactionManager
	publisher   shared.EventPublisher
}

// NewRedeemVoucherUseCase 創建 Use Case 實例（publisher 可為 nil）
func NewRedeemVoucherUseCase(
	voucherRepo voucher.VoucherRepository,
	directory branch.Directory,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *RedeemVoucherUseCase {
	return &RedeemVoucherUseCase{
		voucherRepo: voucherRepo,
		directory:   directory,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 執行核銷
//
// 錯誤處理：
// - voucher.ErrVoucherNotFound: 查無此券
// - voucher.ErrAlreadyRedeemed: 已被核銷（含併發輸家）
// - voucher.ErrVoucherExpired: 超過核銷期限
// - branch.ErrBranchNotFound / ErrBranchSuspended: 核銷分店無效或停用
func (uc *RedeemVoucherUseCase) Execute(cmd RedeemVoucherCommand) (*RedeemVoucherResult, error) {
	redeemingBranchID, err := voucher.BranchIDFromString(cmd.BranchID)
	if err != nil {
		return nil, err
	}

	directoryBranchID, err := branch.BranchIDFromString(cmd.BranchID)
	if err != nil {
		return nil, err
	}

	var redeemed *voucher.Voucher

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 1. 查找 voucher
		v, err := uc.voucherRepo.FindByCode(ctx, cmd.Code)
		if err != nil {
			return err
		}

		// 2. 確認核銷分店存在且啟用
		b, err := uc.directory.FindByID(ctx, directoryBranchID)
		if err != nil {
			return err
		}
		if err := b.EnsureActive(); err != nil {
			return err
		}

		// 3. 聚合層預檢：過期或已核銷的券快速失敗
		now := time.Now()
		if err := v.EnsureRedeemableAt(now); err != nil {
			return err
		}

		// 4. 資料庫條件更新（WHERE redeemed_at IS NULL）：
		//    併發核銷的最終仲裁點，0 rows affected 即輸家
		if err := uc.voucherRepo.Redeem(ctx, v.VoucherID(), redeemingBranchID, now); err != nil {
			return err
		}

		// 5. 同步聚合狀態並收集事件
		if err := v.MarkRedeemed(redeemingBranchID, now); err != nil {
			return err
		}

		redeemed = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvents(redeemed)

	at := redeemed.RedeemedAt()
	branchIDRef := redeemed.RedeemedBranchID()
	return &RedeemVoucherResult{
		VoucherID:        redeemed.VoucherID().String(),
		Code:             redeemed.Code().String(),
		Status:           string(voucher.StatusRedeemed),
		RedeemedAt:       *at,
		RedeemedBranchID: branchIDRef.String(),
	}, nil
}

// publishEvents 在事務提交後發布領域事件（失敗不影響核銷結果）
func (uc *RedeemVoucherUseCase) publishEvents(v *voucher.Voucher) {
	if uc.publisher == nil || v == nil {
		return
	}
	events := v.PullEvents()
	if len(events) == 0 {
		return
	}
	_ = uc.publisher.PublishBatch(events)
}
