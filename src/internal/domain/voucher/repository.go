package voucher

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// VoucherRepository Interface
// ===========================

// ListFilter 報表查詢的過濾條件（零值 = 不過濾）
//
// 供引擎外的只讀消費者（報表匯出、到期提醒觸發器）使用
type ListFilter struct {
	BranchID   *BranchID  // 發出分店
	CustomerID *CustomerID
	IssuedFrom *time.Time // 發出時間下界（含）
	IssuedTo   *time.Time // 發出時間上界（不含）
}

// VoucherRepository voucher 倉儲接口
//
// 事務管理策略：
//
// Write Operations - ctx 必須 non-nil：
//   - Save(): 創建 voucher（Spin 協調者專用）
//   - Redeem(): 條件式核銷（CAS）
//
// Read Operations - ctx 可為 nil：
//   - FindByID(), FindByCode(), List()
//   - CountIssuedToCustomerOnDay(), CountIssuedToIPOnDay(),
//     CountIssuedForPrizeOnDay(), ExistsByCode()
//
// 每日計數說明：
// 計數不是獨立實體，全部由 voucher 資料列按日分組推導。
// 限流計數是 read-then-act（刻意的 best-effort，見 ExecuteSpinUseCase）
type VoucherRepository interface {
	// Save 保存新 voucher
	//
	// code 唯一性由資料庫 UNIQUE 約束做最後防線；
	// 碰撞時返回 ErrDuplicateVoucherCode（協調者會重新產生 code 重試）
	Save(ctx shared.TransactionContext, v *Voucher) error

	// FindByID 根據 voucher ID 查找
	//
	// 返回：
	// - error: 找不到時返回 ErrVoucherNotFound
	FindByID(ctx shared.TransactionContext, id VoucherID) (*Voucher, error)

	// FindByCode 根據 code 查找 voucher
	//
	// 查找規則（容忍部分掃描/亂碼輸入）：
	// 1. 先做不分大小寫的精確比對
	// 2. 精確比對落空時，對輸入中的後綴片段做比對：
	//    只接受完整的 6 位後綴（過短的片段直接視為查無），
	//    且比對到兩張以上 voucher 時返回 ErrVoucherNotFound（寧缺勿錯）
	//
	// 返回：
	// - error: 找不到或比對模糊時返回 ErrVoucherNotFound
	FindByCode(ctx shared.TransactionContext, rawCode string) (*Voucher, error)

	// ExistsByCode 檢查 code 是否已存在（發 code 前查重用）
	//
	// 效能優化：只執行 COUNT，比 FindByCode 輕量
	ExistsByCode(ctx shared.TransactionContext, code Code) (bool, error)

	// Redeem 條件式核銷（compare-and-set）
	//
	// 實作約束（恰好一次核銷的最終保證）：
	// - 必須實作為單一條件式更新：
	//   UPDATE ... SET redeemed_at = ?, redeemed_branch_id = ?
	//   WHERE voucher_id = ? AND redeemed_at IS NULL
	// - 影響列數為 0 時返回 ErrAlreadyRedeemed
	//
	// 兩個併發核銷同一張 voucher：恰好一個成功，
	// 輸家在這裡收到 ErrAlreadyRedeemed
	Redeem(ctx shared.TransactionContext, id VoucherID, redeemingBranchID BranchID, at time.Time) error

	// CountIssuedToCustomerOnDay 計算顧客在指定日期發出的 voucher 數
	//
	// day 以其所在時區的自然日為界（呼叫端傳入當日零點）
	CountIssuedToCustomerOnDay(ctx shared.TransactionContext, customerID CustomerID, day time.Time) (int, error)

	// CountIssuedToIPOnDay 計算 IP 在指定日期發出的 voucher 數
	//
	// 空 IP 的 voucher 不計入任何 IP 的計數
	CountIssuedToIPOnDay(ctx shared.TransactionContext, ipAddress string, day time.Time) (int, error)

	// CountIssuedForPrizeOnDay 計算獎項在指定日期發出的 voucher 數
	//
	// 使用場景：建抽獎池時過濾已達每日上限的獎項
	CountIssuedForPrizeOnDay(ctx shared.TransactionContext, prizeID PrizeID, day time.Time) (int, error)

	// List 查詢 voucher 列表（報表等只讀消費者用）
	//
	// 結果按發出時間降冪排序
	List(ctx shared.TransactionContext, filter ListFilter) ([]*Voucher, error)
}
