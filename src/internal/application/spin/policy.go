package spin

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// RateLimitPolicy
// ===========================

// RateLimitPolicy 每日限流政策（注入值，不是散落的常量）
//
// 設計原則：
// - 門檻是政策值：由部署配置注入，協調者的契約可以在測試中
//   用任意門檻獨立驗證
// - <= 0 表示該維度不限制
//
// 競態說明（刻意的 best-effort，不升級為嚴格原子）：
// 計數是 read-then-act：兩個同時到達的 spin 可能都讀到「今天 0 次」
// 而雙雙通過。這是濫用量的閘門，不是安全邊界；
// CAS 的成本花在真正的雙重發放風險上（Single token 的 used、
// voucher 的 redeemed_at），不花在這裡。
type RateLimitPolicy struct {
	PerCustomerPerDay int // 每位顧客每日 spin 上限
	PerIPPerDay       int // 每個來源 IP 每日 spin 上限
}

// DefaultRateLimitPolicy 預設限流政策
func DefaultRateLimitPolicy() RateLimitPolicy {
	return RateLimitPolicy{
		PerCustomerPerDay: 3,
		PerIPPerDay:       10,
	}
}

// Spin 協調錯誤代碼常量
const (
	ErrCodeDailyLimitExceeded shared.ErrorCode = "DAILY_LIMIT_EXCEEDED"
	ErrCodeCodeSpaceExhausted shared.ErrorCode = "VOUCHER_CODE_SPACE_EXHAUSTED"
)

var (
	// ErrDailyLimitExceeded 超過每日 spin 上限（顧客或 IP 任一維度）
	ErrDailyLimitExceeded = &shared.DomainError{
		Code:    ErrCodeDailyLimitExceeded,
		Kind:    shared.ErrorKindPolicy,
		Message: "今日 spin 次數已達上限",
	}

	// ErrCodeGenerationExhausted 連續碰撞超過重試上限
	//
	// 36^6 的空間下連續多次碰撞幾乎必然代表儲存層異常，
	// 因此分類為 Transient（重試安全：尚未寫入任何東西）
	ErrCodeGenerationExhausted = &shared.DomainError{
		Code:    ErrCodeCodeSpaceExhausted,
		Kind:    shared.ErrorKindTransient,
		Message: "voucher code 產生重試次數用盡",
	}
)
