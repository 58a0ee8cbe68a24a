package session

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// SessionRepository Interface
// ===========================

// SessionRepository session 倉儲接口
//
// 事務管理策略：
//
// Write Operations - ctx 必須 non-nil：
//   - Save(): 創建 session
//   - MarkUsed(): 條件式 used 翻轉（CAS）
//
// Read Operations - ctx 可為 nil：
//   - FindByToken(): 根據 token 查詢
type SessionRepository interface {
	// Save 保存新 session
	//
	// token 唯一性由資料庫 UNIQUE 約束保證
	// （256-bit 亂數碰撞機率可忽略，約束只是最後防線）
	Save(ctx shared.TransactionContext, s *Session) error

	// FindByToken 根據 token 查找 session
	//
	// 返回：
	// - error: 找不到時返回 ErrTokenNotFound
	FindByToken(ctx shared.TransactionContext, token Token) (*Session, error)

	// MarkUsed 條件式翻轉 used 標記（compare-and-set）
	//
	// 實作約束（Single token 不重複發 voucher 的最終保證）：
	// - 必須實作為單一條件式更新：
	//   UPDATE ... SET used = true WHERE token = ? AND used = false
	// - 影響列數為 0 時返回 ErrTokenAlreadyUsed
	// - 必須與同一事務中的 voucher 寫入一起提交或一起回滾，
	//   絕不能作為獨立寫入（否則兩個併發 spin 可能各發一張 voucher）
	//
	// 兩個併發 spin 用同一個 Single token：恰好一個成功，
	// 輸家在這裡收到 ErrTokenAlreadyUsed 並回滾它的 voucher
	//
	// 呼叫約束：只對 Single session 呼叫（Multi 的 used 無意義）
	MarkUsed(ctx shared.TransactionContext, token Token) error
}
