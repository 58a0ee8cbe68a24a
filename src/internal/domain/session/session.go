package session

import (
	"time"
)

// ===========================
// SessionMode
// ===========================

// Mode session 模式（顯式標記變體，不用布林 + 散落的分支）
type Mode string

// Mode 常量
const (
	// ModeSingle 單次使用：一個 token 授權恰好一次 spin，
	// 用後即廢（used 標記與 voucher 寫入同一事務提交）
	ModeSingle Mode = "single"

	// ModeMulti 多次使用：同一 token 在效期內允許多位顧客 spin
	// （例如張貼在店內的活動海報 QR code）；used 欄位對它無意義
	ModeMulti Mode = "multi"
)

// session 效期（依模式）
const (
	singleTTL = 10 * time.Minute
	multiTTL  = 7 * 24 * time.Hour
)

// ModeFromString 從字串解析 session 模式
func ModeFromString(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSingle:
		return ModeSingle, nil
	case ModeMulti:
		return ModeMulti, nil
	default:
		return "", ErrInvalidMode.WithContext("mode", s)
	}
}

// TTL 返回該模式的 token 效期
func (m Mode) TTL() time.Duration {
	if m == ModeMulti {
		return multiTTL
	}
	return singleTTL
}

// String 返回模式字串表示
func (m Mode) String() string {
	return string(m)
}

// ===========================
// Session Aggregate Root
// ===========================

// Session claim session 聚合根
//
// 聚合邊界：
// - 不透明 token 與它授權的範圍（分店、模式）
// - 生命週期狀態（createdAt, expiresAt, used）
//
// 不變量（Invariants）：
// 1. Single session 的 used 只能 false→true 翻轉一次，
//    且必須與它授權的那次 spin 的 voucher 寫入同一事務提交
//    （條件式更新由 Repository.MarkUsed 實作，見 §Repository）
// 2. Multi session 永不設置 used，生命週期純粹由 expiresAt 決定
// 3. token 與 expiresAt 在創建後不可變
type Session struct {
	// 識別欄位
	sessionID SessionID
	token     Token

	// 授權範圍
	branchID BranchID
	mode     Mode

	// 生命週期
	used      bool
	createdAt time.Time
	expiresAt time.Time
}

// NewSession 創建新 session（Checked Constructor）
//
// 參數：
// - branchID: 綁定的分店（呼叫端已確認分店存在且未停用）
// - mode: single 或 multi
//
// 業務規則：
// 1. 自動產生不可猜測的 token（crypto/rand）
// 2. expiresAt = now + 10 分鐘（Single）/ 7 天（Multi）
// 3. 初始 used = false
func NewSession(branchID BranchID, mode Mode) (*Session, error) {
	if branchID.IsEmpty() {
		return nil, ErrInvalidBranchID.WithContext(
			"reason", "branchID cannot be empty",
		)
	}
	if mode != ModeSingle && mode != ModeMulti {
		return nil, ErrInvalidMode.WithContext("mode", string(mode))
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &Session{
		sessionID: NewSessionID(),
		token:     token,
		branchID:  branchID,
		mode:      mode,
		used:      false,
		createdAt: now,
		expiresAt: now.Add(mode.TTL()),
	}, nil
}

// ReconstructSession 重建 session 聚合（用於從資料庫載入）
func ReconstructSession(
	sessionID SessionID,
	token Token,
	branchID BranchID,
	mode Mode,
	used bool,
	createdAt time.Time,
	expiresAt time.Time,
) (*Session, error) {
	if sessionID.IsEmpty() {
		return nil, ErrInvalidSessionID.WithContext(
			"reason", "invalid session ID in database",
		)
	}
	if token.IsZero() {
		return nil, ErrInvalidToken.WithContext(
			"reason", "missing token in database",
		)
	}
	if mode != ModeSingle && mode != ModeMulti {
		return nil, ErrInvalidMode.WithContext("mode", string(mode))
	}

	return &Session{
		sessionID: sessionID,
		token:     token,
		branchID:  branchID,
		mode:      mode,
		used:      used,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}, nil
}

// ===========================
// 查詢方法
// ===========================

// ValidateAt 驗證 session 在指定時間點是否可授權一次 spin
//
// 返回：
// - nil: 可授權
// - ErrTokenExpired: 已過期（兩種模式都適用）
// - ErrTokenAlreadyUsed: Single 模式且已被使用
//
// 競態注意事項：
// 這裡的檢查是快速失敗（fail fast），不是最終防線：
// 兩個併發請求可能同時通過這裡的檢查。
// Single token 不重複發 voucher 的最終保證在 Repository.MarkUsed 的
// 條件式更新（與 voucher 寫入同一事務），而不在這個讀取時檢查。
func (s *Session) ValidateAt(now time.Time) error {
	if now.After(s.expiresAt) {
		return ErrTokenExpired.WithContext(
			"token", s.token.String(),
			"expired_at", s.expiresAt.Format(time.RFC3339),
		)
	}
	if s.mode == ModeSingle && s.used {
		return ErrTokenAlreadyUsed.WithContext("token", s.token.String())
	}
	return nil
}

// IsSingleUse 是否為單次使用模式
func (s *Session) IsSingleUse() bool {
	return s.mode == ModeSingle
}

// SessionID 返回 session ID
func (s *Session) SessionID() SessionID {
	return s.sessionID
}

// Token 返回不透明 token
func (s *Session) Token() Token {
	return s.token
}

// BranchID 返回綁定的分店 ID
func (s *Session) BranchID() BranchID {
	return s.branchID
}

// Mode 返回 session 模式
func (s *Session) Mode() Mode {
	return s.mode
}

// Used 返回是否已被使用（Multi 模式永遠 false）
func (s *Session) Used() bool {
	return s.used
}

// CreatedAt 返回創建時間
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// ExpiresAt 返回過期時間
func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}
