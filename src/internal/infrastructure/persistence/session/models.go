package session

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/session"
)

// ===========================
// GORM Models
// ===========================

// SessionGORM claim session 資料表模型
//
// 設計原則：
// - 僅用於 Infrastructure Layer（不暴露給 Domain Layer）
// - 使用 GORM 標籤定義資料庫結構
// - 與 Domain Session 聚合分離（Mapper 轉換）
//
// 資料庫約束：
// - session_id: 主鍵（UUID）
// - token: 唯一索引（FindByToken 與 MarkUsed 的查詢鍵）
// - used: 預設 false；Single 模式的條件式更新靠它仲裁
type SessionGORM struct {
	// 識別欄位
	SessionID string `gorm:"column:session_id;type:varchar(36);primaryKey"` // UUID 字串
	Token     string `gorm:"column:token;type:varchar(43);uniqueIndex;not null"`

	// 授權範圍
	BranchID string `gorm:"column:branch_id;type:varchar(36);not null;index"`
	Mode     string `gorm:"column:mode;type:varchar(10);not null"`

	// 生命週期
	Used      bool      `gorm:"column:used;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
}

// TableName 指定資料表名稱
func (SessionGORM) TableName() string {
	return "claim_sessions"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *SessionGORM) toDomain() (*session.Session, error) {
	sessionID, err := session.SessionIDFromString(m.SessionID)
	if err != nil {
		return nil, err
	}

	token, err := session.TokenFromString(m.Token)
	if err != nil {
		return nil, err
	}

	branchID, err := session.BranchIDFromString(m.BranchID)
	if err != nil {
		return nil, err
	}

	mode, err := session.ModeFromString(m.Mode)
	if err != nil {
		return nil, err
	}

	return session.ReconstructSession(
		sessionID,
		token,
		branchID,
		mode,
		m.Used,
		m.CreatedAt,
		m.ExpiresAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(s *session.Session) *SessionGORM {
	return &SessionGORM{
		SessionID: s.SessionID().String(),
		Token:     s.Token().String(),
		BranchID:  s.BranchID().String(),
		Mode:      s.Mode().String(),
		Used:      s.Used(),
		CreatedAt: s.CreatedAt(),
		ExpiresAt: s.ExpiresAt(),
	}
}
