package session

import (
	"errors"
	"strings"

	"github.com/Xahmuh/reward_engine/src/internal/domain/session"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// SessionRepositoryImpl
// ===========================

// SessionRepositoryImpl session 倉儲實現（GORM）
//
// 設計原則：
// - 實作 session.SessionRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// NewSessionRepository 創建新的 session 倉儲實例
func NewSessionRepository(db *gorm.DB) session.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Save 保存新 session
//
// 錯誤處理：
// - token UNIQUE 約束違反 → ErrInvalidToken（256-bit 亂數碰撞，重試即可）
// - 其他資料庫錯誤 → 原始錯誤
func (r *SessionRepositoryImpl) Save(ctx shared.TransactionContext, s *session.Session) error {
	db := r.getDB(ctx)

	gormModel := toGORM(s)

	result := db.Create(gormModel)
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return session.ErrInvalidToken.WithContext(
				"reason", "token collision",
			)
		}
		return result.Error
	}

	return nil
}

// FindByToken 根據 token 查找 session
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → session.ErrTokenNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (r *SessionRepositoryImpl) FindByToken(ctx shared.TransactionContext, token session.Token) (*session.Session, error) {
	db := r.getDB(ctx)

	var gormModel SessionGORM

	result := db.Where("token = ?", token.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, session.ErrTokenNotFound
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// MarkUsed 條件式翻轉 used 標記（compare-and-set）
//
// 實作邏輯：
// 1. 單一條件式更新：UPDATE ... SET used = true WHERE token = ? AND used = false
// 2. RowsAffected == 0 表示這個請求輸掉競態（或 token 根本不存在），
//    返回 ErrTokenAlreadyUsed 讓整筆事務回滾
//
// 必須在事務中呼叫：used 翻轉要與 voucher 寫入一起提交
func (r *SessionRepositoryImpl) MarkUsed(ctx shared.TransactionContext, token session.Token) error {
	db := r.getDB(ctx)

	result := db.Model(&SessionGORM{}).
		Where("token = ? AND used = ?", token.String(), false).
		Update("used", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return session.ErrTokenAlreadyUsed.WithContext("token", token.String())
	}

	return nil
}

// getDB 獲取資料庫實例
//
// 邏輯：
// - 如果 ctx 是 gormTransactionContext，返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
func (r *SessionRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

// isUniqueConstraintError 檢查是否為唯一約束錯誤
//
// 支援的資料庫：
// - SQLite: "UNIQUE constraint failed"
// - MySQL: "Duplicate entry"
// - PostgreSQL: "duplicate key value" / "violates unique constraint"
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "UNIQUE constraint failed") ||
		strings.Contains(errMsg, "Duplicate entry") ||
		strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "violates unique constraint")
}
