package persistence

import (
	"context"
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// defaultTransactionTimeout 單一事務的時間上限
//
// Spin 交易（session 驗證 + 身份解析 + 計數 + 抽獎 + voucher 寫入）
// 正常在毫秒級完成；超過這個上限視為儲存層異常，讓事務失敗回滾
// 而不是讓請求無限期掛著
const defaultTransactionTimeout = 5 * time.Second

// gormTransactionManager GORM 事務管理器實作
//
// 設計原則：
// 1. 實作 shared.TransactionManager 介面
// 2. 以 gorm.DB.Transaction 管理 BEGIN / COMMIT / ROLLBACK：
//    - fn 返回錯誤時回滾
//    - fn panic 時回滾並重新拋出（由呼叫端處理）
// 3. 事務中的 *gorm.DB 包進 gormTransactionContext 傳給 fn，
//    Repository 透過型別斷言取回，Domain Layer 看不到 GORM
type gormTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建 GORM 事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &gormTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
//
// 行為保證：
// - fn 返回 nil: COMMIT，fn 中的所有寫入一起生效
// - fn 返回錯誤: ROLLBACK，錯誤原樣返回給呼叫端
// - fn panic: ROLLBACK 後 panic 繼續向上拋
func (m *gormTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTransactionTimeout)
	defer cancel()

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
