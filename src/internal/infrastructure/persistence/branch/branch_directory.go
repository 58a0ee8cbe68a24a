package branch

import (
	"errors"

	"github.com/Xahmuh/reward_engine/src/internal/domain/branch"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// BranchDirectoryImpl
// ===========================

// BranchDirectoryImpl 分店目錄實現（GORM，只讀）
//
// 設計原則：
// - 實作 branch.Directory 接口
// - 引擎對分店主檔只讀，沒有任何寫入方法
type BranchDirectoryImpl struct {
	db *gorm.DB
}

// NewBranchDirectory 創建新的分店目錄實例
func NewBranchDirectory(db *gorm.DB) branch.Directory {
	return &BranchDirectoryImpl{db: db}
}

// FindByID 根據分店 ID 查找分店
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → branch.ErrBranchNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (d *BranchDirectoryImpl) FindByID(ctx shared.TransactionContext, id branch.BranchID) (*branch.Branch, error) {
	db := d.getDB(ctx)

	var gormModel BranchGORM

	result := db.Where("branch_id = ?", id.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, branch.ErrBranchNotFound.WithContext(
				"branch_id", id.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// getDB 獲取資料庫實例
//
// 邏輯：
// - 如果 ctx 是 gormTransactionContext，返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
func (d *BranchDirectoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return d.db
}
