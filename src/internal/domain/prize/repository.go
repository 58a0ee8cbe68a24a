package prize

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// PrizeRepository Interface
// ===========================

// PrizeRepository 獎項倉儲接口
//
// 事務管理策略：
//
// Write Operations - ctx 必須 non-nil：
//   - Save(): 創建或更新獎項（目錄 CRUD，引擎核心只讀）
//   - Delete(): 刪除獎項
//
// Read Operations - ctx 可為 nil：
//   - FindByID(), FindAll(), FindActive()
//
// 核心引擎只透過 FindActive 讀抽獎池；
// CRUD 供平台的目錄管理介面使用（引擎外的協作者）
type PrizeRepository interface {
	// Save 保存獎項（新增或更新，以 PrizeID 為準）
	Save(ctx shared.TransactionContext, p *Prize) error

	// Delete 刪除獎項
	//
	// 返回：
	// - error: 找不到時返回 ErrPrizeNotFound
	//
	// 注意：已發出的 voucher 保留 prize_id 參照，
	// 目錄管理應優先使用 Deactivate 而非刪除
	Delete(ctx shared.TransactionContext, id PrizeID) error

	// FindByID 根據獎項 ID 查找
	//
	// 返回：
	// - error: 找不到時返回 ErrPrizeNotFound
	FindByID(ctx shared.TransactionContext, id PrizeID) (*Prize, error)

	// FindAll 查詢全部獎項（目錄管理用）
	FindAll(ctx shared.TransactionContext) ([]*Prize, error)

	// FindActive 查詢啟用中的獎項（抽獎池的原始來源）
	//
	// 注意：每日上限過濾不在這裡做。上限需要當日發出計數，
	// 由 Spin 協調者結合 voucher 計數後呼叫 Prize.IsDrawEligible 過濾
	FindActive(ctx shared.TransactionContext) ([]*Prize, error)
}
