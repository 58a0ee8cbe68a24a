package branch

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Directory Interface
// ===========================

// Directory 分店目錄接口（只讀）
//
// 設計原則：
// - 接口定義在 Domain Layer（依賴反轉原則）
// - 具體實現在 Infrastructure Layer
// - 引擎對分店主檔只讀：沒有 Save / Update 方法
//
// 使用場景：
// - Session 產生前確認分店存在且未停用
// - Spin 前再次確認（token 發出後分店可能被停用）
type Directory interface {
	// FindByID 根據分店 ID 查找分店
	//
	// 參數：
	// - ctx: 事務上下文（可為 nil，讀操作可選事務參與）
	//
	// 返回：
	// - *Branch: 找到的分店讀取模型
	// - error: 找不到時返回 ErrBranchNotFound
	FindByID(ctx shared.TransactionContext, id BranchID) (*Branch, error)
}
