package persistence

import (
	"gorm.io/gorm"

	persistencebranch "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/branch"
	persistencecustomer "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/customer"
	persistenceprize "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/prize"
	persistencesession "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/session"
	persistencevoucher "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/voucher"
)

// ===========================
// Schema Migration
// ===========================

// AutoMigrate 創建或更新引擎的全部資料表
//
// 使用場景：
// - 服務啟動時（cmd/server）
// - 整合測試的資料庫準備
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&persistencesession.SessionGORM{},
		&persistencecustomer.CustomerGORM{},
		&persistenceprize.PrizeGORM{},
		&persistencevoucher.VoucherGORM{},
		&persistencebranch.BranchGORM{},
	)
}
