package branch

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/branch"
)

// ===========================
// GORM Models
// ===========================

// BranchGORM 分店資料表模型
//
// 分店主檔由平台的門市管理系統維護，引擎只讀；
// 這裡的模型僅供查詢與測試資料準備（AutoMigrate）使用
type BranchGORM struct {
	// 識別欄位
	BranchID string `gorm:"column:branch_id;type:varchar(36);primaryKey"` // UUID 字串
	Name     string `gorm:"column:name;type:varchar(255);not null"`

	// 活動開關（false = 分店停用抽獎活動）
	// 不設 default 標籤，避免 GORM 在 INSERT 時省略零值、讓停用分店被翻回啟用
	EngagementEnabled bool `gorm:"column:engagement_enabled;not null"`

	// 審計欄位
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (BranchGORM) TableName() string {
	return "branches"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 讀取模型
func (m *BranchGORM) toDomain() (*branch.Branch, error) {
	branchID, err := branch.BranchIDFromString(m.BranchID)
	if err != nil {
		return nil, err
	}

	return branch.ReconstructBranch(branchID, m.Name, m.EngagementEnabled), nil
}
