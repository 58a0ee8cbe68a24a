package prize

import (
	"errors"

	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// PrizeRepositoryImpl
// ===========================

// PrizeRepositoryImpl 獎項倉儲實現（GORM）
//
// 設計原則：
// - 實作 prize.PrizeRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type PrizeRepositoryImpl struct {
	db *gorm.DB
}

// NewPrizeRepository 創建新的獎項倉儲實例
func NewPrizeRepository(db *gorm.DB) prize.PrizeRepository {
	return &PrizeRepositoryImpl{db: db}
}

// Save 保存獎項（Upsert 模式，以 prize_id 為準）
func (r *PrizeRepositoryImpl) Save(ctx shared.TransactionContext, p *prize.Prize) error {
	db := r.getDB(ctx)

	gormModel := toGORM(p)

	result := db.Save(gormModel)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete 刪除獎項
//
// 錯誤處理：
// - RowsAffected == 0 → prize.ErrPrizeNotFound
func (r *PrizeRepositoryImpl) Delete(ctx shared.TransactionContext, id prize.PrizeID) error {
	db := r.getDB(ctx)

	result := db.Where("prize_id = ?", id.String()).Delete(&PrizeGORM{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return prize.ErrPrizeNotFound.WithContext("prize_id", id.String())
	}

	return nil
}

// FindByID 根據獎項 ID 查找
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → prize.ErrPrizeNotFound
func (r *PrizeRepositoryImpl) FindByID(ctx shared.TransactionContext, id prize.PrizeID) (*prize.Prize, error) {
	db := r.getDB(ctx)

	var gormModel PrizeGORM

	result := db.Where("prize_id = ?", id.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, prize.ErrPrizeNotFound.WithContext("prize_id", id.String())
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// FindAll 查詢全部獎項（目錄管理用，按創建時間升冪）
func (r *PrizeRepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*prize.Prize, error) {
	db := r.getDB(ctx)

	var gormModels []PrizeGORM

	result := db.Order("created_at ASC").Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toDomainSlice(gormModels)
}

// FindActive 查詢啟用中的獎項（抽獎池的原始來源）
func (r *PrizeRepositoryImpl) FindActive(ctx shared.TransactionContext) ([]*prize.Prize, error) {
	db := r.getDB(ctx)

	var gormModels []PrizeGORM

	result := db.Where("is_active = ?", true).Order("created_at ASC").Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toDomainSlice(gormModels)
}

// toDomainSlice 批次轉換 GORM 模型為 Domain 模型
func toDomainSlice(gormModels []PrizeGORM) ([]*prize.Prize, error) {
	prizes := make([]*prize.Prize, 0, len(gormModels))
	for i := range gormModels {
		p, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		prizes = append(prizes, p)
	}
	return prizes, nil
}

// getDB 獲取資料庫實例
//
// 邏輯：
// - 如果 ctx 是 gormTransactionContext，返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
func (r *PrizeRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}
