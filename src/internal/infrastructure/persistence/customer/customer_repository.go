package customer

import (
	"errors"

	"github.com/Xahmuh/reward_engine/src/internal/domain/customer"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// CustomerRepositoryImpl
// ===========================

// CustomerRepositoryImpl 顧客倉儲實現（GORM）
//
// 設計原則：
// - 實作 customer.CustomerRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 創建新的顧客倉儲實例
func NewCustomerRepository(db *gorm.DB) customer.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Save 保存顧客（Upsert 模式）
//
// 實作邏輯：
// 1. 將 Domain 模型轉換為 GORM 模型
// 2. 使用 GORM Save（以 customer_id 為準：存在則更新，不存在則新增）
// 3. phone_number UNIQUE 約束違反原樣返回（併發首次註冊的罕見競態，
//    呼叫端在新事務重試時會走 FindByPhoneNumber 路徑收斂）
func (r *CustomerRepositoryImpl) Save(ctx shared.TransactionContext, c *customer.Customer) error {
	db := r.getDB(ctx)

	gormModel := toGORM(c)

	result := db.Save(gormModel)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// FindByID 根據顧客 ID 查找顧客
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → customer.ErrCustomerNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (r *CustomerRepositoryImpl) FindByID(ctx shared.TransactionContext, id customer.CustomerID) (*customer.Customer, error) {
	db := r.getDB(ctx)

	var gormModel CustomerGORM

	result := db.Where("customer_id = ?", id.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound.WithContext(
				"customer_id", id.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// FindByPhoneNumber 根據手機號碼查找顧客（身份解析的入口）
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → customer.ErrCustomerNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (r *CustomerRepositoryImpl) FindByPhoneNumber(ctx shared.TransactionContext, phone customer.PhoneNumber) (*customer.Customer, error) {
	db := r.getDB(ctx)

	var gormModel CustomerGORM

	result := db.Where("phone_number = ?", phone.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound.WithContext(
				"phone_number", phone.String(),
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
func (r *CustomerRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}
