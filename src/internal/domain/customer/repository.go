package customer

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// CustomerRepository Interface
// ===========================

// CustomerRepository 顧客倉儲接口
//
// 設計原則：
// - 接口定義在 Domain Layer（依賴反轉原則）
// - 具體實現在 Infrastructure Layer
// - 返回 Domain 對象，不暴露資料庫細節
// - 使用 TransactionContext 支持事務管理
//
// 事務管理策略：
//
// Write Operations (寫操作) - ctx 必須 non-nil (強制事務)：
//   - Save(): 創建或更新顧客
//
// Read Operations (讀操作) - ctx 可為 nil (可選事務參與)：
//   - FindByID(): 根據 ID 查詢
//   - FindByPhoneNumber(): 根據手機號碼查詢（身份解析的入口）
//
// Upsert 注意事項：
// - 手機號碼唯一性由資料庫 UNIQUE 約束保證
// - 身份解析流程（spin 交易的第 2 步）在事務中執行
//   FindByPhoneNumber → 不存在則 NewCustomer + Save / 存在則 UpdateContact + Save，
//   因此重複執行是冪等的：同一手機號碼永遠解析到同一 CustomerID
type CustomerRepository interface {
	// Save 保存顧客（新增或更新，以 CustomerID 為準）
	//
	// 返回：
	// - error: 保存失敗；手機號碼 UNIQUE 約束違反時返回底層錯誤
	//   （併發首次註冊同一手機號碼的罕見情況，呼叫端重試即可冪等收斂）
	Save(ctx shared.TransactionContext, c *Customer) error

	// FindByID 根據顧客 ID 查找顧客
	//
	// 返回：
	// - error: 找不到時返回 ErrCustomerNotFound
	FindByID(ctx shared.TransactionContext, id CustomerID) (*Customer, error)

	// FindByPhoneNumber 根據手機號碼查找顧客
	//
	// 返回：
	// - error: 找不到時返回 ErrCustomerNotFound
	//
	// 使用場景：
	// - Spin 交易第 2 步的身份解析（upsert-by-phone）
	FindByPhoneNumber(ctx shared.TransactionContext, phone PhoneNumber) (*Customer, error)
}
