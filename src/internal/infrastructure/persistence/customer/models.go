package customer

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/customer"
)

// ===========================
// GORM Models
// ===========================

// CustomerGORM 顧客資料表模型
//
// 資料庫約束：
// - customer_id: 主鍵（UUID）
// - phone_number: 唯一索引（手機號碼是身份解析鍵，一個號碼一個顧客）
// - name / email: 可為空（匿名 spin 不強制留資料）
type CustomerGORM struct {
	// 識別欄位
	CustomerID  string `gorm:"column:customer_id;type:varchar(36);primaryKey"` // UUID 字串
	PhoneNumber string `gorm:"column:phone_number;type:varchar(10);uniqueIndex;not null"`

	// 聯絡信息
	Name  string `gorm:"column:name;type:varchar(255)"`
	Email string `gorm:"column:email;type:varchar(255)"`

	// 審計欄位
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (CustomerGORM) TableName() string {
	return "customers"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *CustomerGORM) toDomain() (*customer.Customer, error) {
	customerID, err := customer.CustomerIDFromString(m.CustomerID)
	if err != nil {
		return nil, err
	}

	phoneNumber, err := customer.NewPhoneNumber(m.PhoneNumber)
	if err != nil {
		return nil, err
	}

	return customer.ReconstructCustomer(
		customerID,
		phoneNumber,
		m.Name,
		m.Email,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(c *customer.Customer) *CustomerGORM {
	return &CustomerGORM{
		CustomerID:  c.CustomerID().String(),
		PhoneNumber: c.PhoneNumber().String(),
		Name:        c.Name(),
		Email:       c.Email(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
