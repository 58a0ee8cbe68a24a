package customer

import (
	"regexp"
	"time"
)

// ===========================
// Customer Aggregate Root
// ===========================

// Customer 顧客聚合根
//
// 聚合邊界：
// - 顧客基本信息（ID, PhoneNumber）
// - 可選聯絡信息（Name, Email）
// - 註冊狀態（CreatedAt, UpdatedAt）
//
// 不變量（Invariants）：
// 1. 顧客必須有手機號碼（身份唯一鍵）
// 2. 手機號碼不可變更（身份鍵；變更等同於另一位顧客）
// 3. CreatedAt 不可變更
// 4. UpdatedAt 在每次狀態變更時更新
//
// 設計原則：
// - Tell, Don't Ask：通過方法封裝行為，而非暴露狀態
// - 不可變性：所有欄位為 unexported
//
// Upsert 語義（身份解析）：
// 同一手機號碼重複註冊是冪等操作：第二次註冊返回相同的 CustomerID，
// 並以 UpdateContact 更新姓名/Email，不會產生重複紀錄。
type Customer struct {
	// 識別欄位
	customerID  CustomerID
	phoneNumber PhoneNumber

	// 聯絡信息（可選）
	name  string
	email string

	// 審計欄位
	createdAt time.Time
	updatedAt time.Time
}

// emailPattern 寬鬆的 Email 格式檢查（local@domain，domain 含點）
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NewCustomer 創建新顧客（Checked Constructor）
//
// 參數：
// - phoneNumber: 手機號碼（已在 PhoneNumber VO 中驗證）
// - name: 姓名（可為空）
// - email: Email（可為空；非空時驗證格式）
//
// 業務規則：
// 1. 手機號碼必填（已由 VO 保證有效）
// 2. 自動生成 CustomerID（UUID）
// 3. 設定 CreatedAt 和 UpdatedAt 為當前時間
func NewCustomer(phoneNumber PhoneNumber, name string, email string) (*Customer, error) {
	if phoneNumber.IsZero() {
		return nil, ErrInvalidPhoneNumberFormat.WithContext(
			"reason", "phone number is required",
		)
	}

	if email != "" && !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmailFormat.WithContext("email", email)
	}

	now := time.Now()

	return &Customer{
		customerID:  NewCustomerID(),
		phoneNumber: phoneNumber,
		name:        name,
		email:       email,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructCustomer 重建顧客聚合（用於從資料庫載入）
//
// 使用場景：
// - Repository 從資料庫載入顧客
// - 不執行業務規則驗證（假設資料庫中的數據已驗證）
func ReconstructCustomer(
	customerID CustomerID,
	phoneNumber PhoneNumber,
	name string,
	email string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	if customerID.IsEmpty() {
		return nil, ErrInvalidCustomerID.WithContext(
			"reason", "invalid customer ID in database",
		)
	}
	if phoneNumber.IsZero() {
		return nil, ErrInvalidPhoneNumberFormat.WithContext(
			"reason", "missing phone number in database",
		)
	}

	return &Customer{
		customerID:  customerID,
		phoneNumber: phoneNumber,
		name:        name,
		email:       email,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ===========================
// Customer Aggregate Behavior Methods
// ===========================

// UpdateContact 更新聯絡信息（冪等 upsert 的後半部）
//
// 業務規則：
// 1. 手機號碼不變（身份鍵）
// 2. 只有非空的新值才覆蓋舊值（重複註冊未填姓名時不清掉既有姓名）
// 3. Email 非空時驗證格式
// 4. 有實際變更時才更新 UpdatedAt
//
// 返回：
// - bool: 是否有實際變更
// - error: Email 格式無效
func (c *Customer) UpdateContact(name string, email string) (bool, error) {
	if email != "" && !emailPattern.MatchString(email) {
		return false, ErrInvalidEmailFormat.WithContext("email", email)
	}

	changed := false
	if name != "" && name != c.name {
		c.name = name
		changed = true
	}
	if email != "" && email != c.email {
		c.email = email
		changed = true
	}

	if changed {
		c.updatedAt = time.Now()
	}

	return changed, nil
}

// ===========================
// Customer Aggregate Getters
// ===========================

// CustomerID 返回顧客 ID
func (c *Customer) CustomerID() CustomerID {
	return c.customerID
}

// PhoneNumber 返回手機號碼
func (c *Customer) PhoneNumber() PhoneNumber {
	return c.phoneNumber
}

// Name 返回姓名（可能為空）
func (c *Customer) Name() string {
	return c.name
}

// Email 返回 Email（可能為空）
func (c *Customer) Email() string {
	return c.email
}

// CreatedAt 返回創建時間
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt 返回更新時間
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}
