package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Xahmuh/reward_engine/src/internal/domain/customer"
)

// ===========================
// CustomerRepository Integration Tests
// ===========================

// setupTestDB 創建測試資料庫（in-memory SQLite）
func setupTestDB(t *testing.T) *gorm.DB {
	// 1. 使用 in-memory SQLite
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")

	// 2. 自動遷移
	err = db.AutoMigrate(&CustomerGORM{})
	require.NoError(t, err, "failed to migrate database schema")

	return db
}

// createTestCustomer 創建測試用顧客
func createTestCustomer(t *testing.T, phone string) *customer.Customer {
	t.Helper()

	phoneNumber, err := customer.NewPhoneNumber(phone)
	require.NoError(t, err)

	c, err := customer.NewCustomer(phoneNumber, "王小明", "ming@example.com")
	require.NoError(t, err)

	return c
}

// Test 1: Save new customer successfully
func TestCustomerRepository_Save_NewCustomer_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	c := createTestCustomer(t, "0912345678")

	// Act
	err := repo.Save(nil, c)

	// Assert
	require.NoError(t, err)

	// Verify in database
	var gormModel CustomerGORM
	result := db.First(&gormModel, "customer_id = ?", c.CustomerID().String())
	require.NoError(t, result.Error)
	assert.Equal(t, "0912345678", gormModel.PhoneNumber)
	assert.Equal(t, "王小明", gormModel.Name)
	assert.Equal(t, "ming@example.com", gormModel.Email)
}

// Test 2: Save updates existing customer (Upsert by customer_id)
func TestCustomerRepository_Save_UpdateExisting_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	c := createTestCustomer(t, "0912345678")
	require.NoError(t, repo.Save(nil, c))

	// 更新聯絡信息後再存一次
	changed, err := c.UpdateContact("王大明", "daming@example.com")
	require.NoError(t, err)
	require.True(t, changed)

	// Act
	err = repo.Save(nil, c)

	// Assert
	require.NoError(t, err)

	found, err := repo.FindByID(nil, c.CustomerID())
	require.NoError(t, err)
	assert.Equal(t, "王大明", found.Name())
	assert.Equal(t, "daming@example.com", found.Email())

	// 仍然只有一筆紀錄
	var count int64
	db.Model(&CustomerGORM{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

// Test 3: FindByPhoneNumber resolves the identity key
func TestCustomerRepository_FindByPhoneNumber_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	c := createTestCustomer(t, "0987654321")
	require.NoError(t, repo.Save(nil, c))

	phone, err := customer.NewPhoneNumber("0987654321")
	require.NoError(t, err)

	// Act
	found, err := repo.FindByPhoneNumber(nil, phone)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, c.CustomerID().String(), found.CustomerID().String())
	assert.Equal(t, "0987654321", found.PhoneNumber().String())
}

// Test 4: FindByPhoneNumber returns ErrCustomerNotFound for unknown phone
func TestCustomerRepository_FindByPhoneNumber_NotFound(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)

	phone, err := customer.NewPhoneNumber("0900000000")
	require.NoError(t, err)

	// Act
	_, err = repo.FindByPhoneNumber(nil, phone)

	// Assert
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

// Test 5: Duplicate phone number insert is rejected by unique constraint
func TestCustomerRepository_Save_DuplicatePhone_Fails(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	first := createTestCustomer(t, "0912345678")
	require.NoError(t, repo.Save(nil, first))

	// 不同 customer_id、相同手機號碼
	second := createTestCustomer(t, "0912345678")

	// Act
	err := repo.Save(nil, second)

	// Assert
	require.Error(t, err, "same phone number must not create a second customer")
}
