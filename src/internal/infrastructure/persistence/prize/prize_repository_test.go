package prize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
)

// ===========================
// PrizeRepository Integration Tests
// ===========================

// setupTestDB 創建測試資料庫（in-memory SQLite）
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")

	err = db.AutoMigrate(&PrizeGORM{})
	require.NoError(t, err, "failed to migrate database schema")

	return db
}

// createTestPrize 創建測試用獎項
func createTestPrize(t *testing.T, name string, weight int, dailyLimit *int) *prize.Prize {
	t.Helper()

	p, err := prize.NewPrize(name, weight, dailyLimit, decimal.NewFromInt(120))
	require.NoError(t, err)

	return p
}

// Test 1: Save and FindByID round-trips the prize
func TestPrizeRepository_Save_FindByID_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewPrizeRepository(db)
	limit := 5
	p := createTestPrize(t, "美式咖啡", 20, &limit)

	// Act
	require.NoError(t, repo.Save(nil, p))
	found, err := repo.FindByID(nil, p.PrizeID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "美式咖啡", found.Name())
	assert.Equal(t, 20, found.Weight())
	assert.True(t, found.IsActive())
	require.NotNil(t, found.DailyLimit())
	assert.Equal(t, 5, *found.DailyLimit())
	assert.True(t, found.RetailValue().Equal(decimal.NewFromInt(120)))
}

// Test 2: NULL daily_limit round-trips as uncapped
func TestPrizeRepository_Save_NilDailyLimit_RoundTrips(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewPrizeRepository(db)
	p := createTestPrize(t, "起司蛋糕", 80, nil)

	// Act
	require.NoError(t, repo.Save(nil, p))
	found, err := repo.FindByID(nil, p.PrizeID())

	// Assert
	require.NoError(t, err)
	assert.Nil(t, found.DailyLimit(), "uncapped prize should stay uncapped")
}

// Test 3: Save updates existing prize (Upsert by prize_id)
func TestPrizeRepository_Save_UpdateExisting_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewPrizeRepository(db)
	p := createTestPrize(t, "美式咖啡", 20, nil)
	require.NoError(t, repo.Save(nil, p))

	require.NoError(t, p.UpdateConfiguration("拿鐵", 30, nil, decimal.NewFromInt(150)))
	p.Deactivate()

	// Act
	require.NoError(t, repo.Save(nil, p))

	// Assert
	found, err := repo.FindByID(nil, p.PrizeID())
	require.NoError(t, err)
	assert.Equal(t, "拿鐵", found.Name())
	assert.Equal(t, 30, found.Weight())
	assert.False(t, found.IsActive())

	var count int64
	db.Model(&PrizeGORM{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

// Test 4: FindActive excludes deactivated prizes
func TestPrizeRepository_FindActive_ExcludesInactive(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewPrizeRepository(db)

	active := createTestPrize(t, "美式咖啡", 20, nil)
	inactive := createTestPrize(t, "起司蛋糕", 80, nil)
	inactive.Deactivate()

	require.NoError(t, repo.Save(nil, active))
	require.NoError(t, repo.Save(nil, inactive))

	// Act
	prizes, err := repo.FindActive(nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, prizes, 1)
	assert.Equal(t, active.PrizeID().String(), prizes[0].PrizeID().String())

	all, err := repo.FindAll(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// Test 5: Delete removes the prize; deleting again reports not found
func TestPrizeRepository_Delete(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewPrizeRepository(db)
	p := createTestPrize(t, "美式咖啡", 20, nil)
	require.NoError(t, repo.Save(nil, p))

	// Act
	err := repo.Delete(nil, p.PrizeID())

	// Assert
	require.NoError(t, err)
	_, err = repo.FindByID(nil, p.PrizeID())
	assert.ErrorIs(t, err, prize.ErrPrizeNotFound)

	// 再刪一次應返回 not found
	err = repo.Delete(nil, p.PrizeID())
	assert.ErrorIs(t, err, prize.ErrPrizeNotFound)
}

// Test 6: 停用中的獎項首次寫入（INSERT 路徑）後讀回仍是停用
func TestPrizeRepository_Save_PersistsDeactivatedState(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewPrizeRepository(db)
	p := createTestPrize(t, "起司蛋糕", 80, nil)
	p.Deactivate()

	// Act
	require.NoError(t, repo.Save(nil, p))

	// Assert
	found, err := repo.FindByID(nil, p.PrizeID())
	require.NoError(t, err)
	assert.False(t, found.IsActive(), "deactivated prize should stay deactivated after insert")

	var model PrizeGORM
	require.NoError(t, db.Where("prize_id = ?", p.PrizeID().String()).First(&model).Error)
	assert.False(t, model.IsActive)
}
