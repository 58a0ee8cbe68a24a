package prize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// Prize Entity Tests
// ===========================

// Test 1: 創建新獎項成功
func TestNewPrize_Success(t *testing.T) {
	// Arrange
	limit := 5

	// Act
	p, err := NewPrize("藍山咖啡豆一磅", 30, &limit, decimal.NewFromInt(680))

	// Assert
	require.NoError(t, err)
	assert.False(t, p.PrizeID().IsEmpty())
	assert.Equal(t, "藍山咖啡豆一磅", p.Name())
	assert.Equal(t, 30, p.Weight())
	assert.True(t, p.IsActive(), "新獎項預設為啟用")
	require.NotNil(t, p.DailyLimit())
	assert.Equal(t, 5, *p.DailyLimit())
	assert.True(t, p.RetailValue().Equal(decimal.NewFromInt(680)))
}

// Test 2: 獎項名稱為空應該失敗
func TestNewPrize_EmptyName(t *testing.T) {
	// Act
	_, err := NewPrize("", 30, nil, decimal.Zero)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidPrizeName)
}

// Test 3: 權重非正數應該失敗
func TestNewPrize_InvalidWeight(t *testing.T) {
	testCases := []struct {
		name   string
		weight int
	}{
		{"零權重", 0},
		{"負權重", -10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPrize("測試獎項", tc.weight, nil, decimal.Zero)
			assert.ErrorIs(t, err, ErrInvalidWeight)
		})
	}
}

// Test 4: 每日上限非正數應該失敗
func TestNewPrize_InvalidDailyLimit(t *testing.T) {
	// Arrange
	zero := 0

	// Act
	_, err := NewPrize("測試獎項", 30, &zero, decimal.Zero)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidDailyLimit)
}

// Test 5: 更新抽獎配置成功
func TestPrize_UpdateConfiguration_Success(t *testing.T) {
	// Arrange
	p, err := NewPrize("舊名稱", 10, nil, decimal.Zero)
	require.NoError(t, err)
	limit := 3

	// Act
	err = p.UpdateConfiguration("新名稱", 50, &limit, decimal.NewFromInt(1200))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "新名稱", p.Name())
	assert.Equal(t, 50, p.Weight())
	require.NotNil(t, p.DailyLimit())
	assert.Equal(t, 3, *p.DailyLimit())
	assert.True(t, p.RetailValue().Equal(decimal.NewFromInt(1200)))
}

// Test 6: 更新配置時套用與創建相同的驗證規則
func TestPrize_UpdateConfiguration_Invalid(t *testing.T) {
	// Arrange
	p, err := NewPrize("測試獎項", 10, nil, decimal.Zero)
	require.NoError(t, err)
	negative := -1

	// Act & Assert
	assert.ErrorIs(t, p.UpdateConfiguration("", 10, nil, decimal.Zero), ErrInvalidPrizeName)
	assert.ErrorIs(t, p.UpdateConfiguration("名稱", 0, nil, decimal.Zero), ErrInvalidWeight)
	assert.ErrorIs(t, p.UpdateConfiguration("名稱", 10, &negative, decimal.Zero), ErrInvalidDailyLimit)

	// 驗證失敗不應改變原有狀態
	assert.Equal(t, "測試獎項", p.Name())
	assert.Equal(t, 10, p.Weight())
}

// Test 7: 停用與重新啟用
func TestPrize_DeactivateAndActivate(t *testing.T) {
	// Arrange
	p, err := NewPrize("測試獎項", 10, nil, decimal.Zero)
	require.NoError(t, err)

	// Act
	p.Deactivate()

	// Assert
	assert.False(t, p.IsActive())

	// Act
	p.Activate()

	// Assert
	assert.True(t, p.IsActive())
}

// Test 8: 抽獎資格判斷
func TestPrize_IsDrawEligible(t *testing.T) {
	limit := 5

	testCases := []struct {
		name        string
		active      bool
		dailyLimit  *int
		issuedToday int
		expected    bool
	}{
		{"啟用且未設上限", true, nil, 1000, true},
		{"啟用且未達上限", true, &limit, 4, true},
		{"啟用但已達上限", true, &limit, 5, false},
		{"啟用但超過上限", true, &limit, 6, false},
		{"停用中", false, nil, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			p, err := NewPrize("測試獎項", 10, tc.dailyLimit, decimal.Zero)
			require.NoError(t, err)
			if !tc.active {
				p.Deactivate()
			}

			// Act & Assert
			assert.Equal(t, tc.expected, p.IsDrawEligible(tc.issuedToday))
		})
	}
}

// Test 9: DailyLimit 返回副本，外部修改不影響聚合
func TestPrize_DailyLimit_ReturnsCopy(t *testing.T) {
	// Arrange
	limit := 5
	p, err := NewPrize("測試獎項", 10, &limit, decimal.Zero)
	require.NoError(t, err)

	// Act
	got := p.DailyLimit()
	*got = 999
	limit = 888

	// Assert
	assert.Equal(t, 5, *p.DailyLimit())
}

// Test 10: 重建時拒絕空的獎項 ID
func TestReconstructPrize_EmptyID(t *testing.T) {
	// Act
	_, err := ReconstructPrize(PrizeID{}, "測試獎項", 10, true, nil, decimal.Zero, time.Time{}, time.Time{})

	// Assert
	assert.ErrorIs(t, err, ErrInvalidPrizeID)
}
