package shared_test

import (
	"testing"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 定義測試用的標記類型
type TestEntityAMarker struct{}
type TestEntityBMarker struct{}

// 類型別名用於測試
type TestEntityAID = shared.EntityID[TestEntityAMarker]
type TestEntityBID = shared.EntityID[TestEntityBMarker]

// 測試用錯誤實例
var ErrInvalidTestEntityA = &shared.DomainError{
	Code:    "INVALID_TEST_ENTITY_A_ID",
	Kind:    shared.ErrorKindValidation,
	Message: "invalid test entity A ID",
}

// ===== EntityID[T] 基礎測試 =====

// Test 1: NewEntityID 生成唯一 UUID
func TestNewEntityID_GeneratesUniqueUUIDs(t *testing.T) {
	// Act
	id1 := shared.NewEntityID[TestEntityAMarker]()
	id2 := shared.NewEntityID[TestEntityAMarker]()

	// Assert
	assert.NotEqual(t, "", id1.String())
	assert.NotEqual(t, "", id2.String())
	assert.NotEqual(t, id1.String(), id2.String(), "每次生成的 UUID 應該不同")
}

// Test 2: EntityIDFromString 解析有效 UUID
func TestEntityIDFromString_ValidUUID_Success(t *testing.T) {
	// Arrange
	original := shared.NewEntityID[TestEntityAMarker]()

	// Act
	parsed, err := shared.EntityIDFromString[TestEntityAMarker](original.String(), ErrInvalidTestEntityA)

	// Assert
	require.NoError(t, err)
	assert.True(t, original.Equals(parsed))
}

// Test 3: EntityIDFromString 解析無效字串返回模板錯誤
func TestEntityIDFromString_InvalidUUID_ReturnsTemplateError(t *testing.T) {
	// Act
	parsed, err := shared.EntityIDFromString[TestEntityAMarker]("not-a-uuid", ErrInvalidTestEntityA)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTestEntityA)
	assert.True(t, parsed.IsEmpty())
}

// Test 4: 零值 ID 的 IsEmpty 為 true
func TestEntityID_ZeroValue_IsEmpty(t *testing.T) {
	// Arrange
	var id TestEntityAID

	// Assert
	assert.True(t, id.IsEmpty())
	assert.False(t, shared.NewEntityID[TestEntityAMarker]().IsEmpty())
}

// Test 5: Equals 只比較值，不比較類型以外的東西
func TestEntityID_Equals_SameValue(t *testing.T) {
	// Arrange
	id := shared.NewEntityID[TestEntityBMarker]()
	parsed, err := shared.EntityIDFromString[TestEntityBMarker](id.String(), ErrInvalidTestEntityA)
	require.NoError(t, err)

	// Assert
	assert.True(t, id.Equals(parsed))
	assert.False(t, id.Equals(TestEntityBID{}))
}
