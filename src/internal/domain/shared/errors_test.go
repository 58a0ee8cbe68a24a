package shared_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

var errSample = &shared.DomainError{
	Code:    "SAMPLE_CONFLICT",
	Kind:    shared.ErrorKindConflict,
	Message: "sample conflict",
}

// Test 1: WithContext 不修改原錯誤
func TestDomainError_WithContext_DoesNotMutateOriginal(t *testing.T) {
	// Act
	withCtx := errSample.WithContext("key", "value")

	// Assert
	assert.Empty(t, errSample.Context)
	assert.Equal(t, "value", withCtx.Context["key"])
	assert.ErrorIs(t, withCtx, errSample, "加上下文後仍應以 Code 比對相等")
}

// Test 2: errors.Is 以 Code 比較，Kind 不影響
func TestDomainError_Is_ComparesByCode(t *testing.T) {
	// Arrange
	same := &shared.DomainError{Code: "SAMPLE_CONFLICT", Kind: shared.ErrorKindPolicy, Message: "other"}
	different := &shared.DomainError{Code: "OTHER", Kind: shared.ErrorKindConflict, Message: "sample conflict"}

	// Assert
	assert.True(t, errors.Is(errSample, same))
	assert.False(t, errors.Is(errSample, different))
}

// Test 3: KindOf 分類
func TestKindOf_Classification(t *testing.T) {
	assert.Equal(t, shared.ErrorKindConflict, shared.KindOf(errSample))
	assert.Equal(t, shared.ErrorKindConflict, shared.KindOf(errSample.WithContext("k", "v")))
	// 非 DomainError 一律視為 Transient（未分類 = 儲存層意外失敗）
	assert.Equal(t, shared.ErrorKindTransient, shared.KindOf(fmt.Errorf("driver: bad connection")))
	assert.Equal(t, shared.ErrorKind(""), shared.KindOf(nil))
}

// Test 4: IsRetryable 只對 Transient 為 true
func TestIsRetryable_OnlyTransient(t *testing.T) {
	transient := &shared.DomainError{Code: "STORE_UNAVAILABLE", Kind: shared.ErrorKindTransient, Message: "store unavailable"}

	assert.True(t, shared.IsRetryable(transient))
	assert.True(t, shared.IsRetryable(errors.New("raw db error")))
	assert.False(t, shared.IsRetryable(errSample))
	assert.False(t, shared.IsRetryable(nil))
}

// Test 5: Wrap 保留底層原因
func TestDomainError_Wrap_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	wrapped := errSample.Wrap(cause)

	assert.Equal(t, cause.Error(), wrapped.Context["cause"])
	assert.ErrorIs(t, wrapped, errSample)
	assert.Same(t, errSample, errSample.Wrap(nil))
}
