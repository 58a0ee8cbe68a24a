package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Error Mapping Tests
// ===========================

// respondAndRecord 在測試用 gin.Context 上執行 respondError 並回收結果
func respondAndRecord(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	respondError(c, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return recorder.Code, body
}

// Test 1: DomainError 依 Kind 映射到對應的 HTTP 狀態碼
func TestRespondError_DomainErrorKinds(t *testing.T) {
	// Arrange
	cases := []struct {
		kind   shared.ErrorKind
		status int
	}{
		{shared.ErrorKindValidation, http.StatusBadRequest},
		{shared.ErrorKindNotFound, http.StatusNotFound},
		{shared.ErrorKindConflict, http.StatusConflict},
		{shared.ErrorKindPolicy, http.StatusUnprocessableEntity},
		{shared.ErrorKindTransient, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		domainErr := &shared.DomainError{
			Code:    "TEST_ERROR",
			Kind:    tc.kind,
			Message: "測試錯誤",
		}

		// Act
		status, body := respondAndRecord(t, domainErr)

		// Assert
		assert.Equal(t, tc.status, status, "kind %s", tc.kind)
		assert.Equal(t, "TEST_ERROR", body.Error.Code)
		assert.Equal(t, "測試錯誤", body.Error.Message)
	}
}

// Test 2: 未分類的儲存層/驅動層錯誤視為 Transient（503，可重試）
func TestRespondError_RawStoreError_Transient(t *testing.T) {
	// Act
	status, body := respondAndRecord(t, errors.New("driver: bad connection"))

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "TRANSIENT_FAILURE", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "bad connection", "driver detail must not leak")
}
