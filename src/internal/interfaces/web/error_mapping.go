package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Domain Error → HTTP Mapping
// ===========================

// ErrorResponse 統一的錯誤回應格式
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody 錯誤內容
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusForKind 將錯誤分類映射到 HTTP 狀態碼
//
// 映射規則：
// - Validation → 400（請求格式錯誤）
// - NotFound → 404（目標不存在）
// - Conflict → 409（一次性狀態轉換的競態輸家）
// - Policy → 422（格式正確但被業務規則拒絕）
// - Transient → 503（暫時性故障，可重試）
// - 其他 → 500
func statusForKind(kind shared.ErrorKind) int {
	switch kind {
	case shared.ErrorKindValidation:
		return http.StatusBadRequest
	case shared.ErrorKindNotFound:
		return http.StatusNotFound
	case shared.ErrorKindConflict:
		return http.StatusConflict
	case shared.ErrorKindPolicy:
		return http.StatusUnprocessableEntity
	case shared.ErrorKindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError 將領域錯誤轉成 HTTP 錯誤回應
//
// 非 DomainError 的錯誤只可能是儲存層/驅動層的意外失敗，
// 依 KindOf 歸為 Transient（503，可重試）；細節不洩漏給客戶端
func respondError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(statusForKind(domainErr.Kind), ErrorResponse{
			Error: ErrorBody{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
			},
		})
		return
	}

	c.JSON(statusForKind(shared.KindOf(err)), ErrorResponse{
		Error: ErrorBody{
			Code:    "TRANSIENT_FAILURE",
			Message: "服務暫時無法使用，請稍後再試",
		},
	})
}
