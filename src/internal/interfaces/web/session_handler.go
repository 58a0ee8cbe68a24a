package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appsession "github.com/Xahmuh/reward_engine/src/internal/application/session"
)

// ===========================
// Session Handler
// ===========================

// SessionHandler session 相關的 HTTP 處理器
type SessionHandler struct {
	generateSession *appsession.GenerateSessionUseCase
}

// NewSessionHandler 創建 session 處理器
func NewSessionHandler(generateSession *appsession.GenerateSessionUseCase) *SessionHandler {
	return &SessionHandler{generateSession: generateSession}
}

// generateSessionRequest POST /api/sessions 的請求格式
type generateSessionRequest struct {
	BranchID string `json:"branch_id" binding:"required"`
	Mode     string `json:"mode" binding:"required"`
}

// generateSessionResponse POST /api/sessions 的回應格式
type generateSessionResponse struct {
	Token     string    `json:"token"`
	BranchID  string    `json:"branch_id"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Generate 產生新的 claim session
//
// POST /api/sessions
//
// 呼叫端是平台的分店端系統（結帳完成後為顧客產生 spin 入口），
// 不是顧客本人；正式部署時掛在內部網段或加上服務間認證
func (h *SessionHandler) Generate(c *gin.Context) {
	var req generateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorBody{
				Code:    "INVALID_REQUEST_BODY",
				Message: "請求格式錯誤",
			},
		})
		return
	}

	result, err := h.generateSession.Execute(appsession.GenerateSessionCommand{
		BranchID: req.BranchID,
		Mode:     req.Mode,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, generateSessionResponse{
		Token:     result.Token,
		BranchID:  result.BranchID,
		Mode:      result.Mode,
		CreatedAt: result.CreatedAt,
		ExpiresAt: result.ExpiresAt,
	})
}
