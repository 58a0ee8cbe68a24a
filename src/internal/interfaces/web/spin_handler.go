package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appspin "github.com/Xahmuh/reward_engine/src/internal/application/spin"
)

// ===========================
// Spin Handler
// ===========================

// SpinHandler spin 交易的 HTTP 處理器
type SpinHandler struct {
	executeSpin *appspin.ExecuteSpinUseCase
}

// NewSpinHandler 創建 spin 處理器
func NewSpinHandler(executeSpin *appspin.ExecuteSpinUseCase) *SpinHandler {
	return &SpinHandler{executeSpin: executeSpin}
}

// executeSpinRequest POST /api/spins 的請求格式
//
// name / email 選填：顧客不留資料也能 spin
type executeSpinRequest struct {
	Token       string `json:"token" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

// executeSpinResponse POST /api/spins 的回應格式
type executeSpinResponse struct {
	VoucherID   string    `json:"voucher_id"`
	VoucherCode string    `json:"voucher_code"`
	PrizeID     string    `json:"prize_id"`
	PrizeName   string    `json:"prize_name"`
	CustomerID  string    `json:"customer_id"`
	IssuedAt    time.Time `json:"issued_at"`
}

// Execute 執行一次 spin 交易
//
// POST /api/spins
//
// 客戶端 IP 取自連線資訊（c.ClientIP 會尊重受信任 proxy 的
// X-Forwarded-For），用於每日 IP 發放上限
func (h *SpinHandler) Execute(c *gin.Context) {
	var req executeSpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorBody{
				Code:    "INVALID_REQUEST_BODY",
				Message: "請求格式錯誤",
			},
		})
		return
	}

	result, err := h.executeSpin.Execute(appspin.ExecuteSpinCommand{
		Token:       req.Token,
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		Email:       req.Email,
		IPAddress:   c.ClientIP(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, executeSpinResponse{
		VoucherID:   result.VoucherID,
		VoucherCode: result.VoucherCode,
		PrizeID:     result.PrizeID,
		PrizeName:   result.PrizeName,
		CustomerID:  result.CustomerID,
		IssuedAt:    result.IssuedAt,
	})
}
