package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Xahmuh/reward_engine/src/internal/application/redemption"
	"github.com/Xahmuh/reward_engine/src/internal/application/reporting"
)

// ===========================
// Voucher Handler
// ===========================

// VoucherHandler voucher 查找/核銷/報表的 HTTP 處理器
type VoucherHandler struct {
	findVoucher   *redemption.FindVoucherUseCase
	redeemVoucher *redemption.RedeemVoucherUseCase
	listVouchers  *reporting.ListVouchersUseCase
}

// NewVoucherHandler 創建 voucher 處理器
func NewVoucherHandler(
	findVoucher *redemption.FindVoucherUseCase,
	redeemVoucher *redemption.RedeemVoucherUseCase,
	listVouchers *reporting.ListVouchersUseCase,
) *VoucherHandler {
	return &VoucherHandler{
		findVoucher:   findVoucher,
		redeemVoucher: redeemVoucher,
		listVouchers:  listVouchers,
	}
}

// voucherResponse voucher 的回應格式（查找與報表共用）
type voucherResponse struct {
	VoucherID        string     `json:"voucher_id"`
	Code             string     `json:"code"`
	Status           string     `json:"status"`
	CustomerID       string     `json:"customer_id"`
	BranchID         string     `json:"branch_id"`
	PrizeID          string     `json:"prize_id"`
	IssuedAt         time.Time  `json:"issued_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	RedeemedAt       *time.Time `json:"redeemed_at,omitempty"`
	RedeemedBranchID *string    `json:"redeemed_branch_id,omitempty"`
}

// Find 店員輸入/掃描 code 查找 voucher
//
// GET /api/vouchers/:code
func (h *VoucherHandler) Find(c *gin.Context) {
	view, err := h.findVoucher.Execute(redemption.FindVoucherQuery{
		Code: c.Param("code"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, voucherResponse{
		VoucherID:        view.VoucherID,
		Code:             view.Code,
		Status:           view.Status,
		CustomerID:       view.CustomerID,
		BranchID:         view.BranchID,
		PrizeID:          view.PrizeID,
		IssuedAt:         view.IssuedAt,
		ExpiresAt:        view.ExpiresAt,
		RedeemedAt:       view.RedeemedAt,
		RedeemedBranchID: view.RedeemedBranchID,
	})
}

// redeemVoucherRequest POST /api/vouchers/:code/redeem 的請求格式
type redeemVoucherRequest struct {
	BranchID string `json:"branch_id" binding:"required"`
}

// redeemVoucherResponse 核銷成功的回應格式
type redeemVoucherResponse struct {
	VoucherID        string    `json:"voucher_id"`
	Code             string    `json:"code"`
	Status           string    `json:"status"`
	RedeemedAt       time.Time `json:"redeemed_at"`
	RedeemedBranchID string    `json:"redeemed_branch_id"`
}

// Redeem 核銷 voucher
//
// POST /api/vouchers/:code/redeem
func (h *VoucherHandler) Redeem(c *gin.Context) {
	var req redeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorBody{
				Code:    "INVALID_REQUEST_BODY",
				Message: "請求格式錯誤",
			},
		})
		return
	}

	result, err := h.redeemVoucher.Execute(redemption.RedeemVoucherCommand{
		Code:     c.Param("code"),
		BranchID: req.BranchID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, redeemVoucherResponse{
		VoucherID:        result.VoucherID,
		Code:             result.Code,
		Status:           result.Status,
		RedeemedAt:       result.RedeemedAt,
		RedeemedBranchID: result.RedeemedBranchID,
	})
}

// List voucher 報表查詢
//
// GET /api/vouchers?branch_id=&customer_id=&issued_from=&issued_to=
//
// issued_from / issued_to 接受 RFC3339 時間字串，
// 查詢區間為 [issued_from, issued_to)
func (h *VoucherHandler) List(c *gin.Context) {
	query := reporting.ListVouchersQuery{
		BranchID:   c.Query("branch_id"),
		CustomerID: c.Query("customer_id"),
	}

	if raw := c.Query("issued_from"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: ErrorBody{
					Code:    "INVALID_TIME_RANGE",
					Message: "issued_from 必須是 RFC3339 時間字串",
				},
			})
			return
		}
		query.IssuedFrom = &at
	}

	if raw := c.Query("issued_to"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: ErrorBody{
					Code:    "INVALID_TIME_RANGE",
					Message: "issued_to 必須是 RFC3339 時間字串",
				},
			})
			return
		}
		query.IssuedTo = &at
	}

	records, err := h.listVouchers.Execute(query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]voucherResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, voucherResponse{
			VoucherID:        record.VoucherID,
			Code:             record.Code,
			Status:           record.Status,
			CustomerID:       record.CustomerID,
			BranchID:         record.BranchID,
			PrizeID:          record.PrizeID,
			IssuedAt:         record.IssuedAt,
			ExpiresAt:        record.ExpiresAt,
			RedeemedAt:       record.RedeemedAt,
			RedeemedBranchID: record.RedeemedBranchID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"vouchers": responses})
}
