package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Xahmuh/reward_engine/src/internal/application/catalog"
)

// ===========================
// Prize Handler（目錄管理）
// ===========================

// PrizeHandler 獎項目錄 CRUD 的 HTTP 處理器
//
// 掛在 /api/admin 底下，供平台的後台管理介面使用；
// 正式部署時由平台的管理者認證層保護
type PrizeHandler struct {
	createPrize *catalog.CreatePrizeUseCase
	updatePrize *catalog.UpdatePrizeUseCase
	deletePrize *catalog.DeletePrizeUseCase
	listPrizes  *catalog.ListPrizesUseCase
}

// NewPrizeHandler 創建獎項處理器
func NewPrizeHandler(
	createPrize *catalog.CreatePrizeUseCase,
	updatePrize *catalog.UpdatePrizeUseCase,
	deletePrize *catalog.DeletePrizeUseCase,
	listPrizes *catalog.ListPrizesUseCase,
) *PrizeHandler {
	return &PrizeHandler{
		createPrize: createPrize,
		updatePrize: updatePrize,
		deletePrize: deletePrize,
		listPrizes:  listPrizes,
	}
}

// prizeRequest 創建/更新獎項的請求格式
type prizeRequest struct {
	Name        string `json:"name" binding:"required"`
	Weight      int    `json:"weight" binding:"required"`
	DailyLimit  *int   `json:"daily_limit"`
	RetailValue string `json:"retail_value"`
	IsActive    *bool  `json:"is_active"`
}

// prizeResponse 獎項的回應格式
type prizeResponse struct {
	PrizeID     string    `json:"prize_id"`
	Name        string    `json:"name"`
	Weight      int       `json:"weight"`
	IsActive    bool      `json:"is_active"`
	DailyLimit  *int      `json:"daily_limit,omitempty"`
	RetailValue string    `json:"retail_value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// toPrizeResponse 將視圖 DTO 轉換為回應格式
func toPrizeResponse(view *catalog.PrizeView) prizeResponse {
	return prizeResponse{
		PrizeID:     view.PrizeID,
		Name:        view.Name,
		Weight:      view.Weight,
		IsActive:    view.IsActive,
		DailyLimit:  view.DailyLimit,
		RetailValue: view.RetailValue,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

// Create 創建獎項
//
// POST /api/admin/prizes
func (h *PrizeHandler) Create(c *gin.Context) {
	var req prizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorBody{
				Code:    "INVALID_REQUEST_BODY",
				Message: "請求格式錯誤",
			},
		})
		return
	}

	view, err := h.createPrize.Execute(catalog.CreatePrizeCommand{
		Name:        req.Name,
		Weight:      req.Weight,
		DailyLimit:  req.DailyLimit,
		RetailValue: req.RetailValue,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPrizeResponse(view))
}

// Update 更新獎項配置
//
// PUT /api/admin/prizes/:id
func (h *PrizeHandler) Update(c *gin.Context) {
	var req prizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorBody{
				Code:    "INVALID_REQUEST_BODY",
				Message: "請求格式錯誤",
			},
		})
		return
	}

	view, err := h.updatePrize.Execute(catalog.UpdatePrizeCommand{
		PrizeID:     c.Param("id"),
		Name:        req.Name,
		Weight:      req.Weight,
		DailyLimit:  req.DailyLimit,
		RetailValue: req.RetailValue,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPrizeResponse(view))
}

// Delete 刪除獎項
//
// DELETE /api/admin/prizes/:id
func (h *PrizeHandler) Delete(c *gin.Context) {
	err := h.deletePrize.Execute(catalog.DeletePrizeCommand{
		PrizeID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List 獎項列表
//
// GET /api/admin/prizes?active_only=true
func (h *PrizeHandler) List(c *gin.Context) {
	views, err := h.listPrizes.Execute(catalog.ListPrizesQuery{
		ActiveOnly: c.Query("active_only") == "true",
	})
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]prizeResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, toPrizeResponse(view))
	}

	c.JSON(http.StatusOK, gin.H{"prizes": responses})
}
