package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ===========================
// Router
// ===========================

// Handlers 路由需要的全部處理器
type Handlers struct {
	Session *SessionHandler
	Spin    *SpinHandler
	Voucher *VoucherHandler
	Prize   *PrizeHandler
}

// NewRouter 組裝 HTTP 路由
//
// 路由分三組：
// - /api/sessions, /api/spins: 分店端/顧客端的引擎入口
// - /api/vouchers: 店員查找與核銷、報表查詢
// - /api/admin: 獎項目錄管理（由平台的管理者認證層保護）
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/sessions", h.Session.Generate)
		api.POST("/spins", h.Spin.Execute)

		api.GET("/vouchers", h.Voucher.List)
		api.GET("/vouchers/:code", h.Voucher.Find)
		api.POST("/vouchers/:code/redeem", h.Voucher.Redeem)

		admin := api.Group("/admin")
		{
			admin.GET("/prizes", h.Prize.List)
			admin.POST("/prizes", h.Prize.Create)
			admin.PUT("/prizes/:id", h.Prize.Update)
			admin.DELETE("/prizes/:id", h.Prize.Delete)
		}
	}

	return router
}
