package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Xahmuh/reward_engine/src/internal/application/catalog"
	"github.com/Xahmuh/reward_engine/src/internal/application/redemption"
	"github.com/Xahmuh/reward_engine/src/internal/application/reporting"
	appsession "github.com/Xahmuh/reward_engine/src/internal/application/session"
	appspin "github.com/Xahmuh/reward_engine/src/internal/application/spin"
	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
	"github.com/Xahmuh/reward_engine/src/internal/infrastructure/config"
	"github.com/Xahmuh/reward_engine/src/internal/infrastructure/events"
	"github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence"
	persistencebranch "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/branch"
	persistencecustomer "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/customer"
	persistenceprize "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/prize"
	persistencesession "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/session"
	persistencevoucher "github.com/Xahmuh/reward_engine/src/internal/infrastructure/persistence/voucher"
	"github.com/Xahmuh/reward_engine/src/internal/interfaces/web"
)

func main() {
	// 1. 載入環境配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. 連接資料庫
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// 開發環境自動遷移；正式環境由部署流程管理 schema
	if cfg.IsDevelopment() {
		log.Println("Running in development mode - performing auto-migration")
		if err := persistence.AutoMigrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	} else {
		log.Println("Running in production mode - skipping auto-migration")
	}

	// 3. 組裝 Infrastructure Layer
	txManager := persistence.NewGORMTransactionManager(db)
	sessionRepo := persistencesession.NewSessionRepository(db)
	customerRepo := persistencecustomer.NewCustomerRepository(db)
	prizeRepo := persistenceprize.NewPrizeRepository(db)
	voucherRepo := persistencevoucher.NewVoucherRepository(db)
	directory := persistencebranch.NewBranchDirectory(db)
	eventBus := events.NewInMemoryEventBus()

	// 4. 組裝 Application Layer
	drawService := prize.NewWeightedDrawService()
	generateSession := appsession.NewGenerateSessionUseCase(sessionRepo, directory, txManager)
	executeSpin := appspin.NewExecuteSpinUseCase(
		sessionRepo,
		customerRepo,
		prizeRepo,
		voucherRepo,
		directory,
		drawService,
		appspin.DefaultRateLimitPolicy(),
		txManager,
		eventBus,
	)
	findVoucher := redemption.NewFindVoucherUseCase(voucherRepo)
	redeemVoucher := redemption.NewRedeemVoucherUseCase(voucherRepo, directory, txManager, eventBus)
	listVouchers := reporting.NewListVouchersUseCase(voucherRepo)
	createPrize := catalog.NewCreatePrizeUseCase(prizeRepo, txManager)
	updatePrize := catalog.NewUpdatePrizeUseCase(prizeRepo, txManager)
	deletePrize := catalog.NewDeletePrizeUseCase(prizeRepo, txManager)
	listPrizes := catalog.NewListPrizesUseCase(prizeRepo)

	// 5. 組裝 HTTP 路由
	router := web.NewRouter(web.Handlers{
		Session: web.NewSessionHandler(generateSession),
		Spin:    web.NewSpinHandler(executeSpin),
		Voucher: web.NewVoucherHandler(findVoucher, redeemVoucher, listVouchers),
		Prize: web.NewPrizeHandler(
			createPrize,
			updatePrize,
			deletePrize,
			listPrizes,
		),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. 啟動服務與優雅關機
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// openDatabase 依配置開啟資料庫連接
//
// - sqlite: 本地開發與測試
// - mysql: 正式環境
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return gorm.Open(mysql.Open(cfg.MySQLDSN()), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
}
