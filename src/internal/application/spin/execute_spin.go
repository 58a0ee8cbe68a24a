package spin

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/branch"
	"github.com/Xahmuh/reward_engine/src/internal/domain/customer"
	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
	"github.com/Xahmuh/reward_engine/src/internal/domain/session"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"github.com/Xahmuh/reward_engine/src/internal/domain/voucher"
)

// ===========================
// ExecuteSpin Use Case（核心狀態機）
// ===========================

// maxCodeAttempts voucher code 碰撞時的重新產生次數上限
const maxCodeAttempts = 5

// ExecuteSpinCommand 執行 spin 的命令（Input DTO）
//
// 設計原則：
// - 只包含外部輸入數據，使用原始類型（string），
//   由 Use Case 轉換為 Value Object
type ExecuteSpinCommand struct {
	Token       string // claim token（連結參數）
	PhoneNumber string // 顧客手機號碼（必填，身份鍵）
	Name        string // 顧客姓名（可選）
	Email       string // 顧客 Email（可選）
	IPAddress   string // 客戶端 IP（可選；提供時參與每日 IP 限流）
}

// ExecuteSpinResult 執行 spin 的結果（Output DTO）
type ExecuteSpinResult struct {
	VoucherID   string
	VoucherCode string
	PrizeID     string
	PrizeName   string
	CustomerID  string
	IssuedAt    time.Time
}

// ExecuteSpinUseCase Spin 交易協調者
//
// 職責（業務流程編排，邏輯在 Domain Layer）：
//  1. 驗證 token（不存在 / 過期 / 已用）
//  2. 以手機號碼解析顧客身份（冪等 upsert）
//  3. 執行每日限流（顧客維度 + IP 維度，read-then-act）
//  4. 建抽獎池（啟用中、未達每日上限的獎項）
//  5. 加權抽獎
//  6. 產生 voucher code（查重，碰撞重新產生）
//  7. 寫入 voucher
//  8. Single 模式：條件式標記 token 已用
//
// 原子性保證：
// 步驟 1–8 全部在單一事務中執行，任何一步失敗整體回滾。
// 第 7、8 步的綁定是關鍵：Single token 絕不可能鑄出兩張 voucher，
// 因為輸掉 MarkUsed 競賽的請求會回滾它在第 7 步寫入的 voucher。
//
// 身份 upsert 的冪等性讓整個呼叫在 Transient 失敗後重試安全。
type ExecuteSpinUseCase struct {
	sessionRepo  session.SessionRepository
	customerRepo customer.CustomerRepository
	prizeRepo    prize.PrizeRepository
	voucherRepo  voucher.VoucherRepository
	directory    branch.Directory
	drawService  *prize.WeightedDrawService
	policy       RateLimitPolicy
	txManager    shared.TransactionManager
	publisher    shared.EventPublisher // 可為 nil（不發布事件）
}

// NewExecuteSpinUseCase 創建 Use Case 實例
func NewExecuteSpinUseCase(
	sessionRepo session.SessionRepository,
	customerRepo customer.CustomerRepository,
	prizeRepo prize.PrizeRepository,
	voucherRepo voucher.VoucherRepository,
	directory branch.Directory,
	drawService *prize.WeightedDrawService,
	policy RateLimitPolicy,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *ExecuteSpinUseCase {
	return &ExecuteSpinUseCase{
		sessionRepo:  sessionRepo,
		customerRepo: customerRepo,
		prizeRepo:    prizeRepo,
		voucherRepo:  voucherRepo,
		directory:    directory,
		drawService:  drawService,
		policy:       policy,
		txManager:    txManager,
		publisher:    publisher,
	}
}

// Execute 執行一次 spin
//
// 錯誤處理（全部為典型分類的 DomainError）：
// - session.ErrTokenNotFound / ErrTokenExpired / ErrTokenAlreadyUsed
// - branch.ErrBranchSuspended（token 發出後分店被停用）
// - customer.ErrInvalidPhoneNumberFormat / ErrInvalidEmailFormat
// - ErrDailyLimitExceeded（顧客或 IP 任一維度達上限）
// - prize.ErrNoPrizesAvailable / ErrInvalidConfiguration
// - 儲存層失敗 → Transient（可安全重試）
func (uc *ExecuteSpinUseCase) Execute(cmd ExecuteSpinCommand) (*ExecuteSpinResult, error) {
	// Step 0: 驗證輸入並轉換為 Value Object（事務外，純驗證）
	token, err := session.TokenFromString(cmd.Token)
	if err != nil {
		return nil, err
	}

	phone, err := customer.NewPhoneNumber(cmd.PhoneNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var (
		result     *ExecuteSpinResult
		newVoucher *voucher.Voucher
	)

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// Step 1: 驗證 token
		sess, err := uc.sessionRepo.FindByToken(ctx, token)
		if err != nil {
			return err
		}
		if err := sess.ValidateAt(now); err != nil {
			return err
		}

		// Step 1b: 分店狀態（token 發出後分店可能被停用）
		br, err := uc.findBranch(ctx, sess.BranchID().String())
		if err != nil {
			return err
		}
		if err := br.EnsureActive(); err != nil {
			return err
		}

		// Step 2: 身份解析（冪等 upsert-by-phone）
		cust, err := uc.resolveCustomer(ctx, phone, cmd.Name, cmd.Email)
		if err != nil {
			return err
		}

		// Step 3: 每日限流（read-then-act，見 RateLimitPolicy 的競態說明）
		if err := uc.enforceRateLimit(ctx, cust, cmd.IPAddress, now); err != nil {
			return err
		}

		// Step 4: 建抽獎池（啟用中、未達每日上限）
		pool, err := uc.buildCandidatePool(ctx, now)
		if err != nil {
			return err
		}

		// Step 5: 加權抽獎
		won, err := uc.drawService.Draw(pool)
		if err != nil {
			return err
		}

		// Step 6: 產生唯一 voucher code（碰撞重新產生）
		code, err := uc.generateUniqueCode(ctx)
		if err != nil {
			return err
		}

		// Step 7: 寫入 voucher
		newVoucher, err = uc.buildVoucher(cust, sess, won, code, cmd.IPAddress)
		if err != nil {
			return err
		}
		if err := uc.voucherRepo.Save(ctx, newVoucher); err != nil {
			return err
		}

		// Step 8: Single 模式：條件式標記 token 已用（CAS）
		// 與第 7 步同一事務：輸掉競賽 → ErrTokenAlreadyUsed → 整體回滾
		if sess.IsSingleUse() {
			if err := uc.sessionRepo.MarkUsed(ctx, token); err != nil {
				return err
			}
		}

		result = &ExecuteSpinResult{
			VoucherID:   newVoucher.VoucherID().String(),
			VoucherCode: newVoucher.Code().String(),
			PrizeID:     won.PrizeID().String(),
			PrizeName:   won.Name(),
			CustomerID:  cust.CustomerID().String(),
			IssuedAt:    newVoucher.CreatedAt(),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 事務提交成功後才發布事件（發布失敗不影響已提交的交易）
	uc.publishEvents(newVoucher)

	return result, nil
}

// findBranch 以 session 的分店 ID 查分店目錄
//
// bounded context 之間以字串傳遞 ID，各自解析
func (uc *ExecuteSpinUseCase) findBranch(ctx shared.TransactionContext, branchID string) (*branch.Branch, error) {
	id, err := branch.BranchIDFromString(branchID)
	if err != nil {
		return nil, err
	}
	return uc.directory.FindByID(ctx, id)
}

// resolveCustomer 冪等的 upsert-by-phone 身份解析
//
// 業務規則：
// - 手機號碼已存在 → 返回既有顧客，並以非空的新值更新姓名/Email
// - 不存在 → 創建新顧客
// - 重複執行返回相同的 CustomerID，不產生重複紀錄
func (uc *ExecuteSpinUseCase) resolveCustomer(
	ctx shared.TransactionContext,
	phone customer.PhoneNumber,
	name string,
	email string,
) (*customer.Customer, error) {
	existing, err := uc.customerRepo.FindByPhoneNumber(ctx, phone)
	if err == nil {
		changed, err := existing.UpdateContact(name, email)
		if err != nil {
			return nil, err
		}
		if changed {
			if err := uc.customerRepo.Save(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	if shared.KindOf(err) != shared.ErrorKindNotFound {
		return nil, err
	}

	created, err := customer.NewCustomer(phone, name, email)
	if err != nil {
		return nil, err
	}
	if err := uc.customerRepo.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// enforceRateLimit 每日限流（顧客維度 + IP 維度）
func (uc *ExecuteSpinUseCase) enforceRateLimit(
	ctx shared.TransactionContext,
	cust *customer.Customer,
	ipAddress string,
	now time.Time,
) error {
	day := startOfDay(now)

	if uc.policy.PerCustomerPerDay > 0 {
		customerID, err := voucher.CustomerIDFromString(cust.CustomerID().String())
		if err != nil {
			return err
		}
		count, err := uc.voucherRepo.CountIssuedToCustomerOnDay(ctx, customerID, day)
		if err != nil {
			return err
		}
		if count >= uc.policy.PerCustomerPerDay {
			return ErrDailyLimitExceeded.WithContext(
				"dimension", "customer",
				"count", count,
				"limit", uc.policy.PerCustomerPerDay,
			)
		}
	}

	if ipAddress != "" && uc.policy.PerIPPerDay > 0 {
		count, err := uc.voucherRepo.CountIssuedToIPOnDay(ctx, ipAddress, day)
		if err != nil {
			return err
		}
		if count >= uc.policy.PerIPPerDay {
			return ErrDailyLimitExceeded.WithContext(
				"dimension", "ip",
				"count", count,
				"limit", uc.policy.PerIPPerDay,
			)
		}
	}

	return nil
}

// buildCandidatePool 建抽獎池：啟用中的獎項，扣掉已達每日上限的
func (uc *ExecuteSpinUseCase) buildCandidatePool(
	ctx shared.TransactionContext,
	now time.Time,
) ([]*prize.Prize, error) {
	active, err := uc.prizeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	day := startOfDay(now)
	pool := make([]*prize.Prize, 0, len(active))
	for _, p := range active {
		issuedToday := 0
		// 每日上限需要當日發出計數；不設上限的獎項不必查
		if p.DailyLimit() != nil {
			prizeID, err := voucher.PrizeIDFromString(p.PrizeID().String())
			if err != nil {
				return nil, err
			}
			issuedToday, err = uc.voucherRepo.CountIssuedForPrizeOnDay(ctx, prizeID, day)
			if err != nil {
				return nil, err
			}
		}
		if p.IsDrawEligible(issuedToday) {
			pool = append(pool, p)
		}
	}

	if len(pool) == 0 {
		return nil, prize.ErrNoPrizesAvailable
	}
	return pool, nil
}

// generateUniqueCode 產生已查重的 voucher code
//
// 唯一性是硬約束：產生 → 查重 → 碰撞就重新產生，
// 連續碰撞超過上限視為儲存層異常（Transient）
func (uc *ExecuteSpinUseCase) generateUniqueCode(ctx shared.TransactionContext) (voucher.Code, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := voucher.GenerateCode()
		if err != nil {
			return voucher.Code{}, err
		}
		exists, err := uc.voucherRepo.ExistsByCode(ctx, code)
		if err != nil {
			return voucher.Code{}, err
		}
		if !exists {
			return code, nil
		}
	}
	return voucher.Code{}, ErrCodeGenerationExhausted.WithContext(
		"attempts", maxCodeAttempts,
	)
}

// buildVoucher 組裝 voucher 聚合（跨 context 的 ID 轉換）
func (uc *ExecuteSpinUseCase) buildVoucher(
	cust *customer.Customer,
	sess *session.Session,
	won *prize.Prize,
	code voucher.Code,
	ipAddress string,
) (*voucher.Voucher, error) {
	customerID, err := voucher.CustomerIDFromString(cust.CustomerID().String())
	if err != nil {
		return nil, err
	}
	branchID, err := voucher.BranchIDFromString(sess.BranchID().String())
	if err != nil {
		return nil, err
	}
	prizeID, err := voucher.PrizeIDFromString(won.PrizeID().String())
	if err != nil {
		return nil, err
	}
	return voucher.NewVoucher(customerID, branchID, prizeID, code, ipAddress)
}

// publishEvents 發布聚合累積的領域事件（提交後，best-effort）
func (uc *ExecuteSpinUseCase) publishEvents(v *voucher.Voucher) {
	if uc.publisher == nil || v == nil {
		return
	}
	// 發布失敗不回傳：交易已提交，事件消費者（報表、提醒）容忍缺漏
	_ = uc.publisher.PublishBatch(v.PullEvents())
}

// startOfDay 返回該時刻所在自然日的零點（沿用呼叫端時區）
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
