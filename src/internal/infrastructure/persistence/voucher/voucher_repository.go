package voucher

import (
	"errors"
	"strings"
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"github.com/Xahmuh/reward_engine/src/internal/domain/voucher"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// VoucherRepositoryImpl
// ===========================

// VoucherRepositoryImpl voucher 倉儲實現（GORM）
//
// 設計原則：
// - 實作 voucher.VoucherRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 條件式更新（CAS）實作恰好一次核銷的最終保證
type VoucherRepositoryImpl struct {
	db *gorm.DB
}

// NewVoucherRepository 創建新的 voucher 倉儲實例
func NewVoucherRepository(db *gorm.DB) voucher.VoucherRepository {
	return &VoucherRepositoryImpl{db: db}
}

// Save 保存新 voucher
//
// 錯誤處理：
// - code UNIQUE 約束違反 → ErrDuplicateVoucherCode（呼叫端換碼重試）
// - 其他資料庫錯誤 → 原始錯誤
func (r *VoucherRepositoryImpl) Save(ctx shared.TransactionContext, v *voucher.Voucher) error {
	db := r.getDB(ctx)

	gormModel := toGORM(v)

	result := db.Create(gormModel)
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return voucher.ErrDuplicateVoucherCode.WithContext(
				"code", v.Code().String(),
			)
		}
		return result.Error
	}

	return nil
}

// FindByID 根據 voucher ID 查找
func (r *VoucherRepositoryImpl) FindByID(ctx shared.TransactionContext, id voucher.VoucherID) (*voucher.Voucher, error) {
	db := r.getDB(ctx)

	var gormModel VoucherGORM

	result := db.Where("voucher_id = ?", id.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, voucher.ErrVoucherNotFound.WithContext(
				"voucher_id", id.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// FindByCode 根據 code 查找 voucher（容忍部分掃描/亂碼輸入）
//
// 實作邏輯：
// 1. 輸入正規化（去空白、轉大寫）後先做精確比對
//    （code 一律以大寫存入，正規化後等值比對即不分大小寫）
// 2. 精確比對落空時做後綴比對：從輸入萃取完整 6 位後綴，
//    以 LIKE '%suffix' 查找；片段過短或比對到多張都返回查無
func (r *VoucherRepositoryImpl) FindByCode(ctx shared.TransactionContext, rawCode string) (*voucher.Voucher, error) {
	db := r.getDB(ctx)

	normalized := voucher.NormalizeCodeInput(rawCode)

	// 1. 精確比對
	if code, err := voucher.CodeFromString(normalized); err == nil {
		var gormModel VoucherGORM
		result := db.Where("code = ?", code.String()).First(&gormModel)
		if result.Error == nil {
			return gormModel.toDomain()
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
		// 精確比對落空，繼續走後綴比對
	}

	// 2. 後綴比對
	suffix := extractSuffix(normalized)
	if suffix == "" {
		return nil, voucher.ErrVoucherNotFound.WithContext("code", rawCode)
	}

	var gormModels []VoucherGORM
	result := db.Where("code LIKE ?", "%"+suffix).Limit(2).Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	// 寧缺勿錯：比對到兩張以上視為查無
	if len(gormModels) != 1 {
		return nil, voucher.ErrVoucherNotFound.WithContext("code", rawCode)
	}

	return gormModels[0].toDomain()
}

// ExistsByCode 檢查 code 是否已存在（發 code 前查重用）
func (r *VoucherRepositoryImpl) ExistsByCode(ctx shared.TransactionContext, code voucher.Code) (bool, error) {
	db := r.getDB(ctx)

	var count int64

	result := db.Model(&VoucherGORM{}).Where("code = ?", code.String()).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Redeem 條件式核銷（compare-and-set）
//
// 實作邏輯：
// 1. 單一條件式更新：
//    UPDATE ... SET redeemed_at = ?, redeemed_branch_id = ?
//    WHERE voucher_id = ? AND redeemed_at IS NULL
// 2. RowsAffected == 0 表示這個請求輸掉競態（或 voucher 不存在），
//    返回 ErrAlreadyRedeemed
func (r *VoucherRepositoryImpl) Redeem(
	ctx shared.TransactionContext,
	id voucher.VoucherID,
	redeemingBranchID voucher.BranchID,
	at time.Time,
) error {
	db := r.getDB(ctx)

	result := db.Model(&VoucherGORM{}).
		Where("voucher_id = ? AND redeemed_at IS NULL", id.String()).
		Updates(map[string]interface{}{
			"redeemed_at":        at,
			"redeemed_branch_id": redeemingBranchID.String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return voucher.ErrAlreadyRedeemed.WithContext("voucher_id", id.String())
	}

	return nil
}

// CountIssuedToCustomerOnDay 計算顧客在指定日期發出的 voucher 數
func (r *VoucherRepositoryImpl) CountIssuedToCustomerOnDay(
	ctx shared.TransactionContext,
	customerID voucher.CustomerID,
	day time.Time,
) (int, error) {
	return r.countOnDay(ctx, "customer_id = ?", customerID.String(), day)
}

// CountIssuedToIPOnDay 計算 IP 在指定日期發出的 voucher 數
func (r *VoucherRepositoryImpl) CountIssuedToIPOnDay(
	ctx shared.TransactionContext,
	ipAddress string,
	day time.Time,
) (int, error) {
	return r.countOnDay(ctx, "ip_address = ?", ipAddress, day)
}

// CountIssuedForPrizeOnDay 計算獎項在指定日期發出的 voucher 數
func (r *VoucherRepositoryImpl) CountIssuedForPrizeOnDay(
	ctx shared.TransactionContext,
	prizeID voucher.PrizeID,
	day time.Time,
) (int, error) {
	return r.countOnDay(ctx, "prize_id = ?", prizeID.String(), day)
}

// List 查詢 voucher 列表（報表等只讀消費者用，按發出時間降冪）
func (r *VoucherRepositoryImpl) List(ctx shared.TransactionContext, filter voucher.ListFilter) ([]*voucher.Voucher, error) {
	db := r.getDB(ctx)

	query := db.Model(&VoucherGORM{})
	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", filter.BranchID.String())
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", filter.CustomerID.String())
	}
	if filter.IssuedFrom != nil {
		query = query.Where("created_at >= ?", *filter.IssuedFrom)
	}
	if filter.IssuedTo != nil {
		query = query.Where("created_at < ?", *filter.IssuedTo)
	}

	var gormModels []VoucherGORM
	result := query.Order("created_at DESC").Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	vouchers := make([]*voucher.Voucher, 0, len(gormModels))
	for i := range gormModels {
		v, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

// countOnDay 以 [day, day+24h) 半開區間計數
//
// day 由呼叫端對齊到當日零點（時區由呼叫端決定）
func (r *VoucherRepositoryImpl) countOnDay(
	ctx shared.TransactionContext,
	condition string,
	value interface{},
	day time.Time,
) (int, error) {
	db := r.getDB(ctx)

	var count int64

	result := db.Model(&VoucherGORM{}).
		Where(condition, value).
		Where("created_at >= ? AND created_at < ?", day, day.Add(24*time.Hour)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

// getDB 獲取資料庫實例
//
// 邏輯：
// - 如果 ctx 是 gormTransactionContext，返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
func (r *VoucherRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

// ===========================
// Helper Functions
// ===========================

// extractSuffix 從正規化的輸入萃取完整 6 位後綴
//
// 濾掉非 code 字元（掃描雜訊、連字號）後取最後 6 個字元；
// 剩餘字元不足 6 位時返回空字串（片段過短，視為查無）
func extractSuffix(normalized string) string {
	var cleaned strings.Builder
	for _, ch := range normalized {
		if (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			cleaned.WriteRune(ch)
		}
	}

	s := cleaned.String()
	if len(s) < voucher.CodeSuffixLength {
		return ""
	}
	return s[len(s)-voucher.CodeSuffixLength:]
}

// isUniqueConstraintError 檢查是否為唯一約束錯誤
//
// 支援的資料庫：
// - SQLite: "UNIQUE constraint failed"
// - MySQL: "Duplicate entry"
// - PostgreSQL: "duplicate key value" / "violates unique constraint"
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "UNIQUE constraint failed") ||
		strings.Contains(errMsg, "Duplicate entry") ||
		strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "violates unique constraint")
}
