package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// CreatePrize Use Case
// ===========================

// CreatePrizeCommand 創建獎項的命令
type CreatePrizeCommand struct {
	Name        string
	Weight      int
	DailyLimit  *int   // nil = 不設上限
	RetailValue string // decimal 字串，空字串視為 0
}

// CreatePrizeUseCase 創建獎項 Use Case（目錄管理）
type CreatePrizeUseCase struct {
	prizeRepo prize.PrizeRepository
	txManager shared.TransactionManager
}

// NewCreatePrizeUseCase 創建 Use Case 實例
func NewCreatePrizeUseCase(
	prizeRepo prize.PrizeRepository,
	txManager shared.TransactionManager,
) *CreatePrizeUseCase {
	return &CreatePrizeUseCase{
		prizeRepo: prizeRepo,
		txManager: txManager,
	}
}

// Execute 執行創建
//
// 錯誤處理：
// - prize.ErrInvalidPrizeName / ErrInvalidWeight / ErrInvalidDailyLimit: 配置驗證失敗
func (uc *CreatePrizeUseCase) Execute(cmd CreatePrizeCommand) (*PrizeView, error) {
	retailValue, err := parseRetailValue(cmd.RetailValue)
	if err != nil {
		return nil, err
	}

	p, err := prize.NewPrize(cmd.Name, cmd.Weight, cmd.DailyLimit, retailValue)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.prizeRepo.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	return toPrizeView(p), nil
}

// parseRetailValue 解析參考零售價（報表用途，空值視為 0）
func parseRetailValue(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, prize.ErrInvalidRetailValue.WithContext("retail_value", raw)
	}
	if value.IsNegative() {
		return decimal.Zero, prize.ErrInvalidRetailValue.WithContext("retail_value", raw)
	}
	return value, nil
}
