package catalog

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// UpdatePrize Use Case
// ===========================

// UpdatePrizeCommand 更新獎項配置的命令
//
// IsActive 為 nil 時維持現狀；其餘欄位每次更新都整組覆寫
// （與 NewPrize 同一套驗證規則）
type UpdatePrizeCommand struct {
	PrizeID     string
	Name        string
	Weight      int
	DailyLimit  *int
	RetailValue string
	IsActive    *bool
}

// UpdatePrizeUseCase 更新獎項 Use Case（目錄管理）
//
// 配置變更只影響後續抽獎：已發出的 voucher 不受權重、
// 上限或停用狀態變動的影響
type UpdatePrizeUseCase struct {
	prizeRepo prize.PrizeRepository
	txManager shared.TransactionManager
}

// NewUpdatePrizeUseCase 創建 Use Case 實例
func NewUpdatePrizeUseCase(
	prizeRepo prize.PrizeRepository,
	txManager shared.TransactionManager,
) *UpdatePrizeUseCase {
	return &UpdatePrizeUseCase{
		prizeRepo: prizeRepo,
		txManager: txManager,
	}
}

// Execute 執行更新
//
// 錯誤處理：
// - prize.ErrInvalidPrizeID: ID 格式無效
// - prize.ErrPrizeNotFound: 獎項不存在
// - prize.ErrInvalidPrizeName / ErrInvalidWeight / ErrInvalidDailyLimit: 配置驗證失敗
func (uc *UpdatePrizeUseCase) Execute(cmd UpdatePrizeCommand) (*PrizeView, error) {
	prizeID, err := prize.PrizeIDFromString(cmd.PrizeID)
	if err != nil {
		return nil, err
	}

	retailValue, err := parseRetailValue(cmd.RetailValue)
	if err != nil {
		return nil, err
	}

	var updated *prize.Prize

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		p, err := uc.prizeRepo.FindByID(ctx, prizeID)
		if err != nil {
			return err
		}

		if err := p.UpdateConfiguration(cmd.Name, cmd.Weight, cmd.DailyLimit, retailValue); err != nil {
			return err
		}

		if cmd.IsActive != nil {
			if *cmd.IsActive {
				p.Activate()
			} else {
				p.Deactivate()
			}
		}

		if err := uc.prizeRepo.Save(ctx, p); err != nil {
			return err
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPrizeView(updated), nil
}
