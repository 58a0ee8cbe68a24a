package catalog

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// DeletePrize Use Case
// ===========================

// DeletePrizeCommand 刪除獎項的命令
type DeletePrizeCommand struct {
	PrizeID string
}

// DeletePrizeUseCase 刪除獎項 Use Case（目錄管理）
//
// 已發出的 voucher 保留 prize_id 參照，刪除不會級聯；
// 一般情況建議用停用（Deactivate）讓獎項退出抽獎池
type DeletePrizeUseCase struct {
	prizeRepo prize.PrizeRepository
	txManager shared.TransactionManager
}

// NewDeletePrizeUseCase 創建 Use Case 實例
func NewDeletePrizeUseCase(
	prizeRepo prize.PrizeRepository,
	txManager shared.TransactionManager,
) *DeletePrizeUseCase {
	return &DeletePrizeUseCase{
		prizeRepo: prizeRepo,
		txManager: txManager,
	}
}

// Execute 執行刪除
//
// 錯誤處理：
// - prize.ErrInvalidPrizeID: ID 格式無效
// - prize.ErrPrizeNotFound: 獎項不存在
func (uc *DeletePrizeUseCase) Execute(cmd DeletePrizeCommand) error {
	prizeID, err := prize.PrizeIDFromString(cmd.PrizeID)
	if err != nil {
		return err
	}

	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.prizeRepo.Delete(ctx, prizeID)
	})
}
