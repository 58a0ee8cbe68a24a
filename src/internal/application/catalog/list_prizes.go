package catalog

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/prize"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// ListPrizes Use Case
// ===========================

// ListPrizesQuery 獎項列表查詢
type ListPrizesQuery struct {
	// ActiveOnly 為 true 時只返回啟用中的獎項
	ActiveOnly bool
}

// ListPrizesUseCase 獎項列表 Use Case（目錄管理）
type ListPrizesUseCase struct {
	prizeRepo prize.PrizeRepository
}

// NewListPrizesUseCase 創建 Use Case 實例
func NewListPrizesUseCase(prizeRepo prize.PrizeRepository) *ListPrizesUseCase {
	return &ListPrizesUseCase{prizeRepo: prizeRepo}
}

// Execute 執行查詢（獨立讀取，不參與事務）
func (uc *ListPrizesUseCase) Execute(query ListPrizesQuery) ([]*PrizeView, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
func (uc *ListPrizesUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query ListPrizesQuery,
) ([]*PrizeView, error) {
	var (
		prizes []*prize.Prize
		err    error
	)
	if query.ActiveOnly {
		prizes, err = uc.prizeRepo.FindActive(ctx)
	} else {
		prizes, err = uc.prizeRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	views := make([]*PrizeView, 0, len(prizes))
	for _, p := range prizes {
		views = append(views, toPrizeView(p))
	}
	return views, nil
}
