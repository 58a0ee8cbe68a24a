package session

import (
	"time"

	"github.com/Xahmuh/reward_engine/src/internal/domain/branch"
	"github.com/Xahmuh/reward_engine/src/internal/domain/session"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// GenerateSession Use Case
// ===========================

// GenerateSessionCommand 產生 claim session 的命令（Input DTO）
type GenerateSessionCommand struct {
	BranchID string // 綁定的分店 ID (UUID)
	Mode     string // "single" 或 "multi"
}

// GenerateSessionResult 產生 claim session 的結果（Output DTO）
//
// Token 即是顧客連結的參數；字串本身不攜帶任何語義
type GenerateSessionResult struct {
	Token     string
	BranchID  string
	Mode      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// GenerateSessionUseCase 產生 claim session Use Case
//
// 業務規則：
// 1. 分店必須存在（ErrBranchNotFound）且未停用（ErrBranchSuspended）
// 2. 效期依模式：Single 10 分鐘 / Multi 7 天
// 3. token 由 crypto/rand 產生，碰撞機率可忽略
type GenerateSessionUseCase struct {
	sessionRepo session.SessionRepository
	directory   branch.Directory
	txManager   shared.TransactionManager
}

// NewGenerateSessionUseCase 創建 Use Case 實例
func NewGenerateSessionUseCase(
	sessionRepo session.SessionRepository,
	directory branch.Directory,
	txManager shared.TransactionManager,
) *GenerateSessionUseCase {
	return &GenerateSessionUseCase{
		sessionRepo: sessionRepo,
		directory:   directory,
		txManager:   txManager,
	}
}

// Execute 執行產生 session
//
// 執行流程：
// 1. 驗證輸入並轉換為 Value Object
// 2. 確認分店存在且未停用（讀操作，事務外）
// 3. 創建 Session 聚合（產生 token 與效期）
// 4. 在事務中保存
func (uc *GenerateSessionUseCase) Execute(cmd GenerateSessionCommand) (*GenerateSessionResult, error) {
	// 1. 驗證輸入
	mode, err := session.ModeFromString(cmd.Mode)
	if err != nil {
		return nil, err
	}

	directoryBranchID, err := branch.BranchIDFromString(cmd.BranchID)
	if err != nil {
		return nil, err
	}

	sessionBranchID, err := session.BranchIDFromString(cmd.BranchID)
	if err != nil {
		return nil, err
	}

	// 2. 分店必須存在且未停用
	br, err := uc.directory.FindByID(nil, directoryBranchID)
	if err != nil {
		return nil, err
	}
	if err := br.EnsureActive(); err != nil {
		return nil, err
	}

	// 3. 創建 Session 聚合
	sess, err := session.NewSession(sessionBranchID, mode)
	if err != nil {
		return nil, err
	}

	// 4. 在事務中保存
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.sessionRepo.Save(ctx, sess)
	})
	if err != nil {
		return nil, err
	}

	return &GenerateSessionResult{
		Token:     sess.Token().String(),
		BranchID:  sess.BranchID().String(),
		Mode:      sess.Mode().String(),
		CreatedAt: sess.CreatedAt(),
		ExpiresAt: sess.ExpiresAt(),
	}, nil
}
