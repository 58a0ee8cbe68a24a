package branch

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Branch Domain 錯誤定義
// ===========================

// Branch Domain 錯誤代碼常量
const (
	ErrCodeBranchNotFound  shared.ErrorCode = "BRANCH_NOT_FOUND"
	ErrCodeBranchSuspended shared.ErrorCode = "BRANCH_SUSPENDED"
	ErrCodeInvalidBranchID shared.ErrorCode = "INVALID_BRANCH_ID"
)

var (
	// ErrBranchNotFound 分店不存在
	//
	// 觸發條件：
	// - 產生 session 時指定了未知的分店 ID
	ErrBranchNotFound = &shared.DomainError{
		Code:    ErrCodeBranchNotFound,
		Kind:    shared.ErrorKindNotFound,
		Message: "分店不存在",
	}

	// ErrBranchSuspended 分店已停用互動活動
	//
	// 觸發條件：
	// - 對 engagementEnabled = false 的分店產生 session 或接受 spin
	ErrBranchSuspended = &shared.DomainError{
		Code:    ErrCodeBranchSuspended,
		Kind:    shared.ErrorKindPolicy,
		Message: "分店已停用互動活動",
	}

	// ErrInvalidBranchID 分店 ID 格式無效
	ErrInvalidBranchID = &shared.DomainError{
		Code:    ErrCodeInvalidBranchID,
		Kind:    shared.ErrorKindValidation,
		Message: "分店 ID 格式無效",
	}
)
