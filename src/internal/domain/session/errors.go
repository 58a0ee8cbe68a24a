package session

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Session Domain 錯誤定義
// ===========================

// Session Domain 錯誤代碼常量
const (
	ErrCodeTokenNotFound    shared.ErrorCode = "TOKEN_NOT_FOUND"
	ErrCodeTokenExpired     shared.ErrorCode = "TOKEN_EXPIRED"
	ErrCodeTokenAlreadyUsed shared.ErrorCode = "TOKEN_ALREADY_USED"
	ErrCodeInvalidToken     shared.ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidMode      shared.ErrorCode = "INVALID_SESSION_MODE"
	ErrCodeInvalidSessionID shared.ErrorCode = "INVALID_SESSION_ID"
	ErrCodeInvalidBranchID  shared.ErrorCode = "INVALID_BRANCH_ID"
	ErrCodeTokenRandomness  shared.ErrorCode = "TOKEN_RANDOM_SOURCE_FAILURE"
)

var (
	// ErrTokenNotFound token 不存在
	ErrTokenNotFound = &shared.DomainError{
		Code:    ErrCodeTokenNotFound,
		Kind:    shared.ErrorKindNotFound,
		Message: "token 不存在",
	}

	// ErrTokenExpired token 已過期
	//
	// 觸發條件：
	// - Single: 產生超過 10 分鐘
	// - Multi: 產生超過 7 天
	ErrTokenExpired = &shared.DomainError{
		Code:    ErrCodeTokenExpired,
		Kind:    shared.ErrorKindPolicy,
		Message: "token 已過期",
	}

	// ErrTokenAlreadyUsed token 已被使用（僅 Single 模式）
	//
	// 與 ErrTokenNotFound 區分：
	// 呼叫端可顯示「這個抽獎機會已被領取」而非「連結無效」
	ErrTokenAlreadyUsed = &shared.DomainError{
		Code:    ErrCodeTokenAlreadyUsed,
		Kind:    shared.ErrorKindConflict,
		Message: "token 已被使用",
	}

	// ErrInvalidToken token 格式無效
	ErrInvalidToken = &shared.DomainError{
		Code:    ErrCodeInvalidToken,
		Kind:    shared.ErrorKindValidation,
		Message: "token 格式無效",
	}

	// ErrInvalidMode session 模式無效
	//
	// 觸發條件：不是 "single" 或 "multi"
	ErrInvalidMode = &shared.DomainError{
		Code:    ErrCodeInvalidMode,
		Kind:    shared.ErrorKindValidation,
		Message: "session 模式無效（必須是 single 或 multi）",
	}

	// ErrInvalidSessionID session ID 格式無效
	ErrInvalidSessionID = &shared.DomainError{
		Code:    ErrCodeInvalidSessionID,
		Kind:    shared.ErrorKindValidation,
		Message: "session ID 格式無效",
	}

	// ErrInvalidBranchID 分店 ID 格式無效
	ErrInvalidBranchID = &shared.DomainError{
		Code:    ErrCodeInvalidBranchID,
		Kind:    shared.ErrorKindValidation,
		Message: "分店 ID 格式無效",
	}

	// ErrRandomSourceFailure 亂數來源失敗
	//
	// 觸發條件：crypto/rand 讀取失敗（作業系統層級問題）
	ErrRandomSourceFailure = &shared.DomainError{
		Code:    ErrCodeTokenRandomness,
		Kind:    shared.ErrorKindTransient,
		Message: "亂數來源暫時不可用",
	}
)
