package voucher

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Voucher Domain 錯誤定義
// ===========================

// Voucher Domain 錯誤代碼常量
const (
	ErrCodeVoucherNotFound      shared.ErrorCode = "VOUCHER_NOT_FOUND"
	ErrCodeAlreadyRedeemed      shared.ErrorCode = "VOUCHER_ALREADY_REDEEMED"
	ErrCodeVoucherExpired       shared.ErrorCode = "VOUCHER_EXPIRED"
	ErrCodeDuplicateVoucherCode shared.ErrorCode = "DUPLICATE_VOUCHER_CODE"
	ErrCodeInvalidVoucherCode   shared.ErrorCode = "INVALID_VOUCHER_CODE"
	ErrCodeInvalidVoucherID     shared.ErrorCode = "INVALID_VOUCHER_ID"
	ErrCodeInvalidCustomerID    shared.ErrorCode = "INVALID_CUSTOMER_ID"
	ErrCodeInvalidBranchID      shared.ErrorCode = "INVALID_BRANCH_ID"
	ErrCodeInvalidPrizeIDRef    shared.ErrorCode = "INVALID_PRIZE_ID"
	ErrCodeCodeRandomness       shared.ErrorCode = "CODE_RANDOM_SOURCE_FAILURE"
)

var (
	// ErrVoucherNotFound voucher 不存在
	//
	// 同時涵蓋模糊的後綴比對：
	// 後綴比對到兩張以上 voucher 時也返回 NotFound（寧缺勿錯）
	ErrVoucherNotFound = &shared.DomainError{
		Code:    ErrCodeVoucherNotFound,
		Kind:    shared.ErrorKindNotFound,
		Message: "voucher 不存在",
	}

	// ErrAlreadyRedeemed voucher 已被核銷
	//
	// 與 ErrVoucherNotFound 區分：
	// 店員可看到「已核銷過」而非「查無此券」
	ErrAlreadyRedeemed = &shared.DomainError{
		Code:    ErrCodeAlreadyRedeemed,
		Kind:    shared.ErrorKindConflict,
		Message: "voucher 已被核銷",
	}

	// ErrVoucherExpired voucher 已過期
	//
	// 觸發條件：發出超過 7 天且從未核銷
	ErrVoucherExpired = &shared.DomainError{
		Code:    ErrCodeVoucherExpired,
		Kind:    shared.ErrorKindPolicy,
		Message: "voucher 已過期（發出超過 7 天）",
	}

	// ErrDuplicateVoucherCode voucher code 碰撞
	//
	// 觸發條件：隨機後綴與既有 code 重複（唯一性是硬約束，
	// 協調者會重新產生並重試；連續碰撞超過重試上限才對外失敗）
	ErrDuplicateVoucherCode = &shared.DomainError{
		Code:    ErrCodeDuplicateVoucherCode,
		Kind:    shared.ErrorKindConflict,
		Message: "voucher code 已存在",
	}

	// ErrInvalidVoucherCode voucher code 格式無效
	ErrInvalidVoucherCode = &shared.DomainError{
		Code:    ErrCodeInvalidVoucherCode,
		Kind:    shared.ErrorKindValidation,
		Message: "voucher code 格式無效",
	}

	// ErrInvalidVoucherID voucher ID 格式無效
	ErrInvalidVoucherID = &shared.DomainError{
		Code:    ErrCodeInvalidVoucherID,
		Kind:    shared.ErrorKindValidation,
		Message: "voucher ID 格式無效",
	}

	// ErrInvalidCustomerID 顧客 ID 格式無效
	ErrInvalidCustomerID = &shared.DomainError{
		Code:    ErrCodeInvalidCustomerID,
		Kind:    shared.ErrorKindValidation,
		Message: "顧客 ID 格式無效",
	}

	// ErrInvalidBranchID 分店 ID 格式無效
	ErrInvalidBranchID = &shared.DomainError{
		Code:    ErrCodeInvalidBranchID,
		Kind:    shared.ErrorKindValidation,
		Message: "分店 ID 格式無效",
	}

	// ErrInvalidPrizeIDRef 獎項 ID 格式無效
	ErrInvalidPrizeIDRef = &shared.DomainError{
		Code:    ErrCodeInvalidPrizeIDRef,
		Kind:    shared.ErrorKindValidation,
		Message: "獎項 ID 格式無效",
	}

	// ErrRandomSourceFailure 亂數來源失敗
	ErrRandomSourceFailure = &shared.DomainError{
		Code:    ErrCodeCodeRandomness,
		Kind:    shared.ErrorKindTransient,
		Message: "亂數來源暫時不可用",
	}
)
