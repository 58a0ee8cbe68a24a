package customer

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Customer Domain 錯誤定義
// ===========================

// Customer Domain 錯誤代碼常量
const (
	ErrCodeInvalidPhoneNumberFormat shared.ErrorCode = "INVALID_PHONE_NUMBER_FORMAT"
	ErrCodeInvalidEmailFormat       shared.ErrorCode = "INVALID_EMAIL_FORMAT"
	ErrCodeCustomerNotFound         shared.ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeInvalidCustomerID        shared.ErrorCode = "INVALID_CUSTOMER_ID"
)

var (
	// ErrInvalidPhoneNumberFormat 手機號碼格式無效
	//
	// 觸發條件：
	// - 不是10位數字
	// - 不是以 "09" 開頭
	// - 包含非數字字符
	ErrInvalidPhoneNumberFormat = &shared.DomainError{
		Code:    ErrCodeInvalidPhoneNumberFormat,
		Kind:    shared.ErrorKindValidation,
		Message: "手機號碼格式無效（必須是10位數字，且以09開頭）",
	}

	// ErrInvalidEmailFormat Email 格式無效
	ErrInvalidEmailFormat = &shared.DomainError{
		Code:    ErrCodeInvalidEmailFormat,
		Kind:    shared.ErrorKindValidation,
		Message: "Email 格式無效",
	}

	// ErrCustomerNotFound 顧客不存在
	ErrCustomerNotFound = &shared.DomainError{
		Code:    ErrCodeCustomerNotFound,
		Kind:    shared.ErrorKindNotFound,
		Message: "顧客不存在",
	}

	// ErrInvalidCustomerID 顧客 ID 格式無效
	ErrInvalidCustomerID = &shared.DomainError{
		Code:    ErrCodeInvalidCustomerID,
		Kind:    shared.ErrorKindValidation,
		Message: "顧客 ID 格式無效",
	}
)
