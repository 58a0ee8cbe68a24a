package prize

import (
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Prize Domain 錯誤定義
// ===========================

// Prize Domain 錯誤代碼常量
const (
	ErrCodePrizeNotFound        shared.ErrorCode = "PRIZE_NOT_FOUND"
	ErrCodeInvalidPrizeID       shared.ErrorCode = "INVALID_PRIZE_ID"
	ErrCodeInvalidPrizeName     shared.ErrorCode = "INVALID_PRIZE_NAME"
	ErrCodeInvalidWeight        shared.ErrorCode = "INVALID_WEIGHT"
	ErrCodeInvalidDailyLimit    shared.ErrorCode = "INVALID_DAILY_LIMIT"
	ErrCodeInvalidRetailValue   shared.ErrorCode = "INVALID_RETAIL_VALUE"
	ErrCodeNoPrizesAvailable    shared.ErrorCode = "NO_PRIZES_AVAILABLE"
	ErrCodeInvalidConfiguration shared.ErrorCode = "INVALID_DRAW_CONFIGURATION"
	ErrCodeRandomSourceFailure  shared.ErrorCode = "RANDOM_SOURCE_FAILURE"
)

var (
	// ErrPrizeNotFound 獎項不存在
	ErrPrizeNotFound = &shared.DomainError{
		Code:    ErrCodePrizeNotFound,
		Kind:    shared.ErrorKindNotFound,
		Message: "獎項不存在",
	}

	// ErrInvalidPrizeID 獎項 ID 格式無效
	ErrInvalidPrizeID = &shared.DomainError{
		Code:    ErrCodeInvalidPrizeID,
		Kind:    shared.ErrorKindValidation,
		Message: "獎項 ID 格式無效",
	}

	// ErrInvalidPrizeName 獎項名稱無效
	//
	// 觸發條件：名稱為空字串
	ErrInvalidPrizeName = &shared.DomainError{
		Code:    ErrCodeInvalidPrizeName,
		Kind:    shared.ErrorKindValidation,
		Message: "獎項名稱不能為空",
	}

	// ErrInvalidWeight 權重無效
	//
	// 觸發條件：權重 <= 0（權重必須是正整數）
	ErrInvalidWeight = &shared.DomainError{
		Code:    ErrCodeInvalidWeight,
		Kind:    shared.ErrorKindValidation,
		Message: "權重必須是正整數",
	}

	// ErrInvalidDailyLimit 每日上限無效
	//
	// 觸發條件：設定了每日上限但值 <= 0
	ErrInvalidDailyLimit = &shared.DomainError{
		Code:    ErrCodeInvalidDailyLimit,
		Kind:    shared.ErrorKindValidation,
		Message: "每日上限必須是正整數（不設上限請留空）",
	}

	// ErrInvalidRetailValue 參考零售價無效
	//
	// 觸發條件：無法解析為十進位數字，或為負值
	ErrInvalidRetailValue = &shared.DomainError{
		Code:    ErrCodeInvalidRetailValue,
		Kind:    shared.ErrorKindValidation,
		Message: "參考零售價必須是非負的十進位數字",
	}

	// ErrNoPrizesAvailable 沒有可抽的獎項
	//
	// 觸發條件：候選池為空（沒有啟用中的獎項，或全部已達每日上限）
	ErrNoPrizesAvailable = &shared.DomainError{
		Code:    ErrCodeNoPrizesAvailable,
		Kind:    shared.ErrorKindPolicy,
		Message: "目前沒有可抽的獎項",
	}

	// ErrInvalidConfiguration 抽獎配置無效
	//
	// 觸發條件：候選池非空但所有權重加總 <= 0
	// 與 ErrNoPrizesAvailable 區分：這是獎項配置錯誤，需管理員修正
	ErrInvalidConfiguration = &shared.DomainError{
		Code:    ErrCodeInvalidConfiguration,
		Kind:    shared.ErrorKindPolicy,
		Message: "抽獎配置無效（所有候選獎項的權重加總為零）",
	}

	// ErrRandomSourceFailure 亂數來源失敗
	//
	// 觸發條件：crypto/rand 讀取失敗（作業系統層級問題）
	ErrRandomSourceFailure = &shared.DomainError{
		Code:    ErrCodeRandomSourceFailure,
		Kind:    shared.ErrorKindTransient,
		Message: "亂數來源暫時不可用",
	}
)
