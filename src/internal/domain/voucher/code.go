package voucher

import (
	"crypto/rand"
	"strings"
)

// ===========================
// Code Value Object
// ===========================

// Voucher code 格式：固定前綴 + 固定長度隨機後綴
//
// 例：VOUCH-AB12CD
const (
	// CodePrefix 固定字面前綴（含分隔符）
	CodePrefix = "VOUCH-"

	// CodeSuffixLength 隨機後綴長度
	CodeSuffixLength = 6
)

// codeCharset 後綴字元集（大寫英數字）
//
// 36^6 ≈ 21 億組合：單店規模下碰撞罕見，
// 但唯一性仍是硬約束：產生後必須查重，碰撞就重新產生
const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Code voucher code 值對象
//
// 業務規則：
// 1. 人可輸入：店員可以手動鍵入（掃描失敗時的後備）
// 2. 查找不分大小寫：儲存一律規範化為大寫
// 3. 格式固定：前綴 + 6 位大寫英數字後綴
type Code struct {
	value string
}

// GenerateCode 產生新的 voucher code（前綴 + 密碼學安全隨機後綴）
//
// 注意：這裡只保證格式與亂數品質，不保證全域唯一。
// 唯一性由協調者查重 + 資料庫 UNIQUE 約束雙重保證
func GenerateCode() (Code, error) {
	buf := make([]byte, CodeSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return Code{}, ErrRandomSourceFailure.Wrap(err)
	}

	suffix := make([]byte, CodeSuffixLength)
	for i, b := range buf {
		// 以 mod 取字元：36 不整除 256 造成的偏差約 0.5%，
		// 對 code 唯一性與不可猜測性沒有實質影響（token 才是授權憑證）
		suffix[i] = codeCharset[int(b)%len(codeCharset)]
	}

	return Code{value: CodePrefix + string(suffix)}, nil
}

// CodeFromString 從字串解析 voucher code（Checked Constructor）
//
// 規範化：去除前後空白、轉大寫（查找不分大小寫）
func CodeFromString(value string) (Code, error) {
	normalized := NormalizeCodeInput(value)

	if len(normalized) != len(CodePrefix)+CodeSuffixLength {
		return Code{}, ErrInvalidVoucherCode.WithContext(
			"input", value,
			"reason", "unexpected length",
		)
	}
	if !strings.HasPrefix(normalized, CodePrefix) {
		return Code{}, ErrInvalidVoucherCode.WithContext(
			"input", value,
			"reason", "missing prefix",
		)
	}
	for _, ch := range normalized[len(CodePrefix):] {
		if !strings.ContainsRune(codeCharset, ch) {
			return Code{}, ErrInvalidVoucherCode.WithContext(
				"input", value,
				"reason", "suffix contains invalid character",
			)
		}
	}

	return Code{value: normalized}, nil
}

// NormalizeCodeInput 規範化使用者輸入（去空白、轉大寫）
//
// 供查找使用：即使輸入不是完整合法的 code
// （部分掃描、缺前綴），也先規範化再嘗試比對
func NormalizeCodeInput(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// String 返回 code 字串表示（規範化後的大寫形式）
func (c Code) String() string {
	return c.value
}

// Suffix 返回隨機後綴部分
func (c Code) Suffix() string {
	return strings.TrimPrefix(c.value, CodePrefix)
}

// Equals 比較兩個 code 是否相等
func (c Code) Equals(other Code) bool {
	return c.value == other.value
}

// IsZero 判斷是否為零值
func (c Code) IsZero() bool {
	return c.value == ""
}
