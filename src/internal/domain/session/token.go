package session

import (
	"crypto/rand"
	"encoding/base64"
)

// ===========================
// Token Value Object
// ===========================

// tokenByteLength token 的隨機位元組長度
//
// 32 bytes = 256 bits：碰撞與猜測機率在密碼學上可忽略
const tokenByteLength = 32

// Token 不透明 claim token 值對象
//
// 業務規則：
// 1. 不透明：字串本身不攜帶任何可推斷的語義結構
//    （分店、模式、時間全部存在 session 紀錄中，不編碼進 token）
// 2. 不可猜測：256-bit 密碼學安全亂數
// 3. URL-safe：作為連結參數傳遞（base64url，無 padding）
//
// 設計原則：
// - 不可變性（unexported field）
// - 自我驗證（建構函數檢查）
type Token struct {
	value string
}

// GenerateToken 產生新的不透明 token
//
// 亂數來源一律使用 crypto/rand，不做不安全來源的降級特例
//
// 返回：
// - Token: 43 字元的 base64url 字串（32 bytes，無 padding）
// - error: 亂數來源失敗（作業系統層級問題，Transient）
func GenerateToken() (Token, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return Token{}, ErrRandomSourceFailure.Wrap(err)
	}
	return Token{value: base64.RawURLEncoding.EncodeToString(buf)}, nil
}

// TokenFromString 從字串解析 token（Checked Constructor）
//
// 只做形式檢查（非空、長度、base64url 字元集）：
// token 是否存在、過期、已用由 Session 與 Repository 判斷
func TokenFromString(value string) (Token, error) {
	if value == "" {
		return Token{}, ErrInvalidToken.WithContext("reason", "empty token")
	}
	if len(value) != base64.RawURLEncoding.EncodedLen(tokenByteLength) {
		return Token{}, ErrInvalidToken.WithContext(
			"reason", "unexpected token length",
			"length", len(value),
		)
	}
	if _, err := base64.RawURLEncoding.DecodeString(value); err != nil {
		return Token{}, ErrInvalidToken.WithContext(
			"reason", "not a base64url string",
		)
	}
	return Token{value: value}, nil
}

// String 返回 token 字串表示
func (t Token) String() string {
	return t.value
}

// Equals 比較兩個 token 是否相等
func (t Token) Equals(other Token) bool {
	return t.value == other.value
}

// IsZero 判斷是否為零值
func (t Token) IsZero() bool {
	return t.value == ""
}
