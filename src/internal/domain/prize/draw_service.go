package prize

import (
	"crypto/rand"
	"math/big"
)

// ===========================
// WeightedDrawService 領域服務
// ===========================

// RollFunc 均勻亂數來源
//
// 約定：返回 [0, total) 區間內均勻分布的整數（total > 0）
type RollFunc func(total int64) (int64, error)

// WeightedDrawService 加權抽獎領域服務
//
// 設計原則：
// 1. Domain Service 封裝不屬於任何單一實體的業務邏輯
//    （「從一組獎項中按權重抽一個」不是任何單一 Prize 的職責）
// 2. 純函數、無狀態：不讀寫任何儲存，呼叫端負責先過濾候選池
//    （啟用中、未達每日上限）
// 3. 亂數來源可注入：正式環境用 crypto/rand，測試注入固定值
//
// 演算法：累積權重分割 + 單次均勻抽值
// - 將候選獎項依序排在數線上，每個獎項佔據自己權重長度的區間
// - 在 [0, Σweights) 均勻抽一個值，落在哪個區間就抽中哪個獎項
// - 抽中機率嚴格等於 weight / Σweights
type WeightedDrawService struct {
	roll RollFunc
}

// NewWeightedDrawService 建構函數（使用 crypto/rand 亂數來源）
//
// 亂數來源一律使用密碼學安全的 crypto/rand：
// token、voucher code 與抽獎共用同一等級的亂數來源，不做降級特例
func NewWeightedDrawService() *WeightedDrawService {
	return &WeightedDrawService{roll: cryptoRoll}
}

// NewWeightedDrawServiceWithRoll 建構函數（注入亂數來源）
//
// 使用場景：
// - 測試中注入固定值驗證分割規則
//   （例如池 [A:20, B:80]，抽值 15 必中 A、抽值 50 必中 B）
func NewWeightedDrawServiceWithRoll(roll RollFunc) *WeightedDrawService {
	return &WeightedDrawService{roll: roll}
}

// Draw 從候選池中按權重抽出一個獎項
//
// 參數：
//   candidates - 候選獎項（呼叫端已過濾：啟用中、未達每日上限）
//
// 返回：
//   *Prize - 抽中的獎項
//   error - ErrNoPrizesAvailable: 候選池為空
//           ErrInvalidConfiguration: 所有權重加總 <= 0
//           ErrRandomSourceFailure: 亂數來源失敗
//
// 邊界行為：
// - 權重 <= 0 的候選獎項被跳過（佔據零長度區間，永遠不會抽中）
// - 空池或全零權重一定失敗，絕不靜默返回任何獎項
func (s *WeightedDrawService) Draw(candidates []*Prize) (*Prize, error) {
	if len(candidates) == 0 {
		return nil, ErrNoPrizesAvailable
	}

	// 1. 計算總權重（跳過非正數權重）
	var totalWeight int64
	for _, p := range candidates {
		if p.Weight() > 0 {
			totalWeight += int64(p.Weight())
		}
	}
	if totalWeight <= 0 {
		return nil, ErrInvalidConfiguration.WithContext(
			"candidates", len(candidates),
		)
	}

	// 2. 在 [0, totalWeight) 均勻抽值
	pick, err := s.roll(totalWeight)
	if err != nil {
		return nil, ErrRandomSourceFailure.Wrap(err)
	}

	// 3. 累積權重分割：抽值落入哪個區間就抽中哪個獎項
	var acc int64
	for _, p := range candidates {
		if p.Weight() <= 0 {
			continue
		}
		acc += int64(p.Weight())
		if pick < acc {
			return p, nil
		}
	}

	// roll 約定返回 [0, total)，理論上不可達；防禦損壞的注入來源
	return nil, ErrRandomSourceFailure.WithContext(
		"reason", "roll returned value outside [0, total)",
		"pick", int(pick),
	)
}

// cryptoRoll 密碼學安全的均勻亂數（預設來源）
func cryptoRoll(total int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(total))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}
