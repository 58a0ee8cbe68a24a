package shared

// TransactionContext 事務上下文介面
//
// 設計決策：可選事務參與模式（Optional Transaction Participation）
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（適用於單一讀操作）
//
// 使用場景：
//
// 1. 寫操作：必須在事務中（通過 TransactionManager.InTransaction）
//    - 保證原子性（Atomicity）
//    - 支援回滾（Rollback on error）
//    - 例如：轉盤抽獎（voucher 寫入 + session 標記使用必須同時提交）、
//      voucher 核銷（redeemed_at 的 compare-and-set）
//
// 2. 讀操作：可選事務參與
//    - 獨立查詢：傳入 nil（性能優先，auto-commit 模式）
//    - 在事務中讀取：傳入調用者的 ctx（保證一致性）
//    - 例如：核銷前查詢 voucher（在事務中）vs 報表查詢（獨立）
//
// Repository 方法約束指南：
//
// ✅ ctx 必須為 non-nil（寫操作需要事務保證）：
//    - Save()     - 創建新記錄
//    - MarkUsed() - 條件式狀態轉移（CAS）
//    - Redeem()   - 條件式狀態轉移（CAS）
//
// ✅ ctx 可為 nil（讀操作可選事務參與）：
//    - FindByToken() / FindByCode() - 查詢
//    - CountIssuedOnDay()           - 每日計數（best-effort 限流用）
//
// 原則：修改狀態的操作必須在事務中，查詢操作可選擇是否參與事務
//
// 範例（轉盤核心交易）：
//
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       if err := voucherRepo.Save(ctx, voucher); err != nil {
//           return err
//       }
//       // Single 模式：voucher 寫入與 token 標記使用必須同時提交
//       return sessionRepo.MarkUsed(ctx, session.Token())
//   })
//
// 架構原則：
// - 這是一個標記介面（Marker Interface），不暴露任何方法
// - Infrastructure Layer 負責實作具體的事務封裝（如 GORM）
// - Domain Layer 和 Application Layer 只依賴此介面，不依賴具體實作
// - 保持依賴方向：Infrastructure → Domain（依賴倒置原則）
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
