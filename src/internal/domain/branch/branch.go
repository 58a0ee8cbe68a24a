package branch

// ===========================
// Branch 讀取模型
// ===========================

// Branch 分店讀取模型
//
// 設計說明：
// 分店主檔由平台其他子系統維護，獎勵引擎對它只讀。
// 因此這裡不是聚合根，只是一個不可變的讀取模型：
// 引擎唯一關心的狀態是 engagementEnabled（分店是否停用互動活動）。
type Branch struct {
	branchID           BranchID
	name               string
	engagementEnabled  bool
}

// ReconstructBranch 重建分店讀取模型（供 Infrastructure Layer 使用）
//
// 不執行業務驗證：分店資料的正確性由維護它的子系統負責
func ReconstructBranch(branchID BranchID, name string, engagementEnabled bool) *Branch {
	return &Branch{
		branchID:          branchID,
		name:              name,
		engagementEnabled: engagementEnabled,
	}
}

// BranchID 返回分店 ID
func (b *Branch) BranchID() BranchID {
	return b.branchID
}

// Name 返回分店名稱
func (b *Branch) Name() string {
	return b.name
}

// IsEngagementEnabled 分店是否允許互動活動（發 token、接受 spin）
func (b *Branch) IsEngagementEnabled() bool {
	return b.engagementEnabled
}

// EnsureActive 檢查分店可用於互動活動
//
// 返回：
// - nil: 分店存在且未停用
// - ErrBranchSuspended: 分店存在但已停用互動活動
//
// 使用場景：
// - 產生 session token 前
// - 接受 spin 前（token 綁定的分店在發出後可能被停用）
func (b *Branch) EnsureActive() error {
	if !b.engagementEnabled {
		return ErrBranchSuspended.WithContext("branch_id", b.branchID.String())
	}
	return nil
}
