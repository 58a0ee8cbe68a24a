package redemption

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Xahmuh/reward_engine/src/internal/domain/branch"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
	"github.com/Xahmuh/reward_engine/src/internal/domain/voucher"
)

// ===========================
// Mocks
// ===========================

// MockVoucherRepository mock implementation of voucher.VoucherRepository
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) Save(ctx shared.TransactionContext, v *voucher.Voucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindByID(ctx shared.TransactionContext, id voucher.VoucherID) (*voucher.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voucher.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindByCode(ctx shared.TransactionContext, rawCode string) (*voucher.Voucher, error) {
	args := m.Called(ctx, rawCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voucher.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ExistsByCode(ctx shared.TransactionContext, code voucher.Code) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoucherRepository) Redeem(ctx shared.TransactionContext, id voucher.VoucherID, redeemingBranchID voucher.BranchID, at time.Time) error {
	args := m.Called(ctx, id, redeemingBranchID, at)
	return args.Error(0)
}

func (m *MockVoucherRepository) CountIssuedToCustomerOnDay(ctx shared.TransactionContext, customerID voucher.CustomerID, day time.Time) (int, error) {
	args := m.Called(ctx, customerID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) CountIssuedToIPOnDay(ctx shared.TransactionContext, ipAddress string, day time.Time) (int, error) {
	args := m.Called(ctx, ipAddress, day)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) CountIssuedForPrizeOnDay(ctx shared.TransactionContext, prizeID voucher.PrizeID, day time.Time) (int, error) {
	args := m.Called(ctx, prizeID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) List(ctx shared.TransactionContext, filter voucher.ListFilter) ([]*voucher.Voucher, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*voucher.Voucher), args.Error(1)
}

// MockBranchDirectory mock implementation of branch.Directory
type MockBranchDirectory struct {
	mock.Mock
}

func (m *MockBranchDirectory) FindByID(ctx shared.TransactionContext, id branch.BranchID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

// MockTransactionManager mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	// Directly execute the function with nil context (for unit tests)
	return fn(nil)
}

// MockEventPublisher mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
	published []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	m.published = append(m.published, event)
	return nil
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	m.published = append(m.published, events...)
	return nil
}

// ===========================
// Test Fixtures
// ===========================

// newActiveVoucher 創建發出後尚未核銷的 voucher
func newActiveVoucher(t *testing.T) *voucher.Voucher {
	t.Helper()

	code, err := voucher.GenerateCode()
	require.NoError(t, err)

	v, err := voucher.NewVoucher(
		voucher.NewCustomerID(), voucher.NewBranchID(), voucher.NewPrizeID(),
		code, "203.0.113.7",
	)
	require.NoError(t, err)
	v.PullEvents() // 清空 issued 事件，核銷測試只關心 redeemed
	return v
}

// newExpiredVoucher 創建發出超過核銷期限的 voucher
func newExpiredVoucher(t *testing.T) *voucher.Voucher {
	t.Helper()

	code, err := voucher.GenerateCode()
	require.NoError(t, err)

	v, err := voucher.ReconstructVoucher(
		voucher.NewVoucherID(), code,
		voucher.NewCustomerID(), voucher.NewBranchID(), voucher.NewPrizeID(),
		"", time.Now().Add(-voucher.RedemptionWindow-time.Hour), nil, nil,
	)
	require.NoError(t, err)
	return v
}

// ===========================
// RedeemVoucherUseCase Tests
// ===========================

// Test 1: 核銷成功（跨店核銷）
func TestRedeemVoucherUseCase_Execute_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	mockDirectory := new(MockBranchDirectory)
	publisher := new(MockEventPublisher)
	useCase := NewRedeemVoucherUseCase(mockRepo, mockDirectory, new(MockTransactionManager), publisher)

	v := newActiveVoucher(t)
	redeemingBranch := branch.NewBranchID()

	mockRepo.On("FindByCode", mock.Anything, v.Code().String()).Return(v, nil)
	mockDirectory.On("FindByID", mock.Anything, redeemingBranch).
		Return(branch.ReconstructBranch(redeemingBranch, "南港門市", true), nil)
	mockRepo.On("Redeem", mock.Anything, v.VoucherID(), mock.Anything, mock.Anything).Return(nil)

	cmd := RedeemVoucherCommand{Code: v.Code().String(), BranchID: redeemingBranch.String()}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, v.VoucherID().String(), result.VoucherID)
	assert.Equal(t, v.Code().String(), result.Code)
	assert.Equal(t, "redeemed", result.Status)
	assert.Equal(t, redeemingBranch.String(), result.RedeemedBranchID)
	assert.WithinDuration(t, time.Now(), result.RedeemedAt, time.Minute)

	// 提交後事件：voucher.redeemed
	require.Len(t, publisher.published, 1)
	assert.Equal(t, "voucher.redeemed", publisher.published[0].EventType())

	mockRepo.AssertExpectations(t)
}

// Test 2: 查無此券
func TestRedeemVoucherUseCase_Execute_VoucherNotFound(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewRedeemVoucherUseCase(mockRepo, mockDirectory, new(MockTransactionManager), nil)

	mockRepo.On("FindByCode", mock.Anything, mock.Anything).
		Return(nil, voucher.ErrVoucherNotFound)

	cmd := RedeemVoucherCommand{Code: "VOUCH-ZZZZZZ", BranchID: branch.NewBranchID().String()}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, voucher.ErrVoucherNotFound)
}

// Test 3: 已被核銷（聚合層預檢）
func TestRedeemVoucherUseCase_Execute_AlreadyRedeemed(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewRedeemVoucherUseCase(mockRepo, mockDirectory, new(MockTransactionManager), nil)

	v := newActiveVoucher(t)
	require.NoError(t, v.MarkRedeemed(voucher.NewBranchID(), time.Now()))
	redeemingBranch := branch.NewBranchID()

	mockRepo.On("FindByCode", mock.Anything, mock.Anything).Return(v, nil)
	mockDirectory.On("FindByID", mock.Anything, mock.Anything).
		Return(branch.ReconstructBranch(redeemingBranch, "南港門市", true), nil)

	cmd := RedeemVoucherCommand{Code: v.Code().String(), BranchID: redeemingBranch.String()}

	// Act
	_, err := useCase.Execute(cmd)

	// Assert
	assert.ErrorIs(t, err, voucher.ErrAlreadyRedeemed)
	mockRepo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test 4: 併發核銷輸家（條件更新 0 rows affected）
func TestRedeemVoucherUseCase_Execute_ConcurrentLoser(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	mockDirectory := new(MockBranchDirectory)
	publisher := new(MockEventPublisher)
	useCase := NewRedeemVoucherUseCase(mockRepo, mockDirectory, new(MockTransactionManager), publisher)

	v := newActiveVoucher(t)
	redeemingBranch := branch.NewBranchID()

	mockRepo.On("FindByCode", mock.Anything, mock.Anything).Return(v, nil)
	mockDirectory.On("FindByID", mock.Anything, mock.Anything).
		Return(branch.ReconstructBranch(redeemingBranch, "南港門市", true), nil)
	mockRepo.On("Redeem", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(voucher.ErrAlreadyRedeemed)

	cmd := RedeemVoucherCommand{Code: v.Code().String(), BranchID: redeemingBranch.String()}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, voucher.ErrAlreadyRedeemed)
	assert.Empty(t, publisher.published, "輸家不應發布事件")
}

// Test 5: 超過核銷期限
func TestRedeemVoucherUseCase_Execute_Expired(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewRedeemVoucherUseCase(mockRepo, mockDirectory, new(MockTransactionManager), nil)

	v := newExpiredVoucher(t)
	redeemingBranch := branch.NewBranchID()

	mockRepo.On("FindByCode", mock.Anything, mock.Anything).Return(v, nil)
	mockDirectory.On("FindByID", mock.Anything, mock.Anything).
		Return(branch.ReconstructBranch(redeemingBranch, "南港門市", true), nil)

	cmd := RedeemVoucherCommand{Code: v.Code().String(), BranchID: redeemingBranch.String()}

	// Act
	_, err := useCase.Execute(cmd)

	// Assert
	assert.ErrorIs(t, err, voucher.ErrVoucherExpired)
	mockRepo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test 6: 核銷分店已停用
func TestRedeemVoucherUseCase_Execute_BranchSuspended(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewRedeemVoucherUseCase(mockRepo, mockDirectory, new(MockTransactionManager), nil)

	v := newActiveVoucher(t)
	redeemingBranch := branch.NewBranchID()

	mockRepo.On("FindByCode", mock.Anything, mock.Anything).Return(v, nil)
	mockDirectory.On("FindByID", mock.Anything, mock.Anything).
		Return(branch.ReconstructBranch(redeemingBranch, "整修中門市", false), nil)

	cmd := RedeemVoucherCommand{Code: v.Code().String(), BranchID: redeemingBranch.String()}

	// Act
	_, err := useCase.Execute(cmd)

	// Assert
	assert.ErrorIs(t, err, branch.ErrBranchSuspended)
	mockRepo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test 7: 無效分店 ID 字串（事務外快速失敗）
func TestRedeemVoucherUseCase_Execute_InvalidBranchID(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewRedeemVoucherUseCase(mockRepo, mockDirectory, new(MockTransactionManager), nil)

	cmd := RedeemVoucherCommand{Code: "VOUCH-AB12CD", BranchID: "not-a-uuid"}

	// Act
	_, err := useCase.Execute(cmd)

	// Assert
	assert.ErrorIs(t, err, voucher.ErrInvalidBranchID)
	mockRepo.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
}
