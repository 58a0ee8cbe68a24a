package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

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

// ===========================
// ListVouchersUseCase Tests
// ===========================

// newReportVoucher 創建報表測試用 voucher
func newReportVoucher(t *testing.T) *voucher.Voucher {
	t.Helper()

	code, err := voucher.GenerateCode()
	require.NoError(t, err)

	v, err := voucher.NewVoucher(
		voucher.NewCustomerID(), voucher.NewBranchID(), voucher.NewPrizeID(),
		code, "",
	)
	require.NoError(t, err)
	return v
}

// Test 1: 無過濾條件列出全部，帶計算狀態
func TestListVouchersUseCase_Execute_NoFilter(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	useCase := NewListVouchersUseCase(mockRepo)

	active := newReportVoucher(t)
	redeemed := newReportVoucher(t)
	require.NoError(t, redeemed.MarkRedeemed(voucher.NewBranchID(), time.Now()))

	mockRepo.On("List", mock.Anything, voucher.ListFilter{}).
		Return([]*voucher.Voucher{active, redeemed}, nil)

	// Act
	records, err := useCase.Execute(ListVouchersQuery{})

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "active", records[0].Status)
	assert.Equal(t, "redeemed", records[1].Status)
	require.NotNil(t, records[1].RedeemedAt)
	assert.Equal(t, active.CreatedAt().Add(voucher.RedemptionWindow), records[0].ExpiresAt)
}

// Test 2: 過濾條件轉換為倉儲 filter
func TestListVouchersUseCase_Execute_WithFilters(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	useCase := NewListVouchersUseCase(mockRepo)

	branchID := voucher.NewBranchID()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f voucher.ListFilter) bool {
		return f.BranchID != nil && f.BranchID.Equals(branchID) &&
			f.CustomerID == nil && f.IssuedFrom != nil && f.IssuedFrom.Equal(from)
	})).Return([]*voucher.Voucher{}, nil)

	// Act
	records, err := useCase.Execute(ListVouchersQuery{
		BranchID:   branchID.String(),
		IssuedFrom: &from,
	})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, records)
	mockRepo.AssertExpectations(t)
}

// Test 3: 無效過濾條件格式
func TestListVouchersUseCase_Execute_InvalidFilter(t *testing.T) {
	// Arrange
	mockRepo := new(MockVoucherRepository)
	useCase := NewListVouchersUseCase(mockRepo)

	// Act & Assert
	_, err := useCase.Execute(ListVouchersQuery{BranchID: "not-a-uuid"})
	assert.ErrorIs(t, err, voucher.ErrInvalidBranchID)

	_, err = useCase.Execute(ListVouchersQuery{CustomerID: "not-a-uuid"})
	assert.ErrorIs(t, err, voucher.ErrInvalidCustomerID)

	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
