package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Xahmuh/reward_engine/src/internal/domain/branch"
	"github.com/Xahmuh/reward_engine/src/internal/domain/session"
	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// Mocks
// ===========================

// MockSessionRepository mock implementation of session.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx shared.TransactionContext, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByToken(ctx shared.TransactionContext, token session.Token) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) MarkUsed(ctx shared.TransactionContext, token session.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
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

// ===========================
// GenerateSessionUseCase Tests
// ===========================

// Test 1: 產生 Single session 成功
func TestGenerateSessionUseCase_Execute_Success_Single(t *testing.T) {
	// Arrange
	mockRepo := new(MockSessionRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewGenerateSessionUseCase(mockRepo, mockDirectory, new(MockTransactionManager))

	branchID := branch.NewBranchID()
	active := branch.ReconstructBranch(branchID, "信義門市", true)

	mockDirectory.On("FindByID", mock.Anything, branchID).Return(active, nil)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	cmd := GenerateSessionCommand{BranchID: branchID.String(), Mode: "single"}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Token, 43)
	assert.Equal(t, branchID.String(), result.BranchID)
	assert.Equal(t, "single", result.Mode)
	assert.WithinDuration(t, result.CreatedAt.Add(10*time.Minute), result.ExpiresAt, time.Second)

	mockRepo.AssertExpectations(t)
	mockDirectory.AssertExpectations(t)
}

// Test 2: 產生 Multi session 效期為 7 天
func TestGenerateSessionUseCase_Execute_Success_Multi(t *testing.T) {
	// Arrange
	mockRepo := new(MockSessionRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewGenerateSessionUseCase(mockRepo, mockDirectory, new(MockTransactionManager))

	branchID := branch.NewBranchID()
	mockDirectory.On("FindByID", mock.Anything, mock.Anything).
		Return(branch.ReconstructBranch(branchID, "信義門市", true), nil)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	cmd := GenerateSessionCommand{BranchID: branchID.String(), Mode: "multi"}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "multi", result.Mode)
	assert.WithinDuration(t, result.CreatedAt.Add(7*24*time.Hour), result.ExpiresAt, time.Second)
}

// Test 3: 無效模式
func TestGenerateSessionUseCase_Execute_InvalidMode(t *testing.T) {
	// Arrange
	mockRepo := new(MockSessionRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewGenerateSessionUseCase(mockRepo, mockDirectory, new(MockTransactionManager))

	cmd := GenerateSessionCommand{BranchID: branch.NewBranchID().String(), Mode: "unlimited"}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, session.ErrInvalidMode)
	mockDirectory.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// Test 4: 分店不存在
func TestGenerateSessionUseCase_Execute_BranchNotFound(t *testing.T) {
	// Arrange
	mockRepo := new(MockSessionRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewGenerateSessionUseCase(mockRepo, mockDirectory, new(MockTransactionManager))

	mockDirectory.On("FindByID", mock.Anything, mock.Anything).
		Return(nil, branch.ErrBranchNotFound)

	cmd := GenerateSessionCommand{BranchID: branch.NewBranchID().String(), Mode: "single"}

	// Act
	_, err := useCase.Execute(cmd)

	// Assert
	assert.ErrorIs(t, err, branch.ErrBranchNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// Test 5: 分店已停用互動活動
func TestGenerateSessionUseCase_Execute_BranchSuspended(t *testing.T) {
	// Arrange
	mockRepo := new(MockSessionRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewGenerateSessionUseCase(mockRepo, mockDirectory, new(MockTransactionManager))

	branchID := branch.NewBranchID()
	mockDirectory.On("FindByID", mock.Anything, mock.Anything).
		Return(branch.ReconstructBranch(branchID, "整修中門市", false), nil)

	cmd := GenerateSessionCommand{BranchID: branchID.String(), Mode: "single"}

	// Act
	_, err := useCase.Execute(cmd)

	// Assert
	assert.ErrorIs(t, err, branch.ErrBranchSuspended)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// Test 6: 無效分店 ID 字串
func TestGenerateSessionUseCase_Execute_InvalidBranchID(t *testing.T) {
	// Arrange
	mockRepo := new(MockSessionRepository)
	mockDirectory := new(MockBranchDirectory)
	useCase := NewGenerateSessionUseCase(mockRepo, mockDirectory, new(MockTransactionManager))

	cmd := GenerateSessionCommand{BranchID: "not-a-uuid", Mode: "single"}

	// Act
	_, err := useCase.Execute(cmd)

	// Assert
	assert.ErrorIs(t, err, branch.ErrInvalidBranchID)
}
