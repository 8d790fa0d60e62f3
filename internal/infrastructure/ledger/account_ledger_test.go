package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/corebank/backend/internal/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountRepository is a mock implementation of account.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*account.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByHolder(ctx context.Context, customerID uuid.UUID) ([]account.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]account.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) NextAccountNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAccountRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestRepositoryLedger_OpenJointAccount(t *testing.T) {
	primaryID := uuid.New()
	jointID := uuid.New()
	balance := decimal.NewFromInt(5000)

	t.Run("allocates number and persists account", func(t *testing.T) {
		repo := new(MockAccountRepository)
		ledger := NewRepositoryLedger(repo)

		var saved *account.Account
		repo.On("NextAccountNumber", mock.Anything).Return("JA00000021", nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*account.Account")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*account.Account)
			}).
			Return(nil)

		ref, err := ledger.OpenJointAccount(context.Background(), primaryID, jointID, balance)

		assert.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, "JA00000021", ref.AccountNumber)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID, ref.AccountID)
		assert.Equal(t, primaryID, saved.PrimaryHolderID)
		assert.Equal(t, jointID, saved.JointHolderID)
		assert.True(t, balance.Equal(saved.Balance))
		repo.AssertExpectations(t)
	})

	t.Run("fails when number allocation fails", func(t *testing.T) {
		repo := new(MockAccountRepository)
		ledger := NewRepositoryLedger(repo)

		repo.On("NextAccountNumber", mock.Anything).Return("", errors.New("sequence unavailable"))

		ref, err := ledger.OpenJointAccount(context.Background(), primaryID, jointID, balance)

		assert.Error(t, err)
		assert.Nil(t, ref)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects identical holders", func(t *testing.T) {
		repo := new(MockAccountRepository)
		ledger := NewRepositoryLedger(repo)

		repo.On("NextAccountNumber", mock.Anything).Return("JA00000022", nil)

		ref, err := ledger.OpenJointAccount(context.Background(), primaryID, primaryID, balance)

		assert.Error(t, err)
		assert.Nil(t, ref)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails when save fails", func(t *testing.T) {
		repo := new(MockAccountRepository)
		ledger := NewRepositoryLedger(repo)

		repo.On("NextAccountNumber", mock.Anything).Return("JA00000023", nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*account.Account")).Return(errors.New("connection reset"))

		ref, err := ledger.OpenJointAccount(context.Background(), primaryID, jointID, balance)

		assert.Error(t, err)
		assert.Nil(t, ref)
		repo.AssertExpectations(t)
	})
}
