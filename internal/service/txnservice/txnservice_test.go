package txnservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWalletRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	walletRepo := NewMockWalletRepo(ctrl)
	service := New(repo, walletRepo)
	defer ctrl.Finish()
	return service, repo, walletRepo
}

func TestCreate(t *testing.T) {
	service, repo, walletRepo := NewMock(t)

	t.Run("Uses the given balance", func(t *testing.T) {
		repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, 750.0, txn.BalanceAfter)
			assert.True(t, strings.HasPrefix(txn.TransactionID, "TXN-"))
			return txn, nil
		})
		txn, err := service.Create(context.Background(), CreateInput{
			UserID:       "user-1",
			Type:         domain.TxnTypeDeposit,
			Amount:       500,
			Currency:     domain.CurrencyINR,
			Status:       domain.TxnStatusCompleted,
			BalanceAfter: 750,
		})
		assert.NoError(t, err)
		assert.NotNil(t, txn)
	})

	t.Run("Negative balance triggers a wallet lookup", func(t *testing.T) {
		walletRepo.EXPECT().GetByUserID(context.Background(), "user-1").Return(&domain.Wallet{UserID: "user-1", MainWallet: 320}, nil)
		repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, 320.0, txn.BalanceAfter)
			return txn, nil
		})
		_, err := service.Create(context.Background(), CreateInput{
			UserID:       "user-1",
			Type:         domain.TxnTypeBonus,
			Amount:       50,
			Currency:     domain.CurrencyINR,
			Status:       domain.TxnStatusCompleted,
			BalanceAfter: -1,
		})
		assert.NoError(t, err)
	})

	t.Run("Missing wallet records zero balance", func(t *testing.T) {
		walletRepo.EXPECT().GetByUserID(context.Background(), "user-1").Return(nil, nil)
		repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			assert.Zero(t, txn.BalanceAfter)
			return txn, nil
		})
		_, err := service.Create(context.Background(), CreateInput{UserID: "user-1", BalanceAfter: -1})
		assert.NoError(t, err)
	})

	t.Run("Wallet lookup error", func(t *testing.T) {
		walletRepo.EXPECT().GetByUserID(context.Background(), "user-1").Return(nil, errors.New("database error"))
		txn, err := service.Create(context.Background(), CreateInput{UserID: "user-1", BalanceAfter: -1})
		assert.Error(t, err)
		assert.Nil(t, txn)
	})
}

func TestCreateDeposit(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
		assert.Equal(t, domain.TxnTypeDeposit, txn.Type)
		assert.Equal(t, domain.TxnStatusCompleted, txn.Status)
		assert.Equal(t, "DEP-1", txn.RelatedRequestID)
		assert.Contains(t, txn.Description, "DEP-1")
		return txn, nil
	})
	_, err := service.CreateDeposit(context.Background(), "user-1", 1000, domain.CurrencyINR, "DEP-1", 1000)
	assert.NoError(t, err)
}

func TestCreateBonus(t *testing.T) {
	service, repo, walletRepo := NewMock(t)

	walletRepo.EXPECT().GetByUserID(context.Background(), "sponsor-1").Return(&domain.Wallet{UserID: "sponsor-1", MainWallet: 80}, nil)
	repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
		assert.Equal(t, domain.TxnTypeBonus, txn.Type)
		assert.Equal(t, 80.0, txn.BalanceAfter)
		return txn, nil
	})
	_, err := service.CreateBonus(context.Background(), "sponsor-1", 50, domain.CurrencyINR, "Level 1 referral bonus for deposit DEP-1", "DEP-1")
	assert.NoError(t, err)
}

func TestListByUser(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ListByUser(context.Background(), "user-1", 10).Return([]domain.Transaction{{TransactionID: "TXN-1"}}, nil)
	txns, err := service.ListByUser(context.Background(), "user-1", 10)
	assert.NoError(t, err)
	assert.Len(t, txns, 1)

	repo.EXPECT().ListByUser(context.Background(), "user-2", 0).Return(nil, errors.New("database error"))
	txns, err = service.ListByUser(context.Background(), "user-2", 0)
	assert.Error(t, err)
	assert.Nil(t, txns)
}
