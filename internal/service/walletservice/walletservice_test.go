package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreateWallet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Creates a zeroed wallet",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(context.Background(), "user-1").Return(nil, nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
					assert.Equal(t, "user-1", wallet.UserID)
					assert.Zero(t, wallet.MainWallet)
					return wallet, nil
				})
			},
		},
		{
			name: "Returns existing wallet",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(context.Background(), "user-1").Return(&domain.Wallet{UserID: "user-1", MainWallet: 100}, nil)
			},
		},
		{
			name: "Lookup error",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(context.Background(), "user-1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			wallet, err := service.CreateWallet(context.Background(), "user-1")
			if tt.expectedError != nil {
				assert.Nil(t, wallet)
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "user-1", wallet.UserID)
		})
	}
}

func TestIncrement(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		bucket        string
		amount        float64
		check         func(wallet *domain.Wallet)
		expectedError error
	}{
		{
			name:   "Main wallet credit",
			bucket: domain.BucketMain,
			amount: 500,
			check: func(wallet *domain.Wallet) {
				assert.Equal(t, 500.0, wallet.MainWallet)
				assert.Zero(t, wallet.TotalBonus)
			},
		},
		{
			name:   "Direct bonus rolls into total",
			bucket: domain.BucketDirect,
			amount: 50,
			check: func(wallet *domain.Wallet) {
				assert.Equal(t, 50.0, wallet.DirectBonus)
				assert.Equal(t, 50.0, wallet.TotalBonus)
			},
		},
		{
			name:   "Level bonus rolls into total",
			bucket: domain.BucketLevel,
			amount: 25,
			check: func(wallet *domain.Wallet) {
				assert.Equal(t, 25.0, wallet.LevelBonus)
				assert.Equal(t, 25.0, wallet.TotalBonus)
			},
		},
		{
			name:          "Unknown bucket",
			bucket:        "savings",
			amount:        10,
			expectedError: ErrUnknownBucket,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().GetByUserID(context.Background(), "user-1").Return(&domain.Wallet{UserID: "user-1"}, nil)
			if tt.expectedError == nil {
				repo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
					return wallet, nil
				})
			}
			wallet, err := service.Increment(context.Background(), "user-1", tt.bucket, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, wallet)
				return
			}
			assert.NoError(t, err)
			tt.check(wallet)
		})
	}
}

func TestDecrement(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Debits the main wallet", func(t *testing.T) {
		repo.EXPECT().GetByUserID(context.Background(), "user-1").Return(&domain.Wallet{UserID: "user-1", MainWallet: 300}, nil)
		repo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
			return wallet, nil
		})
		wallet, err := service.Decrement(context.Background(), "user-1", 100)
		assert.NoError(t, err)
		assert.Equal(t, 200.0, wallet.MainWallet)
	})

	t.Run("Floors at zero", func(t *testing.T) {
		repo.EXPECT().GetByUserID(context.Background(), "user-1").Return(&domain.Wallet{UserID: "user-1", MainWallet: 50}, nil)
		repo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
			return wallet, nil
		})
		wallet, err := service.Decrement(context.Background(), "user-1", 100)
		assert.NoError(t, err)
		assert.Zero(t, wallet.MainWallet)
	})

	t.Run("Update error", func(t *testing.T) {
		repo.EXPECT().GetByUserID(context.Background(), "user-1").Return(&domain.Wallet{UserID: "user-1", MainWallet: 50}, nil)
		repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil, errors.New("database error"))
		wallet, err := service.Decrement(context.Background(), "user-1", 10)
		assert.Error(t, err)
		assert.Nil(t, wallet)
	})
}
