package withdrawalservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWalletService, *MockTxnService) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	walletService := NewMockWalletService(ctrl)
	txnService := NewMockTxnService(ctrl)
	service := New(repo, walletService, txnService)
	defer ctrl.Finish()
	return service, repo, walletService, txnService
}

func TestCreateRequest(t *testing.T) {
	service, repo, walletService, _ := NewMock(t)

	valid := CreateInput{
		UserID:        "user-1",
		Fullname:      "Test User",
		Amount:        500,
		AccountNumber: "123456789012",
		IFSCCode:      "hdfc0001234",
	}

	tests := []struct {
		name          string
		in            CreateInput
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful request",
			in:   valid,
			prepareMock: func() {
				walletService.EXPECT().GetOrCreate(context.Background(), "user-1").Return(&domain.Wallet{UserID: "user-1", MainWallet: 1000}, nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
					return req, nil
				})
			},
		},
		{
			name:          "Non-positive amount",
			in:            CreateInput{UserID: "user-1", Amount: 0, AccountNumber: "123456789012", IFSCCode: "HDFC0001234"},
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Invalid IFSC",
			in:            CreateInput{UserID: "user-1", Amount: 500, AccountNumber: "123456789012", IFSCCode: "BADCODE"},
			prepareMock:   func() {},
			expectedError: ErrInvalidIFSC,
		},
		{
			name:          "Invalid account number",
			in:            CreateInput{UserID: "user-1", Amount: 500, AccountNumber: "12AB", IFSCCode: "HDFC0001234"},
			prepareMock:   func() {},
			expectedError: ErrInvalidAccount,
		},
		{
			name: "Insufficient balance",
			in:   valid,
			prepareMock: func() {
				walletService.EXPECT().GetOrCreate(context.Background(), "user-1").Return(&domain.Wallet{UserID: "user-1", MainWallet: 100}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name: "Wallet lookup error",
			in:   valid,
			prepareMock: func() {
				walletService.EXPECT().GetOrCreate(context.Background(), "user-1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			created, err := service.CreateRequest(context.Background(), tt.in)
			if tt.expectedError != nil {
				assert.Nil(t, created)
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(created.RequestID, "WTH-"))
			assert.Equal(t, "HDFC0001234", created.IFSCCode)
			assert.Equal(t, created.Amount, created.PayINR)
			assert.Equal(t, domain.WithdrawalPending, created.Status)
		})
	}
}

func TestReview(t *testing.T) {
	service, repo, walletService, txnService := NewMock(t)

	pending := &domain.WithdrawalRequest{
		RequestID: "WTH-1",
		UserID:    "user-1",
		Amount:    500,
		Status:    domain.WithdrawalPending,
	}

	t.Run("Completing debits the wallet and records a transaction", func(t *testing.T) {
		repo.EXPECT().FindByRequestID(context.Background(), "WTH-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(context.Background(), "WTH-1", domain.WithdrawalCompleted).Return(&domain.WithdrawalRequest{RequestID: "WTH-1", Status: domain.WithdrawalCompleted}, nil)
		walletService.EXPECT().Decrement(context.Background(), "user-1", 500.0).Return(&domain.Wallet{UserID: "user-1", MainWallet: 250}, nil)
		txnService.EXPECT().CreateWithdrawal(context.Background(), "user-1", 500.0, domain.CurrencyINR, "WTH-1", 250.0).Return(&domain.Transaction{}, nil)

		updated, err := service.Review(context.Background(), "WTH-1", domain.WithdrawalCompleted)
		assert.NoError(t, err)
		assert.Equal(t, domain.WithdrawalCompleted, updated.Status)
	})

	t.Run("Failing skips the wallet debit", func(t *testing.T) {
		repo.EXPECT().FindByRequestID(context.Background(), "WTH-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(context.Background(), "WTH-1", domain.WithdrawalFailed).Return(&domain.WithdrawalRequest{RequestID: "WTH-1", Status: domain.WithdrawalFailed}, nil)

		updated, err := service.Review(context.Background(), "WTH-1", domain.WithdrawalFailed)
		assert.NoError(t, err)
		assert.Equal(t, domain.WithdrawalFailed, updated.Status)
	})

	t.Run("Already completed is not debited twice", func(t *testing.T) {
		completed := &domain.WithdrawalRequest{RequestID: "WTH-1", UserID: "user-1", Amount: 500, Status: domain.WithdrawalCompleted}
		repo.EXPECT().FindByRequestID(context.Background(), "WTH-1").Return(completed, nil)
		repo.EXPECT().UpdateStatus(context.Background(), "WTH-1", domain.WithdrawalCompleted).Return(completed, nil)

		_, err := service.Review(context.Background(), "WTH-1", domain.WithdrawalCompleted)
		assert.NoError(t, err)
	})

	t.Run("Unknown status", func(t *testing.T) {
		updated, err := service.Review(context.Background(), "WTH-1", "Cancelled")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, updated)
	})

	t.Run("Unknown request", func(t *testing.T) {
		repo.EXPECT().FindByRequestID(context.Background(), "WTH-404").Return(nil, nil)
		updated, err := service.Review(context.Background(), "WTH-404", domain.WithdrawalCompleted)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, updated)
	})

	t.Run("Status update survives a failing wallet debit", func(t *testing.T) {
		repo.EXPECT().FindByRequestID(context.Background(), "WTH-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(context.Background(), "WTH-1", domain.WithdrawalCompleted).Return(&domain.WithdrawalRequest{RequestID: "WTH-1", Status: domain.WithdrawalCompleted}, nil)
		walletService.EXPECT().Decrement(context.Background(), "user-1", 500.0).Return(nil, errors.New("database error"))

		updated, err := service.Review(context.Background(), "WTH-1", domain.WithdrawalCompleted)
		assert.NoError(t, err)
		assert.Equal(t, domain.WithdrawalCompleted, updated.Status)
	})
}

func TestGetRequests(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().ListByUser(context.Background(), "user-1").Return([]domain.WithdrawalRequest{{RequestID: "WTH-1"}}, nil)
	requests, err := service.GetRequests(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, requests, 1)

	repo.EXPECT().ListByUser(context.Background(), "user-2").Return(nil, errors.New("database error"))
	requests, err = service.GetRequests(context.Background(), "user-2")
	assert.Error(t, err)
	assert.Nil(t, requests)
}
