package withdrawalservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
	FindByRequestID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, requestID, status string) (*domain.WithdrawalRequest, error)
}

type WalletService interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Wallet, error)
	Decrement(ctx context.Context, userID string, amount float64) (*domain.Wallet, error)
}

type TxnService interface {
	CreateWithdrawal(ctx context.Context, userID string, amount float64, currency, requestID string, balanceAfter float64) (*domain.Transaction, error)
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidIFSC         = errors.New("invalid IFSC code")
	ErrInvalidAccount      = errors.New("invalid account number")
	ErrInvalidAmount       = errors.New("withdrawal amount must be positive")
	ErrNotFound            = errors.New("withdrawal request not found")
	ErrInvalidStatus       = errors.New("invalid withdrawal status")
)

type Service struct {
	withdrawalRepo Repo
	walletService  WalletService
	txnService     TxnService
}

func New(withdrawalRepo Repo, walletService WalletService, txnService TxnService) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		walletService:  walletService,
		txnService:     txnService,
	}
}

type CreateInput struct {
	UserID        string
	Fullname      string
	CompanyID     string
	Amount        float64
	AccountNumber string
	IFSCCode      string
}

func (s *Service) CreateRequest(ctx context.Context, in CreateInput) (*domain.WithdrawalRequest, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validate.IsIFSC(in.IFSCCode) {
		return nil, ErrInvalidIFSC
	}
	if !validate.IsAccountNumber(in.AccountNumber) {
		return nil, ErrInvalidAccount
	}

	wallet, err := s.walletService.GetOrCreate(ctx, in.UserID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet.MainWallet < in.Amount {
		return nil, ErrInsufficientBalance
	}

	req := &domain.WithdrawalRequest{
		RequestID:     generateRequestID(),
		UserID:        in.UserID,
		Amount:        in.Amount,
		PayINR:        in.Amount,
		AccountNumber: in.AccountNumber,
		IFSCCode:      strings.ToUpper(in.IFSCCode),
		Fullname:      in.Fullname,
		CompanyID:     in.CompanyID,
		TxnID:         generateTxnID(),
		Status:        domain.WithdrawalPending,
		Date:          time.Now(),
	}
	created, err := s.withdrawalRepo.Create(ctx, req)
	if err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal request created", zap.String("requestId", created.RequestID))
	return created, nil
}

func (s *Service) GetRequests(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// Review transitions a request's status. Completing a request debits the
// wallet and writes the withdrawal to the transaction ledger; the status
// update itself is never rolled back by a failing side effect, matching the
// original admin flow.
func (s *Service) Review(ctx context.Context, requestID, status string) (*domain.WithdrawalRequest, error) {
	switch status {
	case domain.WithdrawalPending, domain.WithdrawalCompleted, domain.WithdrawalFailed:
	default:
		return nil, ErrInvalidStatus
	}

	existing, err := s.withdrawalRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal request", zap.Error(err))
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	updated, err := s.withdrawalRepo.UpdateStatus(ctx, requestID, status)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return nil, err
	}

	if status == domain.WithdrawalCompleted && existing.Status != domain.WithdrawalCompleted {
		wallet, err := s.walletService.Decrement(ctx, existing.UserID, existing.Amount)
		if err != nil {
			zap.L().Error("failed to debit wallet for completed withdrawal", zap.Error(err))
			return updated, nil
		}
		if _, err := s.txnService.CreateWithdrawal(ctx, existing.UserID, existing.Amount, domain.CurrencyINR, existing.RequestID, wallet.MainWallet); err != nil {
			zap.L().Error("failed to record withdrawal transaction", zap.Error(err))
		}
	}

	return updated, nil
}

func generateRequestID() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(10000))
	return fmt.Sprintf("WTH-%d-%04d", time.Now().UnixMilli(), n)
}

func generateTxnID() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(1000000))
	return fmt.Sprintf("TXN%d%06d", time.Now().UnixMilli(), n)
}
