package txnservice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/teamvest/teamvest/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
}

type Service struct {
	txnRepo    Repo
	walletRepo WalletRepo
}

func New(txnRepo Repo, walletRepo WalletRepo) *Service {
	return &Service{
		txnRepo:    txnRepo,
		walletRepo: walletRepo,
	}
}

type CreateInput struct {
	UserID           string
	Type             string
	Amount           float64
	Currency         string
	Status           string
	Description      string
	RelatedRequestID string
	// BalanceAfter < 0 means "look up the current main wallet balance".
	BalanceAfter float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Transaction, error) {
	balanceAfter := in.BalanceAfter
	if balanceAfter < 0 {
		wallet, err := s.walletRepo.GetByUserID(ctx, in.UserID)
		if err != nil {
			zap.L().Error("failed to fetch wallet for transaction", zap.Error(err))
			return nil, err
		}
		balanceAfter = 0
		if wallet != nil {
			balanceAfter = wallet.MainWallet
		}
	}

	txn := &domain.Transaction{
		TransactionID:    generateTransactionID(),
		UserID:           in.UserID,
		Type:             in.Type,
		Amount:           in.Amount,
		Currency:         in.Currency,
		Status:           in.Status,
		Description:      in.Description,
		RelatedRequestID: in.RelatedRequestID,
		BalanceAfter:     balanceAfter,
		Date:             time.Now(),
	}
	created, err := s.txnRepo.Create(ctx, txn)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) CreateDeposit(ctx context.Context, userID string, amount float64, currency, requestID string, balanceAfter float64) (*domain.Transaction, error) {
	return s.Create(ctx, CreateInput{
		UserID:           userID,
		Type:             domain.TxnTypeDeposit,
		Amount:           amount,
		Currency:         currency,
		Status:           domain.TxnStatusCompleted,
		Description:      fmt.Sprintf("Deposit of %v %s - Request ID: %s", amount, currency, requestID),
		RelatedRequestID: requestID,
		BalanceAfter:     balanceAfter,
	})
}

func (s *Service) CreateWithdrawal(ctx context.Context, userID string, amount float64, currency, requestID string, balanceAfter float64) (*domain.Transaction, error) {
	return s.Create(ctx, CreateInput{
		UserID:           userID,
		Type:             domain.TxnTypeWithdrawal,
		Amount:           amount,
		Currency:         currency,
		Status:           domain.TxnStatusCompleted,
		Description:      fmt.Sprintf("Withdrawal of %v %s - Request ID: %s", amount, currency, requestID),
		RelatedRequestID: requestID,
		BalanceAfter:     balanceAfter,
	})
}

func (s *Service) CreateBonus(ctx context.Context, userID string, amount float64, currency, description, relatedRequestID string) (*domain.Transaction, error) {
	return s.Create(ctx, CreateInput{
		UserID:           userID,
		Type:             domain.TxnTypeBonus,
		Amount:           amount,
		Currency:         currency,
		Status:           domain.TxnStatusCompleted,
		Description:      description,
		RelatedRequestID: relatedRequestID,
		BalanceAfter:     -1,
	})
}

func (s *Service) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func generateTransactionID() string {
	return fmt.Sprintf("TXN-%d-%05d", time.Now().UnixMilli(), rand.Intn(100000))
}
