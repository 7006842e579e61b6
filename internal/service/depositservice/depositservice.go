package depositservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/teamvest/teamvest/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, req *domain.DepositRequest) (*domain.DepositRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.DepositRequest, error)
	ListByStatus(ctx context.Context, status string) ([]domain.DepositRequest, error)
	FindByRequestID(ctx context.Context, requestID string) (*domain.DepositRequest, error)
	UpdateStatus(ctx context.Context, requestID, status string) (*domain.DepositRequest, error)
}

var (
	ErrInvalidCurrency = errors.New("unsupported deposit currency")
	ErrInvalidAmount   = errors.New("deposit amount must be positive")
	ErrNotFound        = errors.New("deposit request not found")
)

type Service struct {
	depositRepo Repo
}

func New(depositRepo Repo) *Service {
	return &Service{
		depositRepo: depositRepo,
	}
}

func (s *Service) CreateRequest(ctx context.Context, userID, name, currency string, amount float64, txnID, receiptURL string) (*domain.DepositRequest, error) {
	switch currency {
	case domain.CurrencyINR, domain.CurrencyUSD, domain.CurrencyCrypto:
	default:
		return nil, ErrInvalidCurrency
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	token, err := generateToken()
	if err != nil {
		zap.L().Error("failed to generate deposit token", zap.Error(err))
		return nil, err
	}

	req := &domain.DepositRequest{
		RequestID:  generateRequestID(),
		Token:      token,
		UserID:     userID,
		Name:       name,
		Currency:   currency,
		Amount:     amount,
		TxnID:      txnID,
		ReceiptURL: receiptURL,
		Status:     domain.DepositPending,
		Date:       time.Now(),
	}
	created, err := s.depositRepo.Create(ctx, req)
	if err != nil {
		zap.L().Error("failed to create deposit request", zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit request created",
		zap.String("requestId", created.RequestID),
		zap.String("currency", currency))
	return created, nil
}

func (s *Service) GetRequests(ctx context.Context, userID string) ([]domain.DepositRequest, error) {
	requests, err := s.depositRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch deposit requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) GetRequestByID(ctx context.Context, requestID string) (*domain.DepositRequest, error) {
	req, err := s.depositRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		zap.L().Error("failed to fetch deposit request", zap.Error(err))
		return nil, err
	}
	if req == nil {
		return nil, ErrNotFound
	}
	return req, nil
}

func generateRequestID() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(10000))
	return fmt.Sprintf("DEP-%d-%04d", time.Now().UnixMilli(), n)
}

// generateToken mirrors the 32-byte hex request token issued by the original
// payment flow.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
