package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/teamvest/teamvest/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
}

var ErrUnknownBucket = errors.New("unknown wallet bucket")

type Service struct {
	walletRepo Repo
}

func New(walletRepo Repo) *Service {
	return &Service{
		walletRepo: walletRepo,
	}
}

// CreateWallet bootstraps a zeroed wallet for a new user. Returns the
// existing wallet if one was already created.
func (s *Service) CreateWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	existing, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to look up wallet", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	wallet, err := s.walletRepo.Create(ctx, &domain.Wallet{
		UserID:      userID,
		LastUpdated: time.Now(),
	})
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetOrCreate(ctx context.Context, userID string) (*domain.Wallet, error) {
	return s.CreateWallet(ctx, userID)
}

// Increment adds amount to one wallet bucket. Bonus buckets additionally roll
// into the total bonus.
func (s *Service) Increment(ctx context.Context, userID, bucket string, amount float64) (*domain.Wallet, error) {
	wallet, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch bucket {
	case domain.BucketMain:
		wallet.MainWallet += amount
	case domain.BucketDirect:
		wallet.DirectBonus += amount
		wallet.TotalBonus += amount
	case domain.BucketLevel:
		wallet.LevelBonus += amount
		wallet.TotalBonus += amount
	case domain.BucketTotal:
		wallet.TotalBonus += amount
	default:
		return nil, ErrUnknownBucket
	}
	wallet.LastUpdated = time.Now()

	updated, err := s.walletRepo.Update(ctx, wallet)
	if err != nil {
		zap.L().Error("failed to update wallet", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Decrement subtracts amount from the main wallet, flooring at zero.
func (s *Service) Decrement(ctx context.Context, userID string, amount float64) (*domain.Wallet, error) {
	wallet, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	wallet.MainWallet -= amount
	if wallet.MainWallet < 0 {
		wallet.MainWallet = 0
	}
	wallet.LastUpdated = time.Now()

	updated, err := s.walletRepo.Update(ctx, wallet)
	if err != nil {
		zap.L().Error("failed to update wallet", zap.Error(err))
		return nil, err
	}
	return updated, nil
}
