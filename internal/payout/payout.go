// Package payout credits approved deposits asynchronously: the owner's main
// wallet receives the deposit amount, and sponsors up the referral chain
// receive their commission into the matching bonus bucket.
package payout

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/teamvest/teamvest/internal/config"
	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/service/teamservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DepositRepo interface {
	FindUncredited(ctx context.Context, limit uint32) ([]domain.DepositRequest, error)
	MarkCredited(ctx context.Context, requestID string) error
}

type UserRepo interface {
	ListAll(ctx context.Context) ([]domain.User, error)
}

type WalletService interface {
	Increment(ctx context.Context, userID, bucket string, amount float64) (*domain.Wallet, error)
}

type TxnService interface {
	CreateDeposit(ctx context.Context, userID string, amount float64, currency, requestID string, balanceAfter float64) (*domain.Transaction, error)
	CreateBonus(ctx context.Context, userID string, amount float64, currency, description, relatedRequestID string) (*domain.Transaction, error)
}

var processingDeposits sync.Map

type Service struct {
	depositRepo    DepositRepo
	userRepo       UserRepo
	walletService  WalletService
	txnService     TxnService
	rates          teamservice.RateTable
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, depositRepo DepositRepo, userRepo UserRepo, walletService WalletService, txnService TxnService) *Service {
	return &Service{
		depositRepo:   depositRepo,
		userRepo:      userRepo,
		walletService: walletService,
		txnService:    txnService,
		rates: teamservice.RateTable{
			USD:        cfg.RateUSD,
			Crypto:     cfg.RateCrypto,
			Commission: cfg.CommissionRate,
		},
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.PayoutInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout service")
			return
		case <-ticker.C:
			s.processDeposits(ctx)
		}
	}
}

func (s *Service) processDeposits(ctx context.Context) {
	deposits, err := s.depositRepo.FindUncredited(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch deposits for crediting", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, deposit := range deposits {
		deposit := deposit

		if _, loaded := processingDeposits.LoadOrStore(deposit.RequestID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingDeposits.Delete(deposit.RequestID)
				return s.handleDeposit(ctx, deposit)
			})
			if err != nil {
				processingDeposits.Delete(deposit.RequestID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error crediting deposits", zap.Error(err))
	}
}

func (s *Service) handleDeposit(ctx context.Context, deposit domain.DepositRequest) error {
	wallet, err := s.walletService.Increment(ctx, deposit.UserID, domain.BucketMain, deposit.Amount)
	if err != nil {
		return fmt.Errorf("failed to credit wallet for %s: %w", deposit.RequestID, err)
	}
	if _, err := s.txnService.CreateDeposit(ctx, deposit.UserID, deposit.Amount, deposit.Currency, deposit.RequestID, wallet.MainWallet); err != nil {
		return fmt.Errorf("failed to record deposit transaction for %s: %w", deposit.RequestID, err)
	}

	if err := s.payCommissions(ctx, deposit); err != nil {
		return err
	}

	if err := s.depositRepo.MarkCredited(ctx, deposit.RequestID); err != nil {
		return fmt.Errorf("failed to mark deposit %s credited: %w", deposit.RequestID, err)
	}

	zap.L().Info("Deposit credited",
		zap.String("requestId", deposit.RequestID),
		zap.Float64("amount", deposit.Amount),
		zap.String("currency", deposit.Currency))
	return nil
}

// payCommissions walks the sponsor chain of the depositor and pays each
// active sponsor the commission on the normalized deposit amount. The level-1
// sponsor is paid into the direct bonus bucket, deeper sponsors into the
// level bonus bucket. Sponsor ids may be stored full or truncated, and the
// chain may be cyclic, hence the dual-matched lookup and the visited set.
func (s *Service) payCommissions(ctx context.Context, deposit domain.DepositRequest) error {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users for commissions: %w", err)
	}

	commission := s.rates.Normalize(deposit.Currency, deposit.Amount) * s.rates.Commission
	if commission <= 0 {
		return nil
	}

	current := findUser(users, deposit.UserID)
	visited := map[string]struct{}{}
	if current != nil {
		visited[current.ID] = struct{}{}
	}

	for level := 1; level <= teamservice.MaxLevel && current != nil; level++ {
		sponsor := findSponsor(users, current.SponsorID)
		if sponsor == nil {
			break
		}
		if _, seen := visited[sponsor.ID]; seen {
			break
		}
		visited[sponsor.ID] = struct{}{}

		sponsor.Normalize()
		if sponsor.Status == domain.UserStatusActive {
			bucket := domain.BucketLevel
			if level == 1 {
				bucket = domain.BucketDirect
			}
			if _, err := s.walletService.Increment(ctx, sponsor.ID, bucket, commission); err != nil {
				return fmt.Errorf("failed to credit level %d bonus for %s: %w", level, deposit.RequestID, err)
			}
			desc := fmt.Sprintf("Level %d referral bonus for deposit %s", level, deposit.RequestID)
			if _, err := s.txnService.CreateBonus(ctx, sponsor.ID, commission, domain.CurrencyINR, desc, deposit.RequestID); err != nil {
				return fmt.Errorf("failed to record bonus transaction for %s: %w", deposit.RequestID, err)
			}
		}

		current = sponsor
	}

	return nil
}

// findUser resolves a deposit owner id, tolerating truncated stored forms.
func findUser(users []domain.User, ownerID string) *domain.User {
	for i := range users {
		if domain.IDMatches(ownerID, users[i].ID) {
			return &users[i]
		}
	}
	return nil
}

// findSponsor resolves a sponsor reference against the directory.
func findSponsor(users []domain.User, sponsorID string) *domain.User {
	if sponsorID == "" {
		return nil
	}
	for i := range users {
		if domain.IDMatches(sponsorID, users[i].ID) {
			return &users[i]
		}
	}
	return nil
}
