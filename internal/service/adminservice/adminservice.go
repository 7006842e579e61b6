package adminservice

import (
	"context"
	"errors"

	"github.com/teamvest/teamvest/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.User, error)
}

type DepositRepo interface {
	ListAll(ctx context.Context) ([]domain.DepositRequest, error)
	ListByStatus(ctx context.Context, status string) ([]domain.DepositRequest, error)
	FindByRequestID(ctx context.Context, requestID string) (*domain.DepositRequest, error)
	UpdateStatus(ctx context.Context, requestID, status string) (*domain.DepositRequest, error)
}

type WithdrawalRepo interface {
	ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDepositNotFound = errors.New("deposit request not found")
	ErrInvalidStatus   = errors.New("invalid status")
)

type Service struct {
	userRepo       UserRepo
	depositRepo    DepositRepo
	withdrawalRepo WithdrawalRepo
}

func New(userRepo UserRepo, depositRepo DepositRepo, withdrawalRepo WithdrawalRepo) *Service {
	return &Service{
		userRepo:       userRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) UpdateUserStatus(ctx context.Context, userID, status string) (*domain.User, error) {
	switch status {
	case domain.UserStatusActive, domain.UserStatusInactive:
	default:
		return nil, ErrInvalidStatus
	}

	user, err := s.userRepo.UpdateStatus(ctx, userID, status)
	if err != nil {
		zap.L().Error("failed to update user status", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	zap.L().Info("user status updated",
		zap.String("userId", domain.ShortID(userID)),
		zap.String("status", status))
	return user, nil
}

func (s *Service) ListDeposits(ctx context.Context, status string) ([]domain.DepositRequest, error) {
	var (
		requests []domain.DepositRequest
		err      error
	)
	if status == "" {
		requests, err = s.depositRepo.ListAll(ctx)
	} else {
		requests, err = s.depositRepo.ListByStatus(ctx, status)
	}
	if err != nil {
		zap.L().Error("failed to list deposit requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// ReviewDeposit approves or rejects a pending deposit. Crediting an approved
// deposit is the payout worker's job; the review only moves the status.
func (s *Service) ReviewDeposit(ctx context.Context, requestID, status string) (*domain.DepositRequest, error) {
	switch status {
	case domain.DepositApproved, domain.DepositRejected:
	default:
		return nil, ErrInvalidStatus
	}

	existing, err := s.depositRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		zap.L().Error("failed to fetch deposit request", zap.Error(err))
		return nil, err
	}
	if existing == nil {
		return nil, ErrDepositNotFound
	}

	updated, err := s.depositRepo.UpdateStatus(ctx, requestID, status)
	if err != nil {
		zap.L().Error("failed to update deposit status", zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit request reviewed",
		zap.String("requestId", requestID),
		zap.String("status", status))
	return updated, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.ListByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to list withdrawal requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

type DashboardStats struct {
	TotalUsers         int
	ActiveUsers        int
	PendingDeposits    int
	ApprovedVolume     float64
	PendingWithdrawals int
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list users for dashboard", zap.Error(err))
		return nil, err
	}
	deposits, err := s.depositRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list deposits for dashboard", zap.Error(err))
		return nil, err
	}
	withdrawals, err := s.withdrawalRepo.ListByStatus(ctx, domain.WithdrawalPending)
	if err != nil {
		zap.L().Error("failed to list withdrawals for dashboard", zap.Error(err))
		return nil, err
	}

	stats := &DashboardStats{
		TotalUsers:         len(users),
		PendingWithdrawals: len(withdrawals),
	}
	for _, u := range users {
		u.Normalize()
		if u.Status == domain.UserStatusActive {
			stats.ActiveUsers++
		}
	}
	for _, d := range deposits {
		switch d.Status {
		case domain.DepositPending:
			stats.PendingDeposits++
		case domain.DepositApproved:
			stats.ApprovedVolume += d.Amount
		}
	}
	return stats, nil
}
