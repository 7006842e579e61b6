package service

import (
	"github.com/teamvest/teamvest/internal/config"
	"github.com/teamvest/teamvest/internal/repo"
	"github.com/teamvest/teamvest/internal/service/adminservice"
	"github.com/teamvest/teamvest/internal/service/authservice"
	"github.com/teamvest/teamvest/internal/service/depositservice"
	"github.com/teamvest/teamvest/internal/service/supportservice"
	"github.com/teamvest/teamvest/internal/service/teamservice"
	"github.com/teamvest/teamvest/internal/service/txnservice"
	"github.com/teamvest/teamvest/internal/service/walletservice"
	"github.com/teamvest/teamvest/internal/service/withdrawalservice"

	pkgauth "github.com/teamvest/teamvest/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	TeamService       *teamservice.Service
	DepositService    *depositservice.Service
	WithdrawalService *withdrawalservice.Service
	WalletService     *walletservice.Service
	TxnService        *txnservice.Service
	SupportService    *supportservice.Service
	AdminService      *adminservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories) *Services {
	walletService := walletservice.New(repo.WalletRepo)
	txnService := txnservice.New(repo.TransactionRepo, repo.WalletRepo)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	teamService := teamservice.New(repo.UserRepo, repo.DepositRepo, teamservice.RateTable{
		USD:        cfg.RateUSD,
		Crypto:     cfg.RateCrypto,
		Commission: cfg.CommissionRate,
	})
	depositService := depositservice.New(repo.DepositRepo)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, walletService, txnService)
	supportService := supportservice.New(repo.TicketRepo)
	adminService := adminservice.New(repo.UserRepo, repo.DepositRepo, repo.WithdrawalRepo)

	return &Services{
		AuthService:       authService,
		TeamService:       teamService,
		DepositService:    depositService,
		WithdrawalService: withdrawalService,
		WalletService:     walletService,
		TxnService:        txnService,
		SupportService:    supportService,
		AdminService:      adminService,
	}
}
