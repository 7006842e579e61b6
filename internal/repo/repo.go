package repo

import (
	"github.com/teamvest/teamvest/internal/pg"
	depositrepo "github.com/teamvest/teamvest/internal/repo/deposit-repo"
	ticketrepo "github.com/teamvest/teamvest/internal/repo/ticket-repo"
	transactionrepo "github.com/teamvest/teamvest/internal/repo/transaction-repo"
	userrepo "github.com/teamvest/teamvest/internal/repo/user-repo"
	walletrepo "github.com/teamvest/teamvest/internal/repo/wallet-repo"
	withdrawalrepo "github.com/teamvest/teamvest/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	DepositRepo     *depositrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
	WalletRepo      *walletrepo.Repository
	TransactionRepo *transactionrepo.Repository
	TicketRepo      *ticketrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		DepositRepo:     depositrepo.New(conn, txManager),
		WithdrawalRepo:  withdrawalrepo.New(conn),
		WalletRepo:      walletrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		TicketRepo:      ticketrepo.New(conn),
	}
}
