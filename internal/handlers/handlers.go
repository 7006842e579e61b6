package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/teamvest/teamvest/docs"
	adminhandlers "github.com/teamvest/teamvest/internal/handlers/admin"
	authhandlers "github.com/teamvest/teamvest/internal/handlers/auth"
	deposithandlers "github.com/teamvest/teamvest/internal/handlers/deposit"
	supporthandlers "github.com/teamvest/teamvest/internal/handlers/support"
	teamhandlers "github.com/teamvest/teamvest/internal/handlers/team"
	wallethandlers "github.com/teamvest/teamvest/internal/handlers/wallet"
	withdrawalhandlers "github.com/teamvest/teamvest/internal/handlers/withdrawal"
	"github.com/teamvest/teamvest/internal/service"
	"github.com/teamvest/teamvest/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type TeamHandler interface {
	GetTeam(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	CreateDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type SupportHandler interface {
	CreateTicket(w http.ResponseWriter, r *http.Request)
	GetTickets(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUserStatus(w http.ResponseWriter, r *http.Request)
	ListDeposits(w http.ResponseWriter, r *http.Request)
	ReviewDeposit(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ReviewWithdrawal(w http.ResponseWriter, r *http.Request)
	ListTickets(w http.ResponseWriter, r *http.Request)
	ReplyTicket(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	TeamHandler       TeamHandler
	DepositHandler    DepositHandler
	WithdrawalHandler WithdrawalHandler
	WalletHandler     WalletHandler
	SupportHandler    SupportHandler
	AdminHandler      AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		TeamHandler:       teamhandlers.New(s.TeamService),
		DepositHandler:    deposithandlers.New(s.DepositService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		WalletHandler:     wallethandlers.New(s.WalletService, s.TxnService),
		SupportHandler:    supporthandlers.New(s.SupportService),
		AdminHandler:      adminhandlers.New(s.AdminService, s.WithdrawalService, s.SupportService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/profile", h.AuthHandler.Profile)
			r.Get("/team", h.TeamHandler.GetTeam)
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.CreateDeposit)
				r.Get("/", h.DepositHandler.GetDeposits)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.CreateWithdrawal)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
			})
			r.Get("/wallet", h.WalletHandler.GetWallet)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Route("/support", func(r chi.Router) {
				r.Post("/", h.SupportHandler.CreateTicket)
				r.Get("/", h.SupportHandler.GetTickets)
			})
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Get("/users", h.AdminHandler.ListUsers)
		r.Patch("/users/{id}/status", h.AdminHandler.UpdateUserStatus)
		r.Get("/deposits", h.AdminHandler.ListDeposits)
		r.Patch("/deposits/{requestID}/status", h.AdminHandler.ReviewDeposit)
		r.Get("/withdrawals", h.AdminHandler.ListWithdrawals)
		r.Patch("/withdrawals/{requestID}/status", h.AdminHandler.ReviewWithdrawal)
		r.Get("/tickets", h.AdminHandler.ListTickets)
		r.Post("/tickets/{ticketID}/reply", h.AdminHandler.ReplyTicket)
		r.Get("/dashboard", h.AdminHandler.Dashboard)
	})

	return r
}
