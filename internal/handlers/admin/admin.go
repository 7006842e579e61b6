package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/internal/service/adminservice"
	"github.com/teamvest/teamvest/internal/service/supportservice"
	"github.com/teamvest/teamvest/internal/service/withdrawalservice"
	"github.com/teamvest/teamvest/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUserStatus(ctx context.Context, userID, status string) (*domain.User, error)
	ListDeposits(ctx context.Context, status string) ([]domain.DepositRequest, error)
	ReviewDeposit(ctx context.Context, requestID, status string) (*domain.DepositRequest, error)
	ListWithdrawals(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
	Dashboard(ctx context.Context) (*adminservice.DashboardStats, error)
}

type WithdrawalService interface {
	Review(ctx context.Context, requestID, status string) (*domain.WithdrawalRequest, error)
}

type SupportService interface {
	GetAllTickets(ctx context.Context) ([]domain.SupportTicket, error)
	Reply(ctx context.Context, ticketID, reply, status string) (*domain.SupportTicket, error)
}

type AdminHandler struct {
	adminService      Service
	withdrawalService WithdrawalService
	supportService    SupportService
}

func New(adminService Service, withdrawalService WithdrawalService, supportService SupportService) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		withdrawalService: withdrawalService,
		supportService:    supportService,
	}
}

// ListUsers godoc
//
//	@Summary		List all registered users
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.AdminUserDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	resp := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		u.Normalize()
		resp = append(resp, dto.AdminUserDTO{
			UserID:    u.ShortID(),
			Name:      u.Name,
			Email:     u.Email,
			Mobile:    u.Mobile,
			SponsorID: domain.ShortID(u.SponsorID),
			Country:   u.Country,
			Package:   u.Package,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateUserStatus godoc
//
//	@Summary		Activate or deactivate a user
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User id"
//	@Param			request	body		dto.UserStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.AdminUserDTO
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/users/{id}/status [patch]
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	var req dto.UserStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.adminService.UpdateUserStatus(r.Context(), userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user status")
		}
		return
	}
	user.Normalize()
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminUserDTO{
		UserID:    user.ShortID(),
		Name:      user.Name,
		Email:     user.Email,
		Mobile:    user.Mobile,
		SponsorID: domain.ShortID(user.SponsorID),
		Country:   user.Country,
		Package:   user.Package,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	})
}

// ListDeposits godoc
//
//	@Summary		List deposit requests
//	@Tags			Admin
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Success		200		{array}		dto.AdminDepositDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/deposits [get]
func (h *AdminHandler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	requests, err := h.adminService.ListDeposits(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list deposit requests")
		return
	}
	resp := make([]dto.AdminDepositDTO, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, depositToDTO(&req))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ReviewDeposit godoc
//
//	@Summary		Approve or reject a deposit request
//	@Description	Approved deposits are credited to the user's wallet by the payout worker
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		string				true	"Deposit request id"
//	@Param			request		body		dto.RequestStatusDTO	true	"New status"
//	@Success		200			{object}	dto.AdminDepositDTO
//	@Failure		400			{object}	utils.Response	"Invalid status"
//	@Failure		404			{object}	utils.Response	"Deposit request not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/deposits/{requestID}/status [patch]
func (h *AdminHandler) ReviewDeposit(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")
	var req dto.RequestStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.adminService.ReviewDeposit(r.Context(), requestID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminservice.ErrDepositNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to review deposit request")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, depositToDTO(updated))
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawal requests
//	@Tags			Admin
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Success		200		{array}		dto.AdminWithdrawalDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	requests, err := h.adminService.ListWithdrawals(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list withdrawal requests")
		return
	}
	resp := make([]dto.AdminWithdrawalDTO, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, withdrawalToDTO(&req))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ReviewWithdrawal godoc
//
//	@Summary		Complete or fail a withdrawal request
//	@Description	Completing a withdrawal debits the user's main wallet and records a transaction
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		string				true	"Withdrawal request id"
//	@Param			request		body		dto.RequestStatusDTO	true	"New status"
//	@Success		200			{object}	dto.AdminWithdrawalDTO
//	@Failure		400			{object}	utils.Response	"Invalid status"
//	@Failure		404			{object}	utils.Response	"Withdrawal request not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/withdrawals/{requestID}/status [patch]
func (h *AdminHandler) ReviewWithdrawal(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")
	var req dto.RequestStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.withdrawalService.Review(r.Context(), requestID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to review withdrawal request")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, withdrawalToDTO(updated))
}

// ListTickets godoc
//
//	@Summary		List all support tickets
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.TicketResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/tickets [get]
func (h *AdminHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.supportService.GetAllTickets(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list tickets")
		return
	}
	resp := make([]dto.TicketResponseDTO, 0, len(tickets))
	for _, ticket := range tickets {
		resp = append(resp, dto.TicketResponseDTO{
			TicketID:    ticket.TicketID,
			Subject:     ticket.Subject,
			Description: ticket.Description,
			Reply:       ticket.Reply,
			Status:      ticket.Status,
			Date:        ticket.Date,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ReplyTicket godoc
//
//	@Summary		Reply to a support ticket
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			ticketID	path		string					true	"Ticket id"
//	@Param			request		body		dto.TicketReplyRequestDTO	true	"Reply body"
//	@Success		200			{object}	dto.TicketResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Ticket not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/tickets/{ticketID}/reply [post]
func (h *AdminHandler) ReplyTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "ticketID")
	var req dto.TicketReplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Reply == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status := req.Status
	if status == "" {
		status = domain.TicketReplied
	}
	ticket, err := h.supportService.Reply(r.Context(), ticketID, req.Reply, status)
	if err != nil {
		switch {
		case errors.Is(err, supportservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, supportservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reply to ticket")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TicketResponseDTO{
		TicketID:    ticket.TicketID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Reply:       ticket.Reply,
		Status:      ticket.Status,
		Date:        ticket.Date,
	})
}

// Dashboard godoc
//
//	@Summary		Back-office summary counters
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		TotalUsers:         stats.TotalUsers,
		ActiveUsers:        stats.ActiveUsers,
		PendingDeposits:    stats.PendingDeposits,
		ApprovedVolume:     stats.ApprovedVolume,
		PendingWithdrawals: stats.PendingWithdrawals,
	})
}

func depositToDTO(req *domain.DepositRequest) dto.AdminDepositDTO {
	return dto.AdminDepositDTO{
		RequestID:     req.RequestID,
		UserID:        domain.ShortID(req.UserID),
		Name:          req.Name,
		Currency:      req.Currency,
		Amount:        req.Amount,
		TransactionID: req.TxnID,
		ReceiptURL:    req.ReceiptURL,
		Status:        req.Status,
		Credited:      req.Credited,
		Date:          req.Date,
	}
}

func withdrawalToDTO(req *domain.WithdrawalRequest) dto.AdminWithdrawalDTO {
	return dto.AdminWithdrawalDTO{
		RequestID:     req.RequestID,
		UserID:        domain.ShortID(req.UserID),
		Fullname:      req.Fullname,
		Amount:        req.Amount,
		PayINR:        req.PayINR,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
		Status:        req.Status,
		Date:          req.Date,
	}
}
