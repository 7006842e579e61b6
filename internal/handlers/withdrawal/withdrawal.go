package withdrawal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/internal/service/withdrawalservice"
	"github.com/teamvest/teamvest/pkg/auth"
	"github.com/teamvest/teamvest/pkg/utils"
)

type Service interface {
	CreateRequest(ctx context.Context, in withdrawalservice.CreateInput) (*domain.WithdrawalRequest, error)
	GetRequests(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// CreateWithdrawal godoc
//
//	@Summary		Submit a withdrawal request
//	@Description	Files a pending withdrawal against the main wallet balance
//	@Tags			Withdrawals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request body"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.withdrawalService.CreateRequest(r.Context(), withdrawalservice.CreateInput{
		UserID:        userID,
		Fullname:      req.Fullname,
		CompanyID:     req.CompanyID,
		Amount:        req.Amount,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrInvalidIFSC),
			errors.Is(err, withdrawalservice.ErrInvalidAccount),
			errors.Is(err, withdrawalservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create withdrawal request")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalResponseDTO{
		RequestID: created.RequestID,
		Amount:    created.Amount,
		PayINR:    created.PayINR,
		Status:    created.Status,
		Date:      created.Date,
	})
}

// GetWithdrawals godoc
//
//	@Summary		List the current user's withdrawal requests
//	@Tags			Withdrawals
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	requests, err := h.withdrawalService.GetRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list withdrawal requests")
		return
	}
	resp := make([]dto.WithdrawalResponseDTO, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, dto.WithdrawalResponseDTO{
			RequestID: req.RequestID,
			Amount:    req.Amount,
			PayINR:    req.PayINR,
			Status:    req.Status,
			Date:      req.Date,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
