package deposit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/internal/service/depositservice"
	"github.com/teamvest/teamvest/pkg/auth"
	"github.com/teamvest/teamvest/pkg/utils"
)

type Service interface {
	CreateRequest(ctx context.Context, userID, name, currency string, amount float64, txnID, receiptURL string) (*domain.DepositRequest, error)
	GetRequests(ctx context.Context, userID string) ([]domain.DepositRequest, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// CreateDeposit godoc
//
//	@Summary		Submit a deposit request
//	@Description	Files a pending deposit request that an administrator reviews later
//	@Tags			Deposits
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request body"
//	@Success		200		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/deposits [post]
func (h *DepositHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.depositService.CreateRequest(r.Context(), userID, req.Name, req.Currency, req.Amount, req.TransactionID, req.ReceiptURL)
	if err != nil {
		if errors.Is(err, depositservice.ErrInvalidCurrency) || errors.Is(err, depositservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create deposit request")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		RequestID: created.RequestID,
		Currency:  created.Currency,
		Amount:    created.Amount,
		Status:    created.Status,
		Date:      created.Date,
	})
}

// GetDeposits godoc
//
//	@Summary		List the current user's deposit requests
//	@Tags			Deposits
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	requests, err := h.depositService.GetRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list deposit requests")
		return
	}
	resp := make([]dto.DepositResponseDTO, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, dto.DepositResponseDTO{
			RequestID: req.RequestID,
			Currency:  req.Currency,
			Amount:    req.Amount,
			Status:    req.Status,
			Date:      req.Date,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
