package wallet

import (
	"context"
	"net/http"
	"strconv"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/pkg/auth"
	"github.com/teamvest/teamvest/pkg/utils"
)

type Service interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Wallet, error)
}

type TxnService interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
	txnService    TxnService
}

func New(walletService Service, txnService TxnService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		txnService:    txnService,
	}
}

// GetWallet godoc
//
//	@Summary		Get the current user's wallet balances
//	@Tags			Wallet
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	wallet, err := h.walletService.GetOrCreate(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load wallet")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		MainWallet:  wallet.MainWallet,
		TotalBonus:  wallet.TotalBonus,
		DirectBonus: wallet.DirectBonus,
		LevelBonus:  wallet.LevelBonus,
		LastUpdated: wallet.LastUpdated,
	})
}

// GetTransactions godoc
//
//	@Summary		List the current user's transactions
//	@Tags			Wallet
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of transactions to return"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}
	txns, err := h.txnService.ListByUser(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}
	resp := make([]dto.TransactionResponseDTO, 0, len(txns))
	for _, txn := range txns {
		resp = append(resp, dto.TransactionResponseDTO{
			TransactionID:    txn.TransactionID,
			Type:             txn.Type,
			Amount:           txn.Amount,
			Currency:         txn.Currency,
			Status:           txn.Status,
			Description:      txn.Description,
			RelatedRequestID: txn.RelatedRequestID,
			BalanceAfter:     txn.BalanceAfter,
			Date:             txn.Date,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
