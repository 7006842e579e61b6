package support

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/pkg/auth"
	"github.com/teamvest/teamvest/pkg/utils"
)

type Service interface {
	CreateTicket(ctx context.Context, userID, name, query, subject, description string) (*domain.SupportTicket, error)
	GetTickets(ctx context.Context, userID string) ([]domain.SupportTicket, error)
}

type SupportHandler struct {
	supportService Service
}

func New(supportService Service) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
	}
}

// CreateTicket godoc
//
//	@Summary		Open a support ticket
//	@Tags			Support
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TicketRequestDTO	true	"Ticket request body"
//	@Success		200		{object}	dto.TicketResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/support [post]
func (h *SupportHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.TicketRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Subject == "" || req.Description == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Subject and description are required")
		return
	}
	created, err := h.supportService.CreateTicket(r.Context(), userID, req.Name, req.Query, req.Subject, req.Description)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create ticket")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ticketToDTO(created))
}

// GetTickets godoc
//
//	@Summary		List the current user's support tickets
//	@Tags			Support
//	@Produce		json
//	@Success		200	{array}		dto.TicketResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/support [get]
func (h *SupportHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	tickets, err := h.supportService.GetTickets(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list tickets")
		return
	}
	resp := make([]dto.TicketResponseDTO, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, ticketToDTO(&tickets[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func ticketToDTO(ticket *domain.SupportTicket) dto.TicketResponseDTO {
	return dto.TicketResponseDTO{
		TicketID:    ticket.TicketID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Reply:       ticket.Reply,
		Status:      ticket.Status,
		Date:        ticket.Date,
	}
}
