package team

import (
	"context"
	"net/http"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/pkg/auth"
	"github.com/teamvest/teamvest/pkg/utils"
)

type Service interface {
	BuildLevels(ctx context.Context, rootID string) ([]domain.LevelSummary, error)
}

type TeamHandler struct {
	teamService Service
}

func New(teamService Service) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetTeam godoc
//
//	@Summary		Get the referral team grouped by level
//	@Description	Walks the sponsor tree up to four levels deep and totals each level's earnings
//	@Tags			Team
//	@Produce		json
//	@Success		200	{object}	dto.TeamResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user/team [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	levels, err := h.teamService.BuildLevels(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build team")
		return
	}
	resp := dto.TeamResponseDTO{Levels: levels}
	for _, lvl := range levels {
		resp.TotalMembers += len(lvl.Members)
		resp.TotalEarnings += lvl.Earnings
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
