package dto

import "github.com/teamvest/teamvest/internal/domain"

type TeamResponseDTO struct {
	Levels        []domain.LevelSummary `json:"levels"`
	TotalMembers  int                   `json:"totalMembers"`
	TotalEarnings float64               `json:"totalEarnings"`
}
