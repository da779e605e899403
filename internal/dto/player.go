package dto

import (
	"github.com/astevens246/auth-fantasy-football/internal/models"
)

// PlayerDTO represents a catalog player in API responses
type PlayerDTO struct {
	ID            uint64          `json:"id"`
	Name          string          `json:"name"`
	Position      models.Position `json:"position"`
	NFLTeam       string          `json:"nfl_team"`
	Rank          *int            `json:"rank"`
	FantasyPoints *int            `json:"fantasy_points"`
	TeamID        *uint64         `json:"team_id"`
}

// ToPlayerDTO converts a Player model to PlayerDTO
func ToPlayerDTO(player models.Player) PlayerDTO {
	return PlayerDTO{
		ID:            player.ID,
		Name:          player.Name,
		Position:      player.Position,
		NFLTeam:       player.NFLTeam,
		Rank:          player.Rank,
		FantasyPoints: player.FantasyPoints,
		TeamID:        player.TeamID,
	}
}

// ToPlayerDTOs converts a slice of Player models
func ToPlayerDTOs(players []models.Player) []PlayerDTO {
	dtos := make([]PlayerDTO, len(players))
	for i, p := range players {
		dtos[i] = ToPlayerDTO(p)
	}
	return dtos
}
