package dto

import (
	"time"

	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/roster"
)

// TeamDTO represents a team in API responses. Active is derived from the
// creation timestamp at conversion time; it is never stored.
type TeamDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	UserID    uint64    `json:"user_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamDetailDTO is the owner's view of one team: the team itself, the
// rostered players and fresh roster statistics.
type TeamDetailDTO struct {
	Team    TeamDTO      `json:"team"`
	Players []PlayerDTO  `json:"players"`
	Stats   roster.Stats `json:"stats"`
}

// ToTeamDTO converts a Team model to TeamDTO
func ToTeamDTO(team models.Team, active bool) TeamDTO {
	return TeamDTO{
		ID:        team.ID,
		Name:      team.Name,
		UserID:    team.UserID,
		Active:    active,
		CreatedAt: team.CreatedAt,
	}
}
