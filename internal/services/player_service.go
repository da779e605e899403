package services

import (
	"fmt"

	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/repository"
)

// PlayerService handles catalog reads.
type PlayerService struct {
	playerRepo repository.PlayerRepository
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(playerRepo repository.PlayerRepository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
	}
}

// ListPlayersInput represents filters for browsing the player catalog.
type ListPlayersInput struct {
	Position       *models.Position
	FreeAgentsOnly bool
	Page           int
	PageSize       int
}

// ListPlayers returns catalog players ordered by rank, best first,
// unranked players last.
func (s *PlayerService) ListPlayers(input ListPlayersInput) ([]models.Player, int64, error) {
	players, total, err := s.playerRepo.List(repository.PlayerFilter{
		Position:       input.Position,
		FreeAgentsOnly: input.FreeAgentsOnly,
		Page:           input.Page,
		PageSize:       input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list players: %w", err)
	}

	return players, total, nil
}
