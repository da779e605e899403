package services

import (
	"errors"
	"fmt"

	"github.com/astevens246/auth-fantasy-football/internal/repository"
	"github.com/astevens246/auth-fantasy-football/internal/roster"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrPlayerNotFound = errors.New("player not found")

// RosterService handles roster moves against the composition limits.
type RosterService struct {
	teamRepo   repository.TeamRepository
	playerRepo repository.PlayerRepository
	limits     roster.Limits
	logger     *zap.Logger
}

// NewRosterService creates a new RosterService.
func NewRosterService(teamRepo repository.TeamRepository, playerRepo repository.PlayerRepository, logger *zap.Logger) *RosterService {
	return &RosterService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		limits:     roster.DefaultLimits(),
		logger:     logger,
	}
}

// AddPlayer claims a free agent for the team. Checks run in a fixed
// order: team existence, ownership, activity, player existence,
// availability, total cap, position cap; the first failure is returned.
// The availability and cap checks are repeated inside the assignment
// transaction, so a concurrent add of the same player fails with
// roster.ErrPlayerUnavailable for the loser.
func (s *RosterService) AddPlayer(actorID, teamID, playerID uint64) error {
	team, err := findOwnedTeam(s.teamRepo, actorID, teamID)
	if err != nil {
		return err
	}

	if !IsTeamActive(team) {
		return ErrTeamInactive
	}

	player, err := s.playerRepo.FindByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to find player: %w", err)
	}

	// A player rostered anywhere is unavailable, including one already
	// on this team.
	if player.TeamID != nil {
		return roster.ErrPlayerUnavailable
	}

	if err := s.playerRepo.AssignToTeam(player.ID, team.ID, s.limits); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlayerNotFound
		}
		return err
	}

	s.logger.Info("player added",
		zap.Uint64("team_id", team.ID),
		zap.Uint64("player_id", player.ID),
		zap.String("position", string(player.Position)),
	)

	return nil
}

// RemovePlayer releases a player from the team's roster. Checks run in a
// fixed order: team existence, ownership, activity, player existence,
// membership.
func (s *RosterService) RemovePlayer(actorID, teamID, playerID uint64) error {
	team, err := findOwnedTeam(s.teamRepo, actorID, teamID)
	if err != nil {
		return err
	}

	if !IsTeamActive(team) {
		return ErrTeamInactive
	}

	player, err := s.playerRepo.FindByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to find player: %w", err)
	}

	if err := s.playerRepo.RemoveFromTeam(player.ID, team.ID); err != nil {
		return err
	}

	s.logger.Info("player dropped",
		zap.Uint64("team_id", team.ID),
		zap.Uint64("player_id", player.ID),
	)

	return nil
}

// RosterStats returns fresh occupancy numbers for the team's roster. A
// pure read: only the owner may ask, and nothing is mutated or cached.
func (s *RosterService) RosterStats(actorID, teamID uint64) (roster.Stats, error) {
	team, err := findOwnedTeam(s.teamRepo, actorID, teamID)
	if err != nil {
		return roster.Stats{}, err
	}

	players, err := s.playerRepo.ListByTeam(team.ID)
	if err != nil {
		return roster.Stats{}, fmt.Errorf("failed to load roster: %w", err)
	}

	return roster.ComputeStats(s.limits, players), nil
}
