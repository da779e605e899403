package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/astevens246/auth-fantasy-football/internal/constants"
	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/repository"
	"github.com/astevens246/auth-fantasy-football/internal/roster"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrNotTeamOwner    = errors.New("you do not own this team")
	ErrTeamInactive    = errors.New("team is not active")
	ErrInvalidTeamName = errors.New("team name must be between 3 and 100 characters")
)

// SeasonStart is the cutoff separating the current season from relics of
// the previous one. Teams created at or after this instant are active;
// earlier teams are locked for every operation except deletion.
var SeasonStart = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

// IsTeamActive reports whether the team can still be managed. Derived
// from created_at on every call; never stored or cached.
func IsTeamActive(team *models.Team) bool {
	return !team.CreatedAt.Before(SeasonStart)
}

// TeamService handles team lifecycle business logic.
type TeamService struct {
	teamRepo   repository.TeamRepository
	playerRepo repository.PlayerRepository
	limits     roster.Limits
	logger     *zap.Logger
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, playerRepo repository.PlayerRepository, logger *zap.Logger) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		limits:     roster.DefaultLimits(),
		logger:     logger,
	}
}

// CreateTeam creates a team owned by the given user. Ownership is fixed
// at creation and never reassigned.
func (s *TeamService) CreateTeam(ownerID uint64, name string) (*models.Team, error) {
	validName, err := validateTeamName(name)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:   validName,
		UserID: ownerID,
	}

	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.logger.Info("team created",
		zap.Uint64("team_id", team.ID),
		zap.Uint64("user_id", ownerID),
	)

	return team, nil
}

// ListTeams returns the user's teams in insertion order.
func (s *TeamService) ListTeams(ownerID uint64) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetTeamWithRoster returns a team together with its rostered players and
// fresh roster statistics. Only the owner may view it.
func (s *TeamService) GetTeamWithRoster(actorID, teamID uint64) (*models.Team, []models.Player, roster.Stats, error) {
	team, err := findOwnedTeam(s.teamRepo, actorID, teamID)
	if err != nil {
		return nil, nil, roster.Stats{}, err
	}

	players, err := s.playerRepo.ListByTeam(team.ID)
	if err != nil {
		return nil, nil, roster.Stats{}, fmt.Errorf("failed to load roster: %w", err)
	}

	return team, players, roster.ComputeStats(s.limits, players), nil
}

// RenameTeam changes a team's name. Checks run in a fixed order: team
// existence, ownership, activity, then name validity; the first failure
// is returned.
func (s *TeamService) RenameTeam(actorID, teamID uint64, name string) (*models.Team, error) {
	team, err := findOwnedTeam(s.teamRepo, actorID, teamID)
	if err != nil {
		return nil, err
	}

	if !IsTeamActive(team) {
		return nil, ErrTeamInactive
	}

	validName, err := validateTeamName(name)
	if err != nil {
		return nil, err
	}

	team.Name = validName
	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to rename team: %w", err)
	}

	s.logger.Info("team renamed", zap.Uint64("team_id", team.ID))
	return team, nil
}

// DeleteTeam removes a team after releasing its whole roster in one
// transaction. Inactive teams can still be deleted; there is no activity
// check here.
func (s *TeamService) DeleteTeam(actorID, teamID uint64) error {
	team, err := findOwnedTeam(s.teamRepo, actorID, teamID)
	if err != nil {
		return err
	}

	if err := s.teamRepo.DeleteWithRoster(team.ID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	s.logger.Info("team deleted",
		zap.Uint64("team_id", team.ID),
		zap.Uint64("user_id", actorID),
	)

	return nil
}

// findOwnedTeam loads a team and verifies ownership. An unknown team is
// ErrTeamNotFound; a known team owned by someone else is ErrNotTeamOwner.
func findOwnedTeam(teamRepo repository.TeamRepository, actorID, teamID uint64) (*models.Team, error) {
	team, err := teamRepo.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if team.UserID != actorID {
		return nil, ErrNotTeamOwner
	}

	return team, nil
}

func validateTeamName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < constants.MinTeamNameLength || len(trimmed) > constants.MaxTeamNameLength {
		return "", ErrInvalidTeamName
	}
	return trimmed, nil
}
