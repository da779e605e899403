package repository

import (
	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/roster"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by exact username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by exact email
	FindByEmail(email string) (*models.User, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team
	Create(team *models.Team) error

	// FindByID finds a team by ID
	FindByID(id uint64) (*models.Team, error)

	// ListByOwner lists a user's teams in insertion order
	ListByOwner(userID uint64) ([]models.Team, error)

	// Update updates a team
	Update(team *models.Team) error

	// DeleteWithRoster releases every rostered player and deletes the
	// team within a single transaction
	DeleteWithRoster(id uint64) error
}

// PlayerFilter holds filtering options for listing the player catalog
type PlayerFilter struct {
	Position       *models.Position
	FreeAgentsOnly bool
	Page           int
	PageSize       int
}

// PlayerRepository defines the interface for player data access
type PlayerRepository interface {
	// Create creates a new player
	Create(player *models.Player) error

	// FindByID finds a player by ID
	FindByID(id uint64) (*models.Player, error)

	// FindByNameAndPosition finds a player by exact name and position
	FindByNameAndPosition(name string, pos models.Position) (*models.Player, error)

	// List retrieves catalog players with filtering and pagination
	List(filter PlayerFilter) ([]models.Player, int64, error)

	// ListByTeam lists the players rostered by a team
	ListByTeam(teamID uint64) ([]models.Player, error)

	// AssignToTeam claims a free agent for a team. Availability and the
	// roster limits are re-checked inside the same transaction that
	// writes the assignment; a lost race fails with
	// roster.ErrPlayerUnavailable
	AssignToTeam(playerID, teamID uint64, limits roster.Limits) error

	// RemoveFromTeam releases a player currently rostered by the team;
	// fails with roster.ErrPlayerNotOnTeam otherwise
	RemoveFromTeam(playerID, teamID uint64) error
}
