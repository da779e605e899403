package repository

import (
	"github.com/astevens246/auth-fantasy-football/internal/database"
	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/roster"
	"gorm.io/gorm"
)

// GormPlayerRepository is a GORM implementation of PlayerRepository
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &GormPlayerRepository{db: db}
}

// Create creates a new player
func (r *GormPlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// FindByID finds a player by ID
func (r *GormPlayerRepository) FindByID(id uint64) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, id).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// FindByNameAndPosition finds a player by exact name and position
func (r *GormPlayerRepository) FindByNameAndPosition(name string, pos models.Position) (*models.Player, error) {
	var player models.Player
	if err := r.db.Where("name = ? AND position = ?", name, pos).
		First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// List retrieves catalog players with filtering and pagination
func (r *GormPlayerRepository) List(filter PlayerFilter) ([]models.Player, int64, error) {
	var players []models.Player

	query := r.db.Model(&models.Player{})

	if filter.Position != nil {
		query = query.Where("players.position = ?", *filter.Position)
	}
	if filter.FreeAgentsOnly {
		query = query.Where("players.team_id IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.
		Order("CASE WHEN players.rank IS NULL THEN 1 ELSE 0 END, players.rank ASC, players.id ASC")

	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(filter.Page, filter.PageSize))
	}

	if err := listQuery.Find(&players).Error; err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// ListByTeam lists the players rostered by a team
func (r *GormPlayerRepository) ListByTeam(teamID uint64) ([]models.Player, error) {
	var players []models.Player
	if err := r.db.Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// AssignToTeam claims a free agent for a team. The availability and
// roster-limit checks run inside the same transaction as the write, and
// the write itself only touches rows whose team_id is still NULL, so the
// first committer wins and the loser surfaces roster.ErrPlayerUnavailable.
func (r *GormPlayerRepository) AssignToTeam(playerID, teamID uint64, limits roster.Limits) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, playerID).Error; err != nil {
			return err
		}
		if player.TeamID != nil {
			return roster.ErrPlayerUnavailable
		}

		var rostered []models.Player
		if err := tx.Where("team_id = ?", teamID).Find(&rostered).Error; err != nil {
			return err
		}
		if err := roster.CheckAddition(limits, roster.Counts(rostered), player.Position); err != nil {
			return err
		}

		result := tx.Model(&models.Player{}).
			Where("id = ? AND team_id IS NULL", playerID).
			Update("team_id", teamID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return roster.ErrPlayerUnavailable
		}

		return nil
	})
}

// RemoveFromTeam releases a player currently rostered by the team. The
// guarded update doubles as the membership check.
func (r *GormPlayerRepository) RemoveFromTeam(playerID, teamID uint64) error {
	result := r.db.Model(&models.Player{}).
		Where("id = ? AND team_id = ?", playerID, teamID).
		Update("team_id", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return roster.ErrPlayerNotOnTeam
	}
	return nil
}
