package repository

import (
	"github.com/astevens246/auth-fantasy-football/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a new team
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// FindByID finds a team by ID
func (r *GormTeamRepository) FindByID(id uint64) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByOwner lists a user's teams in insertion order
func (r *GormTeamRepository) ListByOwner(userID uint64) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates a team
func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// DeleteWithRoster releases every rostered player and deletes the team in a transaction
func (r *GormTeamRepository) DeleteWithRoster(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Release the roster first so no player is left pointing at a
		// deleted team.
		if err := tx.Model(&models.Player{}).
			Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Team{}, id).Error
	})
}
