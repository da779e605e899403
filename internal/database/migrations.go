package database

import (
	"fmt"

	"github.com/astevens246/auth-fantasy-football/internal/models"
)

// Migrate brings the schema up to date. AutoMigrate is the single source
// of schema truth; index tags on the models cover the hot lookup paths
// (player.team_id, team.user_id, the unique user columns).
func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Player{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
