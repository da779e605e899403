package models

import (
	"time"

	"gorm.io/gorm"
)

type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
)

// Valid reports whether p is one of the four rosterable positions.
func (p Position) Valid() bool {
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE:
		return true
	}
	return false
}

type Player struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"type:varchar(100);not null" json:"name"`
	Position      Position       `gorm:"type:varchar(10);not null" json:"position"`
	NFLTeam       string         `gorm:"type:varchar(10);not null" json:"nfl_team"`
	Rank          *int           `json:"rank"`
	FantasyPoints *int           `json:"fantasy_points"`
	TeamID        *uint64        `gorm:"index" json:"team_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team *Team `gorm:"foreignKey:TeamID" json:"-"`
}
