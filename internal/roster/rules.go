// Package roster holds the roster composition rules. It is pure policy:
// callers supply player lists or counts, storage stays elsewhere.
package roster

import (
	"errors"
	"fmt"

	"github.com/astevens246/auth-fantasy-football/internal/models"
)

var (
	ErrRosterFull           = errors.New("roster is full")
	ErrPositionLimitReached = errors.New("position limit reached")
	ErrPlayerUnavailable    = errors.New("player is already on a team")
	ErrPlayerNotOnTeam      = errors.New("player is not on this team")
	ErrInvalidPosition      = errors.New("invalid position")
)

// Limits is the maximum roster composition a team may hold.
type Limits struct {
	PerPosition map[models.Position]int
	Total       int
}

// DefaultLimits returns the league composition limits: 2 QB, 3 RB, 3 WR,
// 2 TE and 10 players overall.
func DefaultLimits() Limits {
	return Limits{
		PerPosition: map[models.Position]int{
			models.PositionQB: 2,
			models.PositionRB: 3,
			models.PositionWR: 3,
			models.PositionTE: 2,
		},
		Total: 10,
	}
}

// PositionCap returns the limit for a single position, zero when the
// position is not rosterable.
func (l Limits) PositionCap(pos models.Position) int {
	return l.PerPosition[pos]
}

// Counts tallies rostered players per position.
func Counts(players []models.Player) map[models.Position]int {
	counts := make(map[models.Position]int, len(players))
	for _, p := range players {
		counts[p.Position]++
	}
	return counts
}

// CheckAddition validates adding one player at pos to a roster that
// currently holds the given per-position counts. The total cap is checked
// before the position cap; the first violated rule is returned.
func CheckAddition(limits Limits, counts map[models.Position]int, pos models.Position) error {
	positionCap, ok := limits.PerPosition[pos]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total >= limits.Total {
		return fmt.Errorf("%w: %d players", ErrRosterFull, limits.Total)
	}

	if counts[pos] >= positionCap {
		return fmt.Errorf("%w: %s capped at %d", ErrPositionLimitReached, pos, positionCap)
	}

	return nil
}
