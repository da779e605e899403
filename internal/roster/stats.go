package roster

import "github.com/astevens246/auth-fantasy-football/internal/models"

// PositionStat is the occupancy of one position slot group.
type PositionStat struct {
	Count int `json:"count"`
	Cap   int `json:"cap"`
}

// Stats summarizes a roster against the composition limits.
type Stats struct {
	Positions  map[models.Position]PositionStat `json:"positions"`
	TotalCount int                              `json:"total_count"`
	TotalCap   int                              `json:"total_cap"`
}

// ComputeStats derives fresh occupancy numbers from the given players.
// Every limited position appears in the result, including empty ones, so
// the sum of position counts always equals TotalCount.
func ComputeStats(limits Limits, players []models.Player) Stats {
	stats := Stats{
		Positions: make(map[models.Position]PositionStat, len(limits.PerPosition)),
		TotalCap:  limits.Total,
	}

	for pos, positionCap := range limits.PerPosition {
		stats.Positions[pos] = PositionStat{Cap: positionCap}
	}

	for _, p := range players {
		stat := stats.Positions[p.Position]
		stat.Count++
		stats.Positions[p.Position] = stat
		stats.TotalCount++
	}

	return stats
}
