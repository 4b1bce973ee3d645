package dto

import (
	"time"

	"github.com/brawldash/club-sync/internal/store/schema"
)

// DailyStat is the API representation of one per-day battle rollup.
type DailyStat struct {
	Date           time.Time `json:"date"`
	Battles        int       `json:"battles"`
	Wins           int       `json:"wins"`
	Losses         int       `json:"losses"`
	StarPlayers    int       `json:"star_players"`
	TrophiesGained int       `json:"trophies_gained"`
	TrophiesLost   int       `json:"trophies_lost"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DailyStatFromSchema converts a storage rollup row to its API representation.
func DailyStatFromSchema(s *schema.DailyStat) DailyStat {
	return DailyStat{
		Date:           s.Date,
		Battles:        s.Battles,
		Wins:           s.Wins,
		Losses:         s.Losses,
		StarPlayers:    s.StarPlayers,
		TrophiesGained: s.TrophiesGained,
		TrophiesLost:   s.TrophiesLost,
		UpdatedAt:      s.UpdatedAt,
	}
}

// LeaderboardEntry is one member's row in the aggregated leaderboard. The
// rollup fields cover the requested window; Trophies is the live snapshot.
type LeaderboardEntry struct {
	Tag            string  `json:"tag"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Trophies       int     `json:"trophies"`
	Battles        int     `json:"battles"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	StarPlayers    int     `json:"star_players"`
	TrophiesGained int     `json:"trophies_gained"`
	WinRate        float64 `json:"win_rate"`
}
