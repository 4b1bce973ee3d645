package schema

import (
	"time"

	"github.com/brawldash/club-sync/internal/domain"
)

// DailyStat represents the daily_stats table - per (tag, date) battle rollups
// used for weekly/28-day statistics without re-scanning raw battles. Rows are
// recomputed from the deduplicated battles table and overwritten as new
// battles arrive for the day.
type DailyStat struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Tag is the player identifier
	Tag domain.Tag `gorm:"column:tag;not null;type:text;uniqueIndex:idx_daily_stats_tag_date,priority:1"`
	// Date is the calendar day (UTC midnight) the rollup covers
	Date time.Time `gorm:"column:date;not null;type:date;uniqueIndex:idx_daily_stats_tag_date,priority:2"`
	// Battles is the number of battles recorded for the day
	Battles int `gorm:"column:battles;not null;default:0"`
	// Wins is the number of victories
	Wins int `gorm:"column:wins;not null;default:0"`
	// Losses is the number of defeats
	Losses int `gorm:"column:losses;not null;default:0"`
	// StarPlayers is the number of star player awards
	StarPlayers int `gorm:"column:star_players;not null;default:0"`
	// TrophiesGained is the sum of positive trophy deltas
	TrophiesGained int `gorm:"column:trophies_gained;not null;default:0"`
	// TrophiesLost is the absolute sum of negative trophy deltas
	TrophiesLost int `gorm:"column:trophies_lost;not null;default:0"`
	// UpdatedAt is when the rollup was last recomputed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DailyStat model
func (DailyStat) TableName() string {
	return "daily_stats"
}
