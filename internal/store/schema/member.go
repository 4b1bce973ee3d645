package schema

import (
	"time"

	"github.com/brawldash/club-sync/internal/domain"
)

// Member represents the members table - the current snapshot of one club
// player. Rows are replaced wholesale on every sync, keyed by tag; a departed
// member is marked inactive, never deleted.
type Member struct {
	// Tag is the stable unique player identifier in canonical form ("#ABC")
	Tag domain.Tag `gorm:"column:tag;primaryKey;type:text"`
	// Name is the current display name
	Name string `gorm:"column:name;not null;type:text"`
	// Role is the club role as reported by upstream
	Role string `gorm:"column:role;not null;type:text"`
	// Trophies is the current trophy count
	Trophies int `gorm:"column:trophies;not null;default:0"`
	// HighestTrophies is the all-time trophy high
	HighestTrophies int `gorm:"column:highest_trophies;not null;default:0"`
	// ExpLevel is the account experience level
	ExpLevel int `gorm:"column:exp_level;not null;default:0"`
	// CurrentRank is the current ranked tier label (e.g. "Gold II")
	CurrentRank string `gorm:"column:current_rank;type:text"`
	// HighestRank is the highest ranked tier label ever reached
	HighestRank string `gorm:"column:highest_rank;type:text"`
	// WinRate is the win rate over the fetched battle log, in percent
	WinRate float64 `gorm:"column:win_rate;not null;default:0"`
	// BrawlerCount is the number of unlocked brawlers
	BrawlerCount int `gorm:"column:brawler_count;not null;default:0"`
	// TrioVictories is the 3v3 victory counter
	TrioVictories int `gorm:"column:trio_victories;not null;default:0"`
	// SoloVictories is the solo showdown victory counter
	SoloVictories int `gorm:"column:solo_victories;not null;default:0"`
	// DuoVictories is the duo showdown victory counter
	DuoVictories int `gorm:"column:duo_victories;not null;default:0"`
	// IsActive indicates current club membership
	IsActive bool `gorm:"column:is_active;not null;default:true;index"`
	// LastUpdated is the time of the sync run that last refreshed this row
	LastUpdated time.Time `gorm:"column:last_updated;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Member model
func (Member) TableName() string {
	return "members"
}
