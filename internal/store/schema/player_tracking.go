package schema

import (
	"time"

	"github.com/brawldash/club-sync/internal/domain"
)

// PlayerTracking represents the player_trackings table - per-tag accumulators
// maintained by the brawler delta tracker. Counters only ever increase.
type PlayerTracking struct {
	// Tag is the player identifier
	Tag domain.Tag `gorm:"column:tag;primaryKey;type:text"`
	// PowerUps is the accumulated sum of positive power-level increases
	PowerUps int `gorm:"column:power_ups;not null;default:0"`
	// Unlocks is the accumulated count of newly unlocked brawlers
	Unlocks int `gorm:"column:unlocks;not null;default:0"`
	// TrackingStartedAt is when tracking began for this tag
	TrackingStartedAt time.Time `gorm:"column:tracking_started_at;not null;default:now();type:timestamptz"`
	// LastUpdated is when an accumulator last changed
	LastUpdated time.Time `gorm:"column:last_updated;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PlayerTracking model
func (PlayerTracking) TableName() string {
	return "player_trackings"
}
