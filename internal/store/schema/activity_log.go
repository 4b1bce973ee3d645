package schema

import (
	"time"

	"github.com/brawldash/club-sync/internal/domain"
)

// ActivityLogEntry represents the activity_logs table - an append-only time
// series of per-member trophy observations. 24h/7d/monthly gain baselines are
// reconstructed by nearest-neighbor lookup in time. Retention: 30 days.
type ActivityLogEntry struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Tag is the player identifier
	Tag domain.Tag `gorm:"column:tag;not null;type:text;index:idx_activity_logs_tag_time,priority:1"`
	// Trophies is the trophy count at observation time
	Trophies int `gorm:"column:trophies;not null"`
	// TrophyDelta is the change since the prior observation
	TrophyDelta int `gorm:"column:trophy_delta;not null;default:0"`
	// ActivityType is the classification derived from TrophyDelta
	ActivityType domain.ActivityType `gorm:"column:activity_type;not null;type:text"`
	// RecordedAt is the observation time
	RecordedAt time.Time `gorm:"column:recorded_at;not null;default:now();type:timestamptz;index:idx_activity_logs_tag_time,priority:2"`
}

// TableName specifies the table name for the ActivityLogEntry model
func (ActivityLogEntry) TableName() string {
	return "activity_logs"
}
