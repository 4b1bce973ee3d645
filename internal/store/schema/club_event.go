package schema

import (
	"time"

	"github.com/brawldash/club-sync/internal/domain"
)

// ClubEvent represents the club_events table - the append-only audit trail of
// membership events. The notification deduplicator reads it to avoid
// re-announcing the same join/leave across overlapping runs.
type ClubEvent struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventType is the membership event type (join, leave, ...)
	EventType domain.EventType `gorm:"column:event_type;not null;type:text;index:idx_club_events_type_tag,priority:1"`
	// Tag is the player the event concerns
	Tag domain.Tag `gorm:"column:tag;not null;type:text;index:idx_club_events_type_tag,priority:2"`
	// Name is the player display name at event time
	Name string `gorm:"column:name;not null;type:text"`
	// OccurredAt is when the event was detected
	OccurredAt time.Time `gorm:"column:occurred_at;not null;default:now();type:timestamptz;index"`
}

// TableName specifies the table name for the ClubEvent model
func (ClubEvent) TableName() string {
	return "club_events"
}
