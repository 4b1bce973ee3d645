package schema

import (
	"time"

	"github.com/brawldash/club-sync/internal/domain"
)

// MemberHistory represents the member_histories table - one row per tag ever
// seen in the club, tracking join/leave cycles.
//
// Invariants: TimesJoined >= 1 once the row exists; TimesLeft <= TimesJoined.
type MemberHistory struct {
	// Tag is the player identifier, canonical form
	Tag domain.Tag `gorm:"column:tag;primaryKey;type:text"`
	// Name is the display name at the last observation
	Name string `gorm:"column:name;not null;type:text"`
	// FirstSeenAt is when the tag was first observed in the roster
	FirstSeenAt time.Time `gorm:"column:first_seen_at;not null;type:timestamptz"`
	// LastSeenAt is when the tag was most recently observed in the roster
	LastSeenAt time.Time `gorm:"column:last_seen_at;not null;type:timestamptz"`
	// LastLeftAt is when the tag most recently departed, nil if never
	LastLeftAt *time.Time `gorm:"column:last_left_at;type:timestamptz"`
	// TimesJoined counts roster appearances after absences (including the first)
	TimesJoined int `gorm:"column:times_joined;not null;default:1"`
	// TimesLeft counts departures
	TimesLeft int `gorm:"column:times_left;not null;default:0"`
	// IsCurrentMember indicates the tag was present in the latest roster
	IsCurrentMember bool `gorm:"column:is_current_member;not null;default:true;index"`
	// RoleAtLeave is the role snapshotted at the moment of the last departure
	RoleAtLeave string `gorm:"column:role_at_leave;type:text"`
	// TrophiesAtLeave is the trophy count snapshotted at the last departure
	TrophiesAtLeave int `gorm:"column:trophies_at_leave;not null;default:0"`
}

// TableName specifies the table name for the MemberHistory model
func (MemberHistory) TableName() string {
	return "member_histories"
}
