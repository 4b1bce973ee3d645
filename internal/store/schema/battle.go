package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/brawldash/club-sync/internal/domain"
)

// Battle represents the battles table - one canonical battle result per
// (tag, battle_time). The upstream log returns the same battle for every club
// member who played in it, so insertion must be an idempotent upsert on the
// unique index, never a blind insert.
type Battle struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Tag is the club member this row was recorded for
	Tag domain.Tag `gorm:"column:tag;not null;type:text;uniqueIndex:idx_battles_tag_time,priority:1"`
	// BattleTime is the decoded upstream battle timestamp
	BattleTime time.Time `gorm:"column:battle_time;not null;type:timestamptz;uniqueIndex:idx_battles_tag_time,priority:2;index"`
	// Mode is the game mode (e.g. "gemGrab", "soloShowdown")
	Mode string `gorm:"column:mode;not null;type:text"`
	// Map is the map name
	Map string `gorm:"column:map;type:text"`
	// Result is the canonical outcome (victory/defeat/draw/unknown)
	Result domain.BattleResult `gorm:"column:result;not null;type:text"`
	// TrophyChange is the trophy delta for this battle, zero when not reported
	TrophyChange int `gorm:"column:trophy_change;not null;default:0"`
	// IsStarPlayer indicates this member was the battle's star player
	IsStarPlayer bool `gorm:"column:is_star_player;not null;default:false"`
	// BrawlerName is the brawler this member played
	BrawlerName string `gorm:"column:brawler_name;type:text"`
	// BrawlerPower is the power level of that brawler
	BrawlerPower int `gorm:"column:brawler_power;not null;default:0"`
	// Roster is the serialized teams/players of the match, nil when
	// serialization failed (swallowed, not fatal)
	Roster datatypes.JSON `gorm:"column:roster;type:jsonb"`
	// CreatedAt is when this row was ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Battle model
func (Battle) TableName() string {
	return "battles"
}
