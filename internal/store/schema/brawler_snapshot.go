package schema

import (
	"time"

	"github.com/brawldash/club-sync/internal/domain"
)

// BrawlerSnapshot represents the brawler_snapshots table - per
// (tag, brawler, capture day) power/trophy records. Only the most recent
// snapshot set before today matters for delta computation; history is kept
// for replay. Retention: 60 days.
type BrawlerSnapshot struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Tag is the player identifier
	Tag domain.Tag `gorm:"column:tag;not null;type:text;index:idx_brawler_snapshots_tag_day,priority:1"`
	// BrawlerName identifies the brawler
	BrawlerName string `gorm:"column:brawler_name;not null;type:text"`
	// CaptureDay is the calendar day (UTC midnight) the snapshot was taken
	CaptureDay time.Time `gorm:"column:capture_day;not null;type:date;index:idx_brawler_snapshots_tag_day,priority:2"`
	// Power is the brawler power level
	Power int `gorm:"column:power;not null;default:0"`
	// Trophies is the brawler trophy count
	Trophies int `gorm:"column:trophies;not null;default:0"`
	// Rank is the brawler rank
	Rank int `gorm:"column:rank;not null;default:0"`
	// Gadgets is the unlocked gadget count
	Gadgets int `gorm:"column:gadgets;not null;default:0"`
	// StarPowers is the unlocked star power count
	StarPowers int `gorm:"column:star_powers;not null;default:0"`
	// Gears is the unlocked gear count
	Gears int `gorm:"column:gears;not null;default:0"`
}

// TableName specifies the table name for the BrawlerSnapshot model
func (BrawlerSnapshot) TableName() string {
	return "brawler_snapshots"
}
