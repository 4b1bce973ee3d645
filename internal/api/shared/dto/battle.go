package dto

import (
	"encoding/json"
	"time"

	"github.com/brawldash/club-sync/internal/store/schema"
)

// Battle is the API representation of one normalized battle row.
type Battle struct {
	ID           uint64          `json:"id"`
	Tag          string          `json:"tag"`
	BattleTime   time.Time       `json:"battle_time"`
	Mode         string          `json:"mode"`
	Map          string          `json:"map,omitempty"`
	Result       string          `json:"result"`
	TrophyChange int             `json:"trophy_change"`
	IsStarPlayer bool            `json:"is_star_player"`
	BrawlerName  string          `json:"brawler_name,omitempty"`
	BrawlerPower int             `json:"brawler_power"`
	Roster       json.RawMessage `json:"roster,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BattlePage is one page of battles with pagination cursors.
type BattlePage struct {
	Items      []Battle `json:"items"`
	Limit      int      `json:"limit"`
	Offset     int      `json:"offset"`
	NextOffset *int     `json:"next_offset,omitempty"`
}

// BattleFromSchema converts a storage battle row to its API representation.
func BattleFromSchema(b *schema.Battle) Battle {
	return Battle{
		ID:           b.ID,
		Tag:          b.Tag.String(),
		BattleTime:   b.BattleTime,
		Mode:         b.Mode,
		Map:          b.Map,
		Result:       string(b.Result),
		TrophyChange: b.TrophyChange,
		IsStarPlayer: b.IsStarPlayer,
		BrawlerName:  b.BrawlerName,
		BrawlerPower: b.BrawlerPower,
		Roster:       json.RawMessage(b.Roster),
		CreatedAt:    b.CreatedAt,
	}
}
