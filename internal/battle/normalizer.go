package battle

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/providers/vendors/brawlstars"
	"github.com/brawldash/club-sync/internal/store/schema"
)

// maxFutureSkew is how far past local time the newest battle in a batch may
// sit before the batch is treated as coming from a skewed upstream clock.
const maxFutureSkew = 60 * time.Second

// rosterTeam is one team in the serialized match roster
type rosterTeam struct {
	Players []rosterPlayer `json:"players"`
}

// rosterPlayer is one participant in the serialized match roster
type rosterPlayer struct {
	Tag     string `json:"tag"`
	Name    string `json:"name"`
	Brawler string `json:"brawler"`
	Power   int    `json:"power"`
}

// Normalizer converts raw battle-log items into canonical battle rows
type Normalizer struct {
	json adapter.JSON
}

// NewNormalizer creates a new battle normalizer
func NewNormalizer(json adapter.JSON) *Normalizer {
	return &Normalizer{json: json}
}

// Normalize converts one raw battle-log item into the canonical battle record
// for the owning member. Returns an error only when the battle timestamp is
// undecodable; every other malformed field degrades to a zero value.
func (n *Normalizer) Normalize(raw *brawlstars.RawBattle, owner domain.Tag) (*schema.Battle, error) {
	battleTime, err := brawlstars.DecodeBattleTime(raw.BattleTime)
	if err != nil {
		return nil, fmt.Errorf("failed to decode battle time: %w", err)
	}

	mode := raw.Event.Mode
	if mode == "" {
		mode = raw.Battle.Mode
	}

	b := &schema.Battle{
		Tag:          owner,
		BattleTime:   battleTime,
		Mode:         mode,
		Map:          raw.Event.Map,
		Result:       inferResult(raw),
		TrophyChange: raw.Battle.TrophyChange,
	}

	if raw.Battle.StarPlayer != nil {
		b.IsStarPlayer = domain.NormalizeTag(raw.Battle.StarPlayer.Tag) == owner
	}

	if played, ok := findParticipant(raw, owner); ok {
		b.BrawlerName = played.Brawler.Name
		b.BrawlerPower = played.Brawler.Power
	}

	// A roster that will not serialize is dropped, not fatal.
	if roster := buildRoster(raw); roster != nil {
		data, err := n.json.Marshal(roster)
		if err != nil {
			logger.Warn("failed to serialize battle roster",
				zap.String("tag", owner.String()),
				zap.Error(err))
		} else {
			b.Roster = data
		}
	}

	return b, nil
}

// inferResult resolves the battle outcome. Placement modes report a rank
// instead of a result field; rank 1-4 counts as a win.
func inferResult(raw *brawlstars.RawBattle) domain.BattleResult {
	switch raw.Battle.Result {
	case "victory":
		return domain.ResultVictory
	case "defeat":
		return domain.ResultDefeat
	case "draw":
		return domain.ResultDraw
	}

	if raw.Battle.Rank > 0 {
		if raw.Battle.Rank <= domain.ShowdownWinRank {
			return domain.ResultVictory
		}
		return domain.ResultDefeat
	}

	return domain.ResultUnknown
}

// findParticipant locates the owning member in the teams or players roster.
func findParticipant(raw *brawlstars.RawBattle, owner domain.Tag) (*brawlstars.BattlePlayer, bool) {
	for ti := range raw.Battle.Teams {
		for pi := range raw.Battle.Teams[ti] {
			if domain.NormalizeTag(raw.Battle.Teams[ti][pi].Tag) == owner {
				return &raw.Battle.Teams[ti][pi], true
			}
		}
	}
	for pi := range raw.Battle.Players {
		if domain.NormalizeTag(raw.Battle.Players[pi].Tag) == owner {
			return &raw.Battle.Players[pi], true
		}
	}
	return nil, false
}

// buildRoster flattens the raw teams/players structure into the serialized
// roster form. Free-for-all modes report a flat players array; each player
// becomes a single-member team.
func buildRoster(raw *brawlstars.RawBattle) []rosterTeam {
	if len(raw.Battle.Teams) > 0 {
		teams := make([]rosterTeam, 0, len(raw.Battle.Teams))
		for _, team := range raw.Battle.Teams {
			rt := rosterTeam{Players: make([]rosterPlayer, 0, len(team))}
			for _, p := range team {
				rt.Players = append(rt.Players, toRosterPlayer(p))
			}
			teams = append(teams, rt)
		}
		return teams
	}

	if len(raw.Battle.Players) > 0 {
		teams := make([]rosterTeam, 0, len(raw.Battle.Players))
		for _, p := range raw.Battle.Players {
			teams = append(teams, rosterTeam{Players: []rosterPlayer{toRosterPlayer(p)}})
		}
		return teams
	}

	return nil
}

func toRosterPlayer(p brawlstars.BattlePlayer) rosterPlayer {
	return rosterPlayer{
		Tag:     domain.NormalizeTag(p.Tag).String(),
		Name:    p.Name,
		Brawler: p.Brawler.Name,
		Power:   p.Brawler.Power,
	}
}

// CorrectClockSkew shifts a batch of battles back when the upstream clock ran
// ahead of local time. If the newest battle timestamp sits more than 60
// seconds in the future the whole batch is moved back by a whole number of
// hours. This is a heuristic workaround for a non-UTC upstream clock, not a
// guarantee; the returned offset is zero when no correction was applied.
func CorrectClockSkew(battles []*schema.Battle, now time.Time) time.Duration {
	if len(battles) == 0 {
		return 0
	}

	maxTime := battles[0].BattleTime
	for _, b := range battles[1:] {
		if b.BattleTime.After(maxTime) {
			maxTime = b.BattleTime
		}
	}

	ahead := maxTime.Sub(now)
	if ahead <= maxFutureSkew {
		return 0
	}

	offset := time.Duration(math.Ceil(ahead.Hours())) * time.Hour
	for _, b := range battles {
		b.BattleTime = b.BattleTime.Add(-offset)
	}

	logger.Warn("corrected upstream clock skew",
		zap.Duration("offset", offset),
		zap.Time("max_battle_time", maxTime),
		zap.Time("local_now", now))

	return offset
}
