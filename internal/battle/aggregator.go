package battle

import (
	"sort"
	"time"

	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/store/schema"
)

// Day truncates a battle timestamp to its UTC calendar day.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Aggregate folds canonical battles into per (tag, day) rollups. The fold is
// pure: callers recompute a day's rollup from the deduplicated battles table
// and overwrite the stored row, which keeps re-ingestion idempotent. Output
// order is deterministic (tag, then day).
func Aggregate(battles []*schema.Battle) []*schema.DailyStat {
	type key struct {
		tag domain.Tag
		day time.Time
	}

	stats := make(map[key]*schema.DailyStat)
	for _, b := range battles {
		k := key{tag: b.Tag, day: Day(b.BattleTime)}
		stat, ok := stats[k]
		if !ok {
			stat = &schema.DailyStat{Tag: k.tag, Date: k.day}
			stats[k] = stat
		}

		stat.Battles++
		switch b.Result {
		case domain.ResultVictory:
			stat.Wins++
		case domain.ResultDefeat:
			stat.Losses++
		}
		if b.IsStarPlayer {
			stat.StarPlayers++
		}
		if b.TrophyChange > 0 {
			stat.TrophiesGained += b.TrophyChange
		} else {
			stat.TrophiesLost += -b.TrophyChange
		}
	}

	out := make([]*schema.DailyStat, 0, len(stats))
	for _, stat := range stats {
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tag != out[j].Tag {
			return out[i].Tag < out[j].Tag
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

// WinRate returns the percentage of victories among battles with a decided
// outcome. Unknown results are excluded from the denominator; an empty or
// all-unknown log yields zero.
func WinRate(battles []*schema.Battle) float64 {
	var decided, wins int
	for _, b := range battles {
		switch b.Result {
		case domain.ResultVictory:
			decided++
			wins++
		case domain.ResultDefeat, domain.ResultDraw:
			decided++
		}
	}
	if decided == 0 {
		return 0
	}
	return float64(wins) / float64(decided) * 100
}
