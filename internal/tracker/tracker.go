package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/brawldash/club-sync/internal/battle"
	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/store"
	"github.com/brawldash/club-sync/internal/store/schema"
)

// Deltas is one player's derived progression for a single tracking pass.
type Deltas struct {
	PowerUps int
	Unlocks  int
}

// Tracker derives power-up and unlock counts by comparing today's brawler
// snapshot against the most recent prior snapshot set per player.
type Tracker struct {
	store store.Store
}

// NewTracker creates a new brawler delta tracker
func NewTracker(s store.Store) *Tracker {
	return &Tracker{store: s}
}

// Track computes one player's progression deltas, replaces today's snapshot
// rows and bumps the player's accumulators. A player with no snapshot history
// at all gets no unlock credit for their first capture; re-running mid-day
// replaces the day's rows instead of duplicating them.
func (t *Tracker) Track(ctx context.Context, tag domain.Tag, brawlers []domain.PlayerBrawler, now time.Time) (Deltas, error) {
	day := battle.Day(now)

	prior, err := t.store.GetLatestSnapshotsBefore(ctx, tag, day)
	if err != nil {
		return Deltas{}, fmt.Errorf("failed to load prior snapshots: %w", err)
	}

	hasHistory := len(prior) > 0
	if !hasHistory {
		// The latest set can be empty while older rows still exist (e.g.
		// partially purged history), so check the full range too.
		hasHistory, err = t.store.HasSnapshotHistoryBefore(ctx, tag, day)
		if err != nil {
			return Deltas{}, fmt.Errorf("failed to check snapshot history: %w", err)
		}
	}

	priorByName := make(map[string]*schema.BrawlerSnapshot, len(prior))
	for _, snap := range prior {
		priorByName[snap.BrawlerName] = snap
	}

	var deltas Deltas
	today := make([]*schema.BrawlerSnapshot, 0, len(brawlers))
	for _, b := range brawlers {
		if before, ok := priorByName[b.Name]; ok {
			if b.Power > before.Power {
				deltas.PowerUps += b.Power - before.Power
			}
		} else if hasHistory {
			deltas.Unlocks++
		}

		today = append(today, &schema.BrawlerSnapshot{
			Tag:         tag,
			BrawlerName: b.Name,
			CaptureDay:  day,
			Power:       b.Power,
			Trophies:    b.Trophies,
			Rank:        b.Rank,
			Gadgets:     b.Gadgets,
			StarPowers:  b.StarPowers,
			Gears:       b.Gears,
		})
	}

	if err := t.store.ReplaceDaySnapshots(ctx, tag, day, today); err != nil {
		return Deltas{}, fmt.Errorf("failed to replace day snapshots: %w", err)
	}

	// Accumulators only ever grow; zero deltas are not written.
	if deltas.PowerUps > 0 || deltas.Unlocks > 0 {
		if err := t.store.AddTrackingDeltas(ctx, tag, deltas.PowerUps, deltas.Unlocks, now); err != nil {
			return Deltas{}, fmt.Errorf("failed to update tracking accumulators: %w", err)
		}
	}

	return deltas, nil
}
