package battle_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/battle"
	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/providers/vendors/brawlstars"
	"github.com/brawldash/club-sync/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func makePlayer(tag, name, brawler string, power int) brawlstars.BattlePlayer {
	p := brawlstars.BattlePlayer{Tag: tag, Name: name}
	p.Brawler.Name = brawler
	p.Brawler.Power = power
	return p
}

func TestNormalizer_Normalize_TeamBattle(t *testing.T) {
	n := battle.NewNormalizer(adapter.NewJSON())
	owner := domain.NormalizeTag("#ABC123")

	raw := &brawlstars.RawBattle{BattleTime: "20260127T203456.000Z"}
	raw.Event.Mode = "gemGrab"
	raw.Event.Map = "Hard Rock Mine"
	raw.Battle.Result = "victory"
	raw.Battle.TrophyChange = 8
	star := makePlayer("#abc123", "Alpha", "SHELLY", 11)
	raw.Battle.StarPlayer = &star
	raw.Battle.Teams = [][]brawlstars.BattlePlayer{
		{makePlayer("#ABC123", "Alpha", "SHELLY", 11)},
		{makePlayer("#ZZZ999", "Rival", "COLT", 10)},
	}

	b, err := n.Normalize(raw, owner)

	require.NoError(t, err)
	assert.Equal(t, owner, b.Tag)
	assert.True(t, b.BattleTime.Equal(time.Date(2026, 1, 27, 20, 34, 56, 0, time.UTC)))
	assert.Equal(t, "gemGrab", b.Mode)
	assert.Equal(t, "Hard Rock Mine", b.Map)
	assert.Equal(t, domain.ResultVictory, b.Result)
	assert.Equal(t, 8, b.TrophyChange)
	// Star player tag matches through normalization despite lowercase upstream.
	assert.True(t, b.IsStarPlayer)
	assert.Equal(t, "SHELLY", b.BrawlerName)
	assert.Equal(t, 11, b.BrawlerPower)
	assert.NotNil(t, b.Roster)
	assert.Contains(t, string(b.Roster), "#ZZZ999")
}

func TestNormalizer_Normalize_PlacementModes(t *testing.T) {
	tests := []struct {
		name     string
		rank     int
		expected domain.BattleResult
	}{
		{name: "rank 1 wins", rank: 1, expected: domain.ResultVictory},
		{name: "rank 4 wins", rank: 4, expected: domain.ResultVictory},
		{name: "rank 5 loses", rank: 5, expected: domain.ResultDefeat},
		{name: "rank 10 loses", rank: 10, expected: domain.ResultDefeat},
	}

	n := battle.NewNormalizer(adapter.NewJSON())
	owner := domain.NormalizeTag("#ABC123")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &brawlstars.RawBattle{BattleTime: "20260127T203456.000Z"}
			raw.Event.Mode = "soloShowdown"
			raw.Battle.Rank = tt.rank
			raw.Battle.Players = []brawlstars.BattlePlayer{
				makePlayer("#ABC123", "Alpha", "LEON", 9),
				makePlayer("#ZZZ999", "Rival", "CROW", 10),
			}

			b, err := n.Normalize(raw, owner)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.Result)
			assert.Equal(t, "LEON", b.BrawlerName)
		})
	}
}

func TestNormalizer_Normalize_UnknownResult(t *testing.T) {
	n := battle.NewNormalizer(adapter.NewJSON())
	owner := domain.NormalizeTag("#ABC123")

	raw := &brawlstars.RawBattle{BattleTime: "20260127T203456.000Z"}
	raw.Battle.Mode = "friendly"

	b, err := n.Normalize(raw, owner)

	require.NoError(t, err)
	assert.Equal(t, domain.ResultUnknown, b.Result)
	assert.Equal(t, "friendly", b.Mode)
	assert.False(t, b.IsStarPlayer)
	assert.Empty(t, b.BrawlerName)
	assert.Nil(t, b.Roster)
}

func TestNormalizer_Normalize_BadTimestamp(t *testing.T) {
	n := battle.NewNormalizer(adapter.NewJSON())

	raw := &brawlstars.RawBattle{BattleTime: "garbage"}

	b, err := n.Normalize(raw, domain.NormalizeTag("#ABC123"))

	assert.Error(t, err)
	assert.Nil(t, b)
}

func TestCorrectClockSkew(t *testing.T) {
	now := time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC)

	t.Run("no correction within tolerance", func(t *testing.T) {
		battles := []*schema.Battle{
			{BattleTime: now.Add(30 * time.Second)},
			{BattleTime: now.Add(-time.Hour)},
		}

		offset := battle.CorrectClockSkew(battles, now)

		assert.Zero(t, offset)
		assert.True(t, battles[0].BattleTime.Equal(now.Add(30*time.Second)))
	})

	t.Run("future batch shifted back by whole hours", func(t *testing.T) {
		battles := []*schema.Battle{
			{BattleTime: now.Add(90 * time.Minute)},
			{BattleTime: now.Add(-30 * time.Minute)},
		}

		offset := battle.CorrectClockSkew(battles, now)

		assert.Equal(t, 2*time.Hour, offset)
		assert.True(t, battles[0].BattleTime.Equal(now.Add(90*time.Minute-2*time.Hour)))
		assert.True(t, battles[1].BattleTime.Equal(now.Add(-30*time.Minute-2*time.Hour)))
	})

	t.Run("empty batch", func(t *testing.T) {
		assert.Zero(t, battle.CorrectClockSkew(nil, now))
	})
}
