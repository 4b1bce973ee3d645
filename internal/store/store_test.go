package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/store/schema"
)

var storeNow = time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Test data builders
// =============================================================================

func buildMember(tag domain.Tag, name string) *schema.Member {
	return &schema.Member{
		Tag:         tag,
		Name:        name,
		Role:        "member",
		Trophies:    30000,
		IsActive:    true,
		LastUpdated: storeNow,
	}
}

func buildBattle(tag domain.Tag, at time.Time, result domain.BattleResult) *schema.Battle {
	return &schema.Battle{
		Tag:          tag,
		BattleTime:   at,
		Mode:         "gemGrab",
		Map:          "Hard Rock Mine",
		Result:       result,
		TrophyChange: 8,
		BrawlerName:  "Spike",
		BrawlerPower: 11,
		Roster:       datatypes.JSON([]byte(`{"teams":[]}`)),
		CreatedAt:    storeNow,
	}
}

func buildNotification(dedupeKey, title string) *schema.Notification {
	return &schema.Notification{
		Type:      domain.EventTypeJoin,
		Title:     title,
		Message:   "A new member joined the club",
		Tag:       "#AAA",
		Name:      "Alpha",
		DedupeKey: dedupeKey,
		CreatedAt: storeNow,
	}
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the full store contract against an implementation.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := map[string]func(t *testing.T, s Store){
		"Members/UpsertReplaces":              testUpsertMemberReplaces,
		"Members/GetMissingReturnsNil":        testGetMemberMissing,
		"Members/ListActiveOnly":              testListMembersActiveOnly,
		"Members/MarkInactive":                testMarkMemberInactive,
		"Histories/SaveAndGet":                testSaveMemberHistory,
		"Histories/ListCurrentAndCount":       testListCurrentHistories,
		"ActivityLogs/LatestAndRecent":        testActivityLogs,
		"ActivityLogs/Purge":                  testPurgeActivityLogs,
		"Battles/UpsertIsIdempotent":          testUpsertBattlesIdempotent,
		"Battles/GetBetweenIsHalfOpen":        testGetBattlesBetween,
		"Battles/ListNewestFirst":             testListBattles,
		"Battles/Purge":                       testPurgeBattles,
		"DailyStats/UpsertOverwrites":         testUpsertDailyStat,
		"Snapshots/ReplaceAndLatestBefore":    testSnapshots,
		"Snapshots/Purge":                     testPurgeSnapshots,
		"Tracking/AccumulatesDeltas":          testTrackingDeltas,
		"ClubEvents/InsertListAndRecency":     testClubEvents,
		"Notifications/InsertIgnoreDup":       testNotificationDedup,
		"Notifications/HasRecent":             testHasRecentNotification,
		"Notifications/ReadFlags":             testNotificationReadFlags,
		"Notifications/Purge":                 testPurgeNotifications,
		"Settings/SetGetAll":                  testSettings,
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			s := initDB(t)
			defer cleanupDB(t)
			fn(t, s)
		})
	}
}

// =============================================================================
// Members
// =============================================================================

func testUpsertMemberReplaces(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.UpsertMember(ctx, buildMember("#AAA", "Alpha")))

	updated := buildMember("#AAA", "AlphaRenamed")
	updated.Role = "senior"
	updated.Trophies = 31000
	require.NoError(t, s.UpsertMember(ctx, updated))

	got, err := s.GetMember(ctx, "#AAA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "AlphaRenamed", got.Name)
	assert.Equal(t, "senior", got.Role)
	assert.Equal(t, 31000, got.Trophies)
}

func testGetMemberMissing(t *testing.T, s Store) {
	got, err := s.GetMember(context.Background(), "#MISSING")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testListMembersActiveOnly(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.UpsertMember(ctx, buildMember("#AAA", "Alpha")))
	departed := buildMember("#BBB", "Bravo")
	departed.IsActive = false
	require.NoError(t, s.UpsertMember(ctx, departed))

	active, err := s.ListMembers(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, domain.Tag("#AAA"), active[0].Tag)

	all, err := s.ListMembers(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func testMarkMemberInactive(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.UpsertMember(ctx, buildMember("#AAA", "Alpha")))
	require.NoError(t, s.MarkMemberInactive(ctx, "#AAA"))

	got, err := s.GetMember(ctx, "#AAA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
}

// =============================================================================
// Member histories
// =============================================================================

func testSaveMemberHistory(t *testing.T, s Store) {
	ctx := context.Background()

	missing, err := s.GetMemberHistory(ctx, "#AAA")
	require.NoError(t, err)
	assert.Nil(t, missing)

	history := &schema.MemberHistory{
		Tag:             "#AAA",
		Name:            "Alpha",
		FirstSeenAt:     storeNow,
		LastSeenAt:      storeNow,
		TimesJoined:     1,
		IsCurrentMember: true,
	}
	require.NoError(t, s.SaveMemberHistory(ctx, history))

	leftAt := storeNow.Add(time.Hour)
	history.IsCurrentMember = false
	history.TimesLeft = 1
	history.LastLeftAt = &leftAt
	history.RoleAtLeave = "senior"
	history.TrophiesAtLeave = 30500
	require.NoError(t, s.SaveMemberHistory(ctx, history))

	got, err := s.GetMemberHistory(ctx, "#AAA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.TimesLeft)
	assert.False(t, got.IsCurrentMember)
	assert.Equal(t, "senior", got.RoleAtLeave)
	require.NotNil(t, got.LastLeftAt)
	assert.WithinDuration(t, leftAt, *got.LastLeftAt, time.Second)
}

func testListCurrentHistories(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.SaveMemberHistory(ctx, &schema.MemberHistory{
		Tag: "#AAA", Name: "Alpha", FirstSeenAt: storeNow, LastSeenAt: storeNow,
		TimesJoined: 1, IsCurrentMember: true,
	}))
	require.NoError(t, s.SaveMemberHistory(ctx, &schema.MemberHistory{
		Tag: "#BBB", Name: "Bravo", FirstSeenAt: storeNow, LastSeenAt: storeNow,
		TimesJoined: 1, TimesLeft: 1, IsCurrentMember: false,
	}))

	current, err := s.ListCurrentMemberHistories(ctx)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, domain.Tag("#AAA"), current[0].Tag)

	count, err := s.CountMemberHistories(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// =============================================================================
// Activity logs
// =============================================================================

func testActivityLogs(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.InsertActivityLog(ctx, &schema.ActivityLogEntry{
		Tag: "#AAA", Trophies: 30000, TrophyDelta: 0,
		ActivityType: domain.ActivityInactive, RecordedAt: storeNow.Add(-2 * time.Hour),
	}))
	require.NoError(t, s.InsertActivityLog(ctx, &schema.ActivityLogEntry{
		Tag: "#AAA", Trophies: 30035, TrophyDelta: 35,
		ActivityType: domain.ActivityActive, RecordedAt: storeNow.Add(-time.Hour),
	}))

	latest, err := s.GetLatestActivityLog(ctx, "#AAA")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 35, latest.TrophyDelta)

	// Zero-delta rows do not count as recent activity.
	recent, err := s.HasRecentActivity(ctx, "#AAA", storeNow.Add(-3*time.Hour))
	require.NoError(t, err)
	assert.True(t, recent)

	recent, err = s.HasRecentActivity(ctx, "#AAA", storeNow.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.False(t, recent)

	none, err := s.GetLatestActivityLog(ctx, "#NOBODY")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func testPurgeActivityLogs(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.InsertActivityLog(ctx, &schema.ActivityLogEntry{
		Tag: "#AAA", Trophies: 29000, TrophyDelta: 10,
		ActivityType: domain.ActivityMinimal, RecordedAt: storeNow.Add(-40 * 24 * time.Hour),
	}))
	require.NoError(t, s.InsertActivityLog(ctx, &schema.ActivityLogEntry{
		Tag: "#AAA", Trophies: 30000, TrophyDelta: 20,
		ActivityType: domain.ActivityActive, RecordedAt: storeNow,
	}))

	purged, err := s.PurgeActivityLogsBefore(ctx, storeNow.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	latest, err := s.GetLatestActivityLog(ctx, "#AAA")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 20, latest.TrophyDelta)
}

// =============================================================================
// Battles
// =============================================================================

func testUpsertBattlesIdempotent(t *testing.T, s Store) {
	ctx := context.Background()

	first := []*schema.Battle{
		buildBattle("#AAA", storeNow.Add(-2*time.Hour), domain.ResultVictory),
		buildBattle("#AAA", storeNow.Add(-time.Hour), domain.ResultDefeat),
	}
	inserted, err := s.UpsertBattles(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	// Re-ingesting an overlapping log only inserts the genuinely new row.
	second := []*schema.Battle{
		buildBattle("#AAA", storeNow.Add(-time.Hour), domain.ResultDefeat),
		buildBattle("#AAA", storeNow, domain.ResultVictory),
	}
	inserted, err = s.UpsertBattles(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	inserted, err = s.UpsertBattles(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	battles, err := s.GetBattlesBetween(ctx, "#AAA", storeNow.Add(-24*time.Hour), storeNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, battles, 3)
}

func testGetBattlesBetween(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.UpsertBattles(ctx, []*schema.Battle{
		buildBattle("#AAA", storeNow.Add(-3*time.Hour), domain.ResultVictory),
		buildBattle("#AAA", storeNow.Add(-2*time.Hour), domain.ResultDefeat),
		buildBattle("#AAA", storeNow, domain.ResultVictory),
		buildBattle("#BBB", storeNow.Add(-2*time.Hour), domain.ResultVictory),
	})
	require.NoError(t, err)

	// [from, to): the battle exactly at `to` is excluded.
	battles, err := s.GetBattlesBetween(ctx, "#AAA", storeNow.Add(-3*time.Hour), storeNow)
	require.NoError(t, err)
	require.Len(t, battles, 2)
	assert.True(t, battles[0].BattleTime.Before(battles[1].BattleTime))
}

func testListBattles(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.UpsertBattles(ctx, []*schema.Battle{
		buildBattle("#AAA", storeNow.Add(-2*time.Hour), domain.ResultVictory),
		buildBattle("#BBB", storeNow.Add(-time.Hour), domain.ResultDefeat),
		buildBattle("#AAA", storeNow, domain.ResultVictory),
	})
	require.NoError(t, err)

	all, err := s.ListBattles(ctx, "", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, domain.Tag("#AAA"), all[0].Tag)
	assert.True(t, all[0].BattleTime.After(all[1].BattleTime))

	one, err := s.ListBattles(ctx, "#BBB", 10, 0)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, domain.Tag("#BBB"), one[0].Tag)

	paged, err := s.ListBattles(ctx, "", 2, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func testPurgeBattles(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.UpsertBattles(ctx, []*schema.Battle{
		buildBattle("#AAA", storeNow.Add(-31*24*time.Hour), domain.ResultVictory),
		buildBattle("#AAA", storeNow, domain.ResultVictory),
	})
	require.NoError(t, err)

	purged, err := s.PurgeBattlesBefore(ctx, storeNow.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

// =============================================================================
// Daily stats
// =============================================================================

func testUpsertDailyStat(t *testing.T, s Store) {
	ctx := context.Background()
	day := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.UpsertDailyStat(ctx, &schema.DailyStat{
		Tag: "#AAA", Date: day, Battles: 5, Wins: 3, Losses: 2, UpdatedAt: storeNow,
	}))

	// A later recompute for the same day overwrites the row in place.
	require.NoError(t, s.UpsertDailyStat(ctx, &schema.DailyStat{
		Tag: "#AAA", Date: day, Battles: 8, Wins: 5, Losses: 3,
		StarPlayers: 2, TrophiesGained: 64, TrophiesLost: 16, UpdatedAt: storeNow,
	}))

	stats, err := s.ListDailyStats(ctx, "#AAA", day.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 8, stats[0].Battles)
	assert.Equal(t, 64, stats[0].TrophiesGained)

	none, err := s.ListDailyStats(ctx, "#AAA", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, none)
}

// =============================================================================
// Brawler snapshots
// =============================================================================

func testSnapshots(t *testing.T, s Store) {
	ctx := context.Background()
	yesterday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	today := yesterday.AddDate(0, 0, 1)

	none, err := s.GetLatestSnapshotsBefore(ctx, "#AAA", today)
	require.NoError(t, err)
	assert.Empty(t, none)

	has, err := s.HasSnapshotHistoryBefore(ctx, "#AAA", today)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.ReplaceDaySnapshots(ctx, "#AAA", yesterday, []*schema.BrawlerSnapshot{
		{Tag: "#AAA", BrawlerName: "Spike", CaptureDay: yesterday, Power: 9, Trophies: 700},
		{Tag: "#AAA", BrawlerName: "Colt", CaptureDay: yesterday, Power: 7, Trophies: 450},
	}))

	// Replacing the same day discards the earlier rows rather than stacking.
	require.NoError(t, s.ReplaceDaySnapshots(ctx, "#AAA", yesterday, []*schema.BrawlerSnapshot{
		{Tag: "#AAA", BrawlerName: "Spike", CaptureDay: yesterday, Power: 10, Trophies: 720},
	}))

	latest, err := s.GetLatestSnapshotsBefore(ctx, "#AAA", today)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, "Spike", latest[0].BrawlerName)
	assert.Equal(t, 10, latest[0].Power)

	// Snapshots captured on the boundary day itself are excluded.
	sameDay, err := s.GetLatestSnapshotsBefore(ctx, "#AAA", yesterday)
	require.NoError(t, err)
	assert.Empty(t, sameDay)

	has, err = s.HasSnapshotHistoryBefore(ctx, "#AAA", today)
	require.NoError(t, err)
	assert.True(t, has)
}

func testPurgeSnapshots(t *testing.T, s Store) {
	ctx := context.Background()
	oldDay := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	newDay := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.ReplaceDaySnapshots(ctx, "#AAA", oldDay, []*schema.BrawlerSnapshot{
		{Tag: "#AAA", BrawlerName: "Spike", CaptureDay: oldDay},
	}))
	require.NoError(t, s.ReplaceDaySnapshots(ctx, "#AAA", newDay, []*schema.BrawlerSnapshot{
		{Tag: "#AAA", BrawlerName: "Spike", CaptureDay: newDay},
	}))

	purged, err := s.PurgeSnapshotsBefore(ctx, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

// =============================================================================
// Player tracking
// =============================================================================

func testTrackingDeltas(t *testing.T, s Store) {
	ctx := context.Background()

	missing, err := s.GetPlayerTracking(ctx, "#AAA")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Zero deltas never create a row.
	require.NoError(t, s.AddTrackingDeltas(ctx, "#AAA", 0, 0, storeNow))
	missing, err = s.GetPlayerTracking(ctx, "#AAA")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.AddTrackingDeltas(ctx, "#AAA", 2, 1, storeNow))
	require.NoError(t, s.AddTrackingDeltas(ctx, "#AAA", 3, 0, storeNow.Add(time.Hour)))

	tracking, err := s.GetPlayerTracking(ctx, "#AAA")
	require.NoError(t, err)
	require.NotNil(t, tracking)
	assert.Equal(t, 5, tracking.PowerUps)
	assert.Equal(t, 1, tracking.Unlocks)
	assert.WithinDuration(t, storeNow, tracking.TrackingStartedAt, time.Second)
	assert.WithinDuration(t, storeNow.Add(time.Hour), tracking.LastUpdated, time.Second)
}

// =============================================================================
// Club events
// =============================================================================

func testClubEvents(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.InsertClubEvents(ctx, nil))
	require.NoError(t, s.InsertClubEvents(ctx, []*schema.ClubEvent{
		{EventType: domain.EventTypeJoin, Tag: "#AAA", Name: "Alpha", OccurredAt: storeNow.Add(-2 * time.Hour)},
		{EventType: domain.EventTypeLeave, Tag: "#BBB", Name: "Bravo", OccurredAt: storeNow},
	}))

	events, err := s.ListClubEvents(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTypeLeave, events[0].EventType)

	has, err := s.HasRecentClubEvent(ctx, domain.EventTypeJoin, "#AAA", storeNow.Add(-3*time.Hour))
	require.NoError(t, err)
	assert.True(t, has)

	// Recency is scoped to the (type, tag) pair.
	has, err = s.HasRecentClubEvent(ctx, domain.EventTypeLeave, "#AAA", storeNow.Add(-3*time.Hour))
	require.NoError(t, err)
	assert.False(t, has)

	has, err = s.HasRecentClubEvent(ctx, domain.EventTypeJoin, "#AAA", storeNow.Add(-time.Hour))
	require.NoError(t, err)
	assert.False(t, has)
}

// =============================================================================
// Notifications
// =============================================================================

func testNotificationDedup(t *testing.T, s Store) {
	ctx := context.Background()

	inserted, err := s.InsertNotificationIgnoreDup(ctx, buildNotification("key-1", "Member joined"))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.InsertNotificationIgnoreDup(ctx, buildNotification("key-1", "Member joined"))
	require.NoError(t, err)
	assert.False(t, inserted)

	inserted, err = s.InsertNotificationIgnoreDup(ctx, buildNotification("key-2", "Member joined"))
	require.NoError(t, err)
	assert.True(t, inserted)

	notifications, err := s.ListNotifications(ctx, false, 10, 0)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func testHasRecentNotification(t *testing.T, s Store) {
	ctx := context.Background()

	n := buildNotification("key-1", "Member joined")
	_, err := s.InsertNotificationIgnoreDup(ctx, n)
	require.NoError(t, err)

	probe := buildNotification("other-key", "Member joined")
	has, err := s.HasRecentNotification(ctx, probe, storeNow.Add(-10*time.Minute))
	require.NoError(t, err)
	assert.True(t, has)

	probe.Title = "Member left"
	has, err = s.HasRecentNotification(ctx, probe, storeNow.Add(-10*time.Minute))
	require.NoError(t, err)
	assert.False(t, has)
}

func testNotificationReadFlags(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.InsertNotificationIgnoreDup(ctx, buildNotification("key-1", "Member joined"))
	require.NoError(t, err)
	_, err = s.InsertNotificationIgnoreDup(ctx, buildNotification("key-2", "Member promoted"))
	require.NoError(t, err)

	unread, err := s.ListNotifications(ctx, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, unread, 2)

	require.NoError(t, s.MarkNotificationRead(ctx, unread[0].ID))

	unread, err = s.ListNotifications(ctx, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	updated, err := s.MarkAllNotificationsRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	unread, err = s.ListNotifications(ctx, true, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func testPurgeNotifications(t *testing.T, s Store) {
	ctx := context.Background()

	old := buildNotification("key-old", "Member joined")
	old.CreatedAt = storeNow.Add(-40 * 24 * time.Hour)
	_, err := s.InsertNotificationIgnoreDup(ctx, old)
	require.NoError(t, err)
	_, err = s.InsertNotificationIgnoreDup(ctx, buildNotification("key-new", "Member joined"))
	require.NoError(t, err)

	purged, err := s.PurgeNotificationsBefore(ctx, storeNow.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

// =============================================================================
// Settings
// =============================================================================

func testSettings(t *testing.T, s Store) {
	ctx := context.Background()

	missing, err := s.GetSetting(ctx, schema.SettingClubTag)
	require.NoError(t, err)
	assert.Empty(t, missing)

	require.NoError(t, s.SetSetting(ctx, schema.SettingClubTag, "#CLUB"))
	require.NoError(t, s.SetSetting(ctx, schema.SettingNotificationsEnabled, "true"))
	require.NoError(t, s.SetSetting(ctx, schema.SettingNotificationsEnabled, "false"))

	got, err := s.GetSetting(ctx, schema.SettingNotificationsEnabled)
	require.NoError(t, err)
	assert.Equal(t, "false", got)

	all, err := s.GetAllSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#CLUB", all[schema.SettingClubTag])
	assert.Equal(t, "false", all[schema.SettingNotificationsEnabled])
}
