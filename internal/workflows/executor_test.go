package workflows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/battle"
	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/mocks"
	"github.com/brawldash/club-sync/internal/notify"
	"github.com/brawldash/club-sync/internal/providers/vendors/brawlstars"
	"github.com/brawldash/club-sync/internal/reconcile"
	"github.com/brawldash/club-sync/internal/store/schema"
	"github.com/brawldash/club-sync/internal/tracker"
	"github.com/brawldash/club-sync/internal/workflows"
)

var executorNow = time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	client    *mocks.MockBrawlStarsClient
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	executor  workflows.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		client:    mocks.NewMockBrawlStarsClient(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	tm.executor = workflows.NewExecutor(
		tm.store,
		func(string) brawlstars.Client { return tm.client },
		battle.NewNormalizer(adapter.NewJSON()),
		reconcile.NewReconciler(tm.store),
		tracker.NewTracker(tm.store),
		notify.NewDeduplicator(tm.store, 10*time.Minute, 24*time.Hour),
		tm.publisher,
		tm.clock,
		workflows.ExecutorConfig{
			StickyWindow:           48 * time.Hour,
			NotificationWindow:     10 * time.Minute,
			FetchConcurrency:       2,
			RetentionBattles:       720 * time.Hour,
			RetentionActivityLogs:  720 * time.Hour,
			RetentionSnapshots:     2160 * time.Hour,
			RetentionNotifications: 720 * time.Hour,
		},
	)

	return tm
}

func TestLoadSyncSettings_Complete(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetAllSettings(gomock.Any()).Return(map[string]string{
		schema.SettingClubTag:              "%23club",
		schema.SettingAPIKey:               "token",
		schema.SettingWebhookURL:           "https://discord.com/api/webhooks/1/x",
		schema.SettingNotificationsEnabled: "false",
		schema.SettingInactivityThreshold:  "72",
		schema.SettingRequiredTrophies:     "25000",
	}, nil)

	settings, err := tm.executor.LoadSyncSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Tag("#CLUB"), settings.ClubTag)
	assert.Equal(t, "token", settings.APIKey)
	assert.False(t, settings.NotificationsEnabled)
	assert.Equal(t, 72*time.Hour, settings.InactivityThreshold)
	assert.Equal(t, 25000, settings.RequiredTrophies)
}

func TestLoadSyncSettings_DefaultsApply(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetAllSettings(gomock.Any()).Return(map[string]string{
		schema.SettingClubTag:             "#CLUB",
		schema.SettingAPIKey:              "token",
		schema.SettingInactivityThreshold: "not-a-number",
	}, nil)

	settings, err := tm.executor.LoadSyncSettings(context.Background())

	require.NoError(t, err)
	assert.True(t, settings.NotificationsEnabled)
	assert.Equal(t, 48*time.Hour, settings.InactivityThreshold)
}

func TestLoadSyncSettings_MissingAPIKey(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetAllSettings(gomock.Any()).Return(map[string]string{
		schema.SettingClubTag: "#CLUB",
	}, nil)

	_, err := tm.executor.LoadSyncSettings(context.Background())

	require.Error(t, err)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
}

func TestFetchRoster_Success(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	settings := &domain.SyncSettings{ClubTag: "#CLUB", APIKey: "token"}
	roster := &domain.ClubRoster{Tag: "#CLUB", Name: "Brawl Dash", RequiredTrophies: 25000}

	tm.client.EXPECT().FetchClub(gomock.Any(), domain.Tag("#CLUB")).Return(roster, nil)
	tm.store.EXPECT().SetSetting(gomock.Any(), schema.SettingRequiredTrophies, "25000").Return(nil)

	got, err := tm.executor.FetchRoster(context.Background(), settings)

	require.NoError(t, err)
	assert.Equal(t, roster, got)
}

func TestFetchRoster_ForbiddenIsNonRetryable(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	settings := &domain.SyncSettings{ClubTag: "#CLUB", APIKey: "bad"}
	tm.client.EXPECT().FetchClub(gomock.Any(), domain.Tag("#CLUB")).Return(nil, domain.ErrForbidden)

	_, err := tm.executor.FetchRoster(context.Background(), settings)

	require.Error(t, err)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
}

func TestSyncMemberBatch_SingleMember(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow).AnyTimes()

	member := domain.RosterMember{Tag: "#AAA", Name: "Alpha", Role: "member", Trophies: 30000}
	profile := &domain.PlayerProfile{
		Tag:      "#AAA",
		Name:     "Alpha",
		Trophies: 30000,
		Brawlers: []domain.PlayerBrawler{{Name: "SHELLY", Power: 11, Trophies: 800}},
	}

	tm.client.EXPECT().FetchPlayer(gomock.Any(), domain.Tag("#AAA")).Return(profile, nil)
	tm.client.EXPECT().FetchBattleLog(gomock.Any(), domain.Tag("#AAA")).Return([]brawlstars.RawBattle{}, nil)
	tm.client.EXPECT().FetchRankedInfo(gomock.Any(), domain.Tag("#AAA")).
		Return(&domain.RankedInfo{CurrentRank: "Gold I", HighestRank: "Diamond III"}, nil)

	tm.store.EXPECT().UpsertBattles(gomock.Any(), gomock.Len(0)).Return(int64(0), nil)
	tm.store.EXPECT().UpsertMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *schema.Member) error {
			assert.Equal(t, domain.Tag("#AAA"), m.Tag)
			assert.Equal(t, "Gold I", m.CurrentRank)
			assert.Equal(t, 1, m.BrawlerCount)
			assert.True(t, m.IsActive)
			return nil
		})

	// Brawler snapshot tracking for a first capture.
	day := battle.Day(executorNow)
	tm.store.EXPECT().GetLatestSnapshotsBefore(gomock.Any(), domain.Tag("#AAA"), day).Return(nil, nil)
	tm.store.EXPECT().HasSnapshotHistoryBefore(gomock.Any(), domain.Tag("#AAA"), day).Return(false, nil)
	tm.store.EXPECT().ReplaceDaySnapshots(gomock.Any(), domain.Tag("#AAA"), day, gomock.Len(1)).Return(nil)

	// Activity classification for a first observation.
	tm.store.EXPECT().GetLatestActivityLog(gomock.Any(), domain.Tag("#AAA")).Return(nil, nil)
	tm.store.EXPECT().InsertActivityLog(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().HasRecentActivity(gomock.Any(), domain.Tag("#AAA"), gomock.Any()).Return(false, nil)

	result, err := tm.executor.SyncMemberBatch(context.Background(), workflows.SyncBatchInput{
		APIKey:       "token",
		Members:      []domain.RosterMember{member},
		StickyWindow: 48 * time.Hour,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 1, result.Inactive)
}

func TestSyncMemberBatch_AllMembersFailed(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow).AnyTimes()
	tm.client.EXPECT().FetchPlayer(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("upstream unavailable")).Times(2)

	_, err := tm.executor.SyncMemberBatch(context.Background(), workflows.SyncBatchInput{
		APIKey: "token",
		Members: []domain.RosterMember{
			{Tag: "#AAA", Name: "Alpha"},
			{Tag: "#BBB", Name: "Bravo"},
		},
		StickyWindow: 48 * time.Hour,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to sync")
}

func TestSyncMemberBatch_PartialFailureIsTolerated(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow).AnyTimes()

	profile := &domain.PlayerProfile{Tag: "#AAA", Name: "Alpha", Trophies: 100}
	tm.client.EXPECT().FetchPlayer(gomock.Any(), domain.Tag("#AAA")).Return(profile, nil)
	tm.client.EXPECT().FetchPlayer(gomock.Any(), domain.Tag("#BBB")).
		Return(nil, errors.New("upstream unavailable"))
	tm.client.EXPECT().FetchBattleLog(gomock.Any(), domain.Tag("#AAA")).Return([]brawlstars.RawBattle{}, nil)
	tm.client.EXPECT().FetchRankedInfo(gomock.Any(), domain.Tag("#AAA")).Return(nil, errors.New("season rollover"))

	tm.store.EXPECT().UpsertBattles(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	tm.store.EXPECT().UpsertMember(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().GetLatestSnapshotsBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().HasSnapshotHistoryBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	tm.store.EXPECT().ReplaceDaySnapshots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().GetLatestActivityLog(gomock.Any(), gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().InsertActivityLog(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().HasRecentActivity(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	result, err := tm.executor.SyncMemberBatch(context.Background(), workflows.SyncBatchInput{
		APIKey: "token",
		Members: []domain.RosterMember{
			{Tag: "#AAA", Name: "Alpha"},
			{Tag: "#BBB", Name: "Bravo"},
		},
		StickyWindow: 48 * time.Hour,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Failed)
}

// A promotion is the diff between the fresh roster and the member row as the
// previous run left it, and the batch upsert overwrites that row with the
// roster's role. Driving the activities in workflow order, reconcile first and
// batch second, must surface the promotion before the overwrite lands.
func TestReconcileBeforeBatch_PromotionDetected(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow).AnyTimes()

	roster := &domain.ClubRoster{
		Tag:  "#CLUB",
		Name: "Brawl Dash",
		Members: []domain.RosterMember{
			{Tag: "#AAA", Name: "Alpha", Role: "senior", Trophies: 30200},
		},
	}

	// The member row as the previous run left it, kept live so the batch
	// upsert replaces it the way the real store would.
	memberRow := &schema.Member{Tag: "#AAA", Name: "Alpha", Role: "member", Trophies: 30000}
	tm.store.EXPECT().GetMember(gomock.Any(), domain.Tag("#AAA")).
		DoAndReturn(func(context.Context, domain.Tag) (*schema.Member, error) {
			return memberRow, nil
		}).AnyTimes()
	tm.store.EXPECT().UpsertMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *schema.Member) error {
			memberRow = m
			return nil
		})

	tm.store.EXPECT().CountMemberHistories(gomock.Any()).Return(int64(1), nil)
	tm.store.EXPECT().ListCurrentMemberHistories(gomock.Any()).Return([]*schema.MemberHistory{
		{Tag: "#AAA", Name: "Alpha", TimesJoined: 1, IsCurrentMember: true},
	}, nil)
	tm.store.EXPECT().GetMemberHistory(gomock.Any(), domain.Tag("#AAA")).Return(&schema.MemberHistory{
		Tag: "#AAA", Name: "Alpha", TimesJoined: 1, IsCurrentMember: true,
	}, nil)
	tm.store.EXPECT().SaveMemberHistory(gomock.Any(), gomock.Any()).Return(nil)

	recResult, err := tm.executor.ReconcileMembership(context.Background(), roster)

	require.NoError(t, err)
	assert.Equal(t, 1, recResult.Promotions)
	require.Len(t, recResult.Events, 1)
	assert.Equal(t, domain.EventTypePromotion, recResult.Events[0].Type)
	assert.Equal(t, "Alpha was promoted from member to senior", recResult.Events[0].Message)

	profile := &domain.PlayerProfile{
		Tag:      "#AAA",
		Name:     "Alpha",
		Trophies: 30200,
		Brawlers: []domain.PlayerBrawler{{Name: "SHELLY", Power: 11, Trophies: 800}},
	}
	tm.client.EXPECT().FetchPlayer(gomock.Any(), domain.Tag("#AAA")).Return(profile, nil)
	tm.client.EXPECT().FetchBattleLog(gomock.Any(), domain.Tag("#AAA")).Return([]brawlstars.RawBattle{}, nil)
	tm.client.EXPECT().FetchRankedInfo(gomock.Any(), domain.Tag("#AAA")).
		Return(&domain.RankedInfo{CurrentRank: "Gold I"}, nil)
	tm.store.EXPECT().UpsertBattles(gomock.Any(), gomock.Len(0)).Return(int64(0), nil)

	day := battle.Day(executorNow)
	tm.store.EXPECT().GetLatestSnapshotsBefore(gomock.Any(), domain.Tag("#AAA"), day).Return(nil, nil)
	tm.store.EXPECT().HasSnapshotHistoryBefore(gomock.Any(), domain.Tag("#AAA"), day).Return(false, nil)
	tm.store.EXPECT().ReplaceDaySnapshots(gomock.Any(), domain.Tag("#AAA"), day, gomock.Len(1)).Return(nil)
	tm.store.EXPECT().GetLatestActivityLog(gomock.Any(), domain.Tag("#AAA")).Return(nil, nil)
	tm.store.EXPECT().InsertActivityLog(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().HasRecentActivity(gomock.Any(), domain.Tag("#AAA"), gomock.Any()).Return(false, nil)

	_, err = tm.executor.SyncMemberBatch(context.Background(), workflows.SyncBatchInput{
		APIKey:       "token",
		Members:      roster.Members,
		StickyWindow: 48 * time.Hour,
	})

	require.NoError(t, err)
	// The upsert leaves the new role in place for the next run to diff against.
	assert.Equal(t, "senior", memberRow.Role)
}

func TestDispatchNotifications_FiltersRecentlyAnnouncedEvents(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow).AnyTimes()

	events := []domain.MembershipEvent{
		{Type: domain.EventTypeJoin, Tag: "#AAA", Name: "Alpha", Title: "Member joined", Message: "Alpha joined the club", Timestamp: executorNow},
		{Type: domain.EventTypeLeave, Tag: "#BBB", Name: "Bravo", Title: "Member left", Message: "Bravo left the club", Timestamp: executorNow},
	}

	since := executorNow.Add(-10 * time.Minute)
	tm.store.EXPECT().HasRecentClubEvent(gomock.Any(), domain.EventTypeJoin, domain.Tag("#AAA"), since).Return(true, nil)
	tm.store.EXPECT().HasRecentClubEvent(gomock.Any(), domain.EventTypeLeave, domain.Tag("#BBB"), since).Return(false, nil)

	tm.store.EXPECT().InsertClubEvents(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, rows []*schema.ClubEvent) error {
			assert.Equal(t, domain.EventTypeLeave, rows[0].EventType)
			return nil
		})

	tm.store.EXPECT().HasRecentNotification(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	tm.store.EXPECT().InsertNotificationIgnoreDup(gomock.Any(), gomock.Any()).Return(true, nil)

	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *domain.ClubEventMessage) error {
			assert.Equal(t, domain.EventTypeLeave, msg.Type)
			assert.NotEmpty(t, msg.EventID)
			return nil
		})

	result, err := tm.executor.DispatchNotifications(context.Background(), workflows.DispatchInput{
		Events:               events,
		NotificationsEnabled: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Published)
}

func TestDispatchNotifications_DisabledStillRecordsAudit(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow).AnyTimes()

	events := []domain.MembershipEvent{
		{Type: domain.EventTypeJoin, Tag: "#AAA", Name: "Alpha", Title: "Member joined", Message: "Alpha joined the club", Timestamp: executorNow},
	}

	tm.store.EXPECT().HasRecentClubEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	tm.store.EXPECT().InsertClubEvents(gomock.Any(), gomock.Len(1)).Return(nil)

	result, err := tm.executor.DispatchNotifications(context.Background(), workflows.DispatchInput{
		Events:               events,
		InactiveCount:        4,
		NotificationsEnabled: false,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 0, result.Published)
	assert.False(t, result.InactiveAlerted)
}

func TestDispatchNotifications_PublishesInactiveDigest(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow).AnyTimes()

	tm.store.EXPECT().GetSetting(gomock.Any(), schema.SettingLastInactiveAlertAt).Return("", nil)
	tm.store.EXPECT().HasRecentNotification(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	tm.store.EXPECT().InsertNotificationIgnoreDup(gomock.Any(), gomock.Any()).Return(true, nil)
	tm.store.EXPECT().SetSetting(gomock.Any(), schema.SettingLastInactiveAlertAt, gomock.Any()).Return(nil)

	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *domain.ClubEventMessage) error {
			assert.Equal(t, domain.EventTypeInactive, msg.Type)
			assert.Equal(t, "Inactive members", msg.Title)
			assert.Equal(t, "4 members have shown no recent activity", msg.Message)
			assert.NotEmpty(t, msg.EventID)
			return nil
		})

	result, err := tm.executor.DispatchNotifications(context.Background(), workflows.DispatchInput{
		InactiveCount:        4,
		NotificationsEnabled: true,
	})

	require.NoError(t, err)
	assert.True(t, result.InactiveAlerted)
	assert.Equal(t, 1, result.Published)
	assert.Equal(t, 0, result.Inserted)
}

func TestDispatchNotifications_PublishFailureDoesNotAbort(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow).AnyTimes()

	events := []domain.MembershipEvent{
		{Type: domain.EventTypeJoin, Tag: "#AAA", Name: "Alpha", Title: "Member joined", Message: "Alpha joined the club", Timestamp: executorNow},
	}

	tm.store.EXPECT().HasRecentClubEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	tm.store.EXPECT().InsertClubEvents(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().HasRecentNotification(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	tm.store.EXPECT().InsertNotificationIgnoreDup(gomock.Any(), gomock.Any()).Return(true, nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	result, err := tm.executor.DispatchNotifications(context.Background(), workflows.DispatchInput{
		Events:               events,
		NotificationsEnabled: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 0, result.Published)
}

func TestPurgeExpired(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(executorNow)

	tm.store.EXPECT().PurgeBattlesBefore(gomock.Any(), executorNow.Add(-720*time.Hour)).Return(int64(120), nil)
	tm.store.EXPECT().PurgeActivityLogsBefore(gomock.Any(), executorNow.Add(-720*time.Hour)).Return(int64(30), nil)
	tm.store.EXPECT().PurgeSnapshotsBefore(gomock.Any(), executorNow.Add(-2160*time.Hour)).Return(int64(400), nil)
	tm.store.EXPECT().PurgeNotificationsBefore(gomock.Any(), executorNow.Add(-720*time.Hour)).Return(int64(8), nil)
	tm.store.EXPECT().SetSetting(gomock.Any(), schema.SettingLastSyncedAt, executorNow.Format(time.RFC3339)).Return(nil)

	result, err := tm.executor.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(120), result.Battles)
	assert.Equal(t, int64(30), result.ActivityLogs)
	assert.Equal(t, int64(400), result.Snapshots)
	assert.Equal(t, int64(8), result.Notifications)
}
