package workflows

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/battle"
	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/messaging"
	"github.com/brawldash/club-sync/internal/notify"
	"github.com/brawldash/club-sync/internal/providers/vendors/brawlstars"
	"github.com/brawldash/club-sync/internal/reconcile"
	"github.com/brawldash/club-sync/internal/store"
	"github.com/brawldash/club-sync/internal/store/schema"
	"github.com/brawldash/club-sync/internal/tracker"
)

// SyncBatchInput carries one batch of roster members into the batch activity.
type SyncBatchInput struct {
	APIKey       string                `json:"api_key"`
	Members      []domain.RosterMember `json:"members"`
	StickyWindow time.Duration         `json:"sticky_window"`
}

// BatchResult is the per-batch outcome returned by SyncMemberBatch.
type BatchResult struct {
	Synced          int   `json:"synced"`
	Failed          int   `json:"failed"`
	BattlesIngested int64 `json:"battles_ingested"`
	Inactive        int   `json:"inactive"`
}

// DispatchInput carries one run's membership events into the notification
// activity.
type DispatchInput struct {
	Events               []domain.MembershipEvent `json:"events"`
	InactiveCount        int                      `json:"inactive_count"`
	NotificationsEnabled bool                     `json:"notifications_enabled"`
}

// DispatchResult is the outcome of DispatchNotifications.
type DispatchResult struct {
	Inserted        int  `json:"inserted"`
	Published       int  `json:"published"`
	InactiveAlerted bool `json:"inactive_alerted"`
}

// PurgeResult reports how many rows each retention purge removed.
type PurgeResult struct {
	Battles       int64 `json:"battles"`
	ActivityLogs  int64 `json:"activity_logs"`
	Snapshots     int64 `json:"snapshots"`
	Notifications int64 `json:"notifications"`
}

// ClientFactory builds an upstream API client bound to the given key. The key
// lives in the settings table, so each run constructs a fresh client.
type ClientFactory func(apiKey string) brawlstars.Client

// ExecutorConfig holds activity-level tunables.
type ExecutorConfig struct {
	// StickyWindow is the fallback recent-activity window when the
	// inactivity threshold setting is unset
	StickyWindow time.Duration
	// NotificationWindow suppresses re-announcing a same-type event for a tag
	NotificationWindow time.Duration
	// FetchConcurrency is the per-batch member fetch pool size
	FetchConcurrency int
	// FetchQueueSize is the pending-task capacity of the fetch pool
	FetchQueueSize int

	RetentionBattles       time.Duration
	RetentionActivityLogs  time.Duration
	RetentionSnapshots     time.Duration
	RetentionNotifications time.Duration
}

// Executor defines the activity surface of the sync workflow
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockSyncExecutor
type Executor interface {
	// LoadSyncSettings loads and validates the per-run settings
	LoadSyncSettings(ctx context.Context) (*domain.SyncSettings, error)
	// FetchRoster fetches the configured club's roster from upstream
	FetchRoster(ctx context.Context, settings *domain.SyncSettings) (*domain.ClubRoster, error)
	// SyncMemberBatch fetches and persists one batch of member profiles,
	// battle logs and derived stats
	SyncMemberBatch(ctx context.Context, input SyncBatchInput) (*BatchResult, error)
	// ReconcileMembership runs the join/leave/role state machine for the roster
	ReconcileMembership(ctx context.Context, roster *domain.ClubRoster) (*reconcile.Result, error)
	// DispatchNotifications records, deduplicates and publishes one run's events
	DispatchNotifications(ctx context.Context, input DispatchInput) (*DispatchResult, error)
	// PurgeExpired applies the retention cutoffs and stamps the run time
	PurgeExpired(ctx context.Context) (*PurgeResult, error)
}

type executor struct {
	store         store.Store
	clientFactory ClientFactory
	normalizer    *battle.Normalizer
	reconciler    *reconcile.Reconciler
	tracker       *tracker.Tracker
	dedup         *notify.Deduplicator
	publisher     messaging.Publisher
	clock         adapter.Clock
	config        ExecutorConfig
}

// NewExecutor creates a new activity executor
func NewExecutor(
	s store.Store,
	clientFactory ClientFactory,
	normalizer *battle.Normalizer,
	reconciler *reconcile.Reconciler,
	trk *tracker.Tracker,
	dedup *notify.Deduplicator,
	publisher messaging.Publisher,
	clock adapter.Clock,
	config ExecutorConfig,
) Executor {
	if config.FetchConcurrency <= 0 {
		config.FetchConcurrency = 3
	}
	if config.FetchQueueSize <= 0 {
		config.FetchQueueSize = 64
	}
	return &executor{
		store:         s,
		clientFactory: clientFactory,
		normalizer:    normalizer,
		reconciler:    reconciler,
		tracker:       trk,
		dedup:         dedup,
		publisher:     publisher,
		clock:         clock,
		config:        config,
	}
}

// LoadSyncSettings loads the settings table and validates the fields a run
// cannot proceed without. An unconfigured club tag or API key fails the run
// permanently; retrying cannot fix it.
func (e *executor) LoadSyncSettings(ctx context.Context) (*domain.SyncSettings, error) {
	all, err := e.store.GetAllSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := &domain.SyncSettings{
		ClubTag:              domain.NormalizeTag(all[schema.SettingClubTag]),
		APIKey:               all[schema.SettingAPIKey],
		WebhookURL:           all[schema.SettingWebhookURL],
		NotificationsEnabled: all[schema.SettingNotificationsEnabled] != "false",
		InactivityThreshold:  e.config.StickyWindow,
	}

	if !settings.ClubTag.Valid() || settings.APIKey == "" {
		return nil, temporal.NewNonRetryableApplicationError(
			"sync settings are incomplete", "SettingsIncomplete", domain.ErrSettingsIncomplete)
	}

	if raw := all[schema.SettingInactivityThreshold]; raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			logger.WarnCtx(ctx, "ignoring invalid inactivity threshold setting", zap.String("value", raw))
		} else {
			settings.InactivityThreshold = time.Duration(hours) * time.Hour
		}
	}

	if raw := all[schema.SettingRequiredTrophies]; raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			settings.RequiredTrophies = v
		}
	}

	return settings, nil
}

// FetchRoster fetches the club roster. Authorization and missing-club failures
// are permanent for this run; transient upstream trouble stays retryable.
func (e *executor) FetchRoster(ctx context.Context, settings *domain.SyncSettings) (*domain.ClubRoster, error) {
	client := e.clientFactory(settings.APIKey)
	roster, err := client.FetchClub(ctx, settings.ClubTag)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrNotFound) {
			return nil, temporal.NewNonRetryableApplicationError(
				"club roster is unreachable", "RosterUnavailable", err)
		}
		return nil, err
	}

	// The club's entry requirement is surfaced in the dashboard; refreshing it
	// here is best-effort.
	required := strconv.Itoa(roster.RequiredTrophies)
	if err := e.store.SetSetting(ctx, schema.SettingRequiredTrophies, required); err != nil {
		logger.WarnCtx(ctx, "failed to record required trophies", zap.Error(err))
	}

	return roster, nil
}

// SyncMemberBatch fans one batch of members out over the fetch pool. A member
// whose fetch or persistence fails is counted and skipped; the batch itself
// only errors when every member failed.
func (e *executor) SyncMemberBatch(ctx context.Context, input SyncBatchInput) (*BatchResult, error) {
	client := e.clientFactory(input.APIKey)
	now := e.clock.Now()

	pool := pond.NewPool(e.config.FetchConcurrency,
		pond.WithQueueSize(e.config.FetchQueueSize),
		pond.WithContext(ctx))

	var mu sync.Mutex
	result := &BatchResult{}

	for _, m := range input.Members {
		member := m
		pool.Submit(func() {
			ingested, inactive, err := e.syncMember(ctx, client, member, input.StickyWindow, now)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to sync member: %w", err),
					zap.String("tag", member.Tag.String()))
				result.Failed++
				return
			}
			result.Synced++
			result.BattlesIngested += ingested
			if inactive {
				result.Inactive++
			}
		})
	}

	pool.StopAndWait()

	if result.Synced == 0 && result.Failed > 0 {
		return nil, fmt.Errorf("all %d members in batch failed to sync", result.Failed)
	}

	return result, nil
}

// syncMember fetches one member's profile, battles and ranked info and folds
// them into the canonical tables.
func (e *executor) syncMember(ctx context.Context, client brawlstars.Client, m domain.RosterMember, stickyWindow time.Duration, now time.Time) (int64, bool, error) {
	profile, err := client.FetchPlayer(ctx, m.Tag)
	if err != nil {
		return 0, false, fmt.Errorf("failed to fetch player profile: %w", err)
	}

	rawBattles, err := client.FetchBattleLog(ctx, m.Tag)
	if err != nil {
		return 0, false, fmt.Errorf("failed to fetch battle log: %w", err)
	}

	battles := make([]*schema.Battle, 0, len(rawBattles))
	for i := range rawBattles {
		b, err := e.normalizer.Normalize(&rawBattles[i], m.Tag)
		if err != nil {
			// A battle with an undecodable timestamp is dropped, not fatal.
			logger.WarnCtx(ctx, "skipping malformed battle",
				zap.String("tag", m.Tag.String()),
				zap.Error(err))
			continue
		}
		battles = append(battles, b)
	}
	battle.CorrectClockSkew(battles, now)

	ingested, err := e.store.UpsertBattles(ctx, battles)
	if err != nil {
		return 0, false, fmt.Errorf("failed to upsert battles: %w", err)
	}

	if err := e.recomputeDailyStats(ctx, m.Tag, battles); err != nil {
		return ingested, false, err
	}

	// Ranked endpoints lag behind the main API during season rollovers; a
	// failure here leaves the previous labels in place.
	var ranked *domain.RankedInfo
	if ranked, err = client.FetchRankedInfo(ctx, m.Tag); err != nil {
		logger.WarnCtx(ctx, "failed to fetch ranked info",
			zap.String("tag", m.Tag.String()),
			zap.Error(err))
		ranked = nil
	}

	member := &schema.Member{
		Tag:             m.Tag,
		Name:            profile.Name,
		Role:            m.Role,
		Trophies:        profile.Trophies,
		HighestTrophies: profile.HighestTrophies,
		ExpLevel:        profile.ExpLevel,
		WinRate:         battle.WinRate(battles),
		BrawlerCount:    len(profile.Brawlers),
		TrioVictories:   profile.TrioVictories,
		SoloVictories:   profile.SoloVictories,
		DuoVictories:    profile.DuoVictories,
		IsActive:        true,
		LastUpdated:     now,
	}
	if ranked != nil {
		member.CurrentRank = ranked.CurrentRank
		member.HighestRank = ranked.HighestRank
	}

	if err := e.store.UpsertMember(ctx, member); err != nil {
		return ingested, false, fmt.Errorf("failed to upsert member: %w", err)
	}

	if _, err := e.tracker.Track(ctx, m.Tag, profile.Brawlers, now); err != nil {
		logger.WarnCtx(ctx, "failed to track brawler deltas",
			zap.String("tag", m.Tag.String()),
			zap.Error(err))
	}

	activity, err := e.reconciler.RecordActivity(ctx, m.Tag, profile.Trophies, stickyWindow, now)
	if err != nil {
		return ingested, false, fmt.Errorf("failed to record activity: %w", err)
	}

	return ingested, activity == domain.ActivityInactive, nil
}

// recomputeDailyStats rebuilds the rollup row for every day touched by the
// fetched battles from the deduplicated battles table, so re-ingesting the
// same log converges instead of double counting.
func (e *executor) recomputeDailyStats(ctx context.Context, tag domain.Tag, battles []*schema.Battle) error {
	days := make(map[time.Time]bool)
	for _, b := range battles {
		days[battle.Day(b.BattleTime)] = true
	}

	for day := range days {
		stored, err := e.store.GetBattlesBetween(ctx, tag, day, day.Add(24*time.Hour))
		if err != nil {
			return fmt.Errorf("failed to load battles for day: %w", err)
		}
		for _, stat := range battle.Aggregate(stored) {
			if err := e.store.UpsertDailyStat(ctx, stat); err != nil {
				return fmt.Errorf("failed to upsert daily stat: %w", err)
			}
		}
	}

	return nil
}

// ReconcileMembership runs the membership state machine
func (e *executor) ReconcileMembership(ctx context.Context, roster *domain.ClubRoster) (*reconcile.Result, error) {
	return e.reconciler.Reconcile(ctx, roster, e.clock.Now())
}

// DispatchNotifications records the run's events in the audit trail, inserts
// deduplicated notifications and publishes the fresh events to the broker.
// Events already announced inside the notification window are dropped before
// any of that.
func (e *executor) DispatchNotifications(ctx context.Context, input DispatchInput) (*DispatchResult, error) {
	now := e.clock.Now()
	result := &DispatchResult{}

	fresh := make([]domain.MembershipEvent, 0, len(input.Events))
	for _, event := range input.Events {
		if e.config.NotificationWindow > 0 {
			recent, err := e.store.HasRecentClubEvent(ctx, event.Type, event.Tag, now.Add(-e.config.NotificationWindow))
			if err != nil {
				return nil, fmt.Errorf("failed to check recent club events: %w", err)
			}
			if recent {
				continue
			}
		}
		fresh = append(fresh, event)
	}

	if len(fresh) > 0 {
		rows := make([]*schema.ClubEvent, 0, len(fresh))
		for _, event := range fresh {
			rows = append(rows, &schema.ClubEvent{
				EventType:  event.Type,
				Tag:        event.Tag,
				Name:       event.Name,
				OccurredAt: now,
			})
		}
		if err := e.store.InsertClubEvents(ctx, rows); err != nil {
			return nil, fmt.Errorf("failed to record club events: %w", err)
		}
	}

	if !input.NotificationsEnabled {
		logger.DebugCtx(ctx, "notifications disabled, audit trail recorded only",
			zap.Int("events", len(fresh)))
		return result, nil
	}

	inserted, err := e.dedup.Process(ctx, fresh, now)
	if err != nil {
		return nil, fmt.Errorf("failed to process notifications: %w", err)
	}
	result.Inserted = inserted

	// The inactive digest rides the same publish path as membership events so
	// the bridge delivers it to the webhook too.
	digest, err := e.dedup.NotifyInactive(ctx, input.InactiveCount, now)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to raise inactive digest: %w", err))
	}
	if digest != nil {
		result.InactiveAlerted = true
		fresh = append(fresh, *digest)
	}

	for _, event := range fresh {
		msg := &domain.ClubEventMessage{
			EventID:   ulid.MustNewDefault(now).String(),
			Type:      event.Type,
			Tag:       event.Tag,
			Name:      event.Name,
			Title:     event.Title,
			Message:   event.Message,
			Timestamp: event.Timestamp,
		}
		if err := e.publisher.PublishEvent(ctx, msg); err != nil {
			// The notification row is already stored; delivery to the bridge
			// catches up on the next event.
			logger.ErrorCtx(ctx, fmt.Errorf("failed to publish club event: %w", err),
				zap.String("tag", event.Tag.String()),
				zap.String("type", string(event.Type)))
			continue
		}
		result.Published++
	}

	return result, nil
}

// PurgeExpired deletes rows past their retention cutoff and stamps the sync
// time. A zero retention disables that purge.
func (e *executor) PurgeExpired(ctx context.Context) (*PurgeResult, error) {
	now := e.clock.Now()
	result := &PurgeResult{}
	var err error

	if e.config.RetentionBattles > 0 {
		if result.Battles, err = e.store.PurgeBattlesBefore(ctx, now.Add(-e.config.RetentionBattles)); err != nil {
			return nil, fmt.Errorf("failed to purge battles: %w", err)
		}
	}
	if e.config.RetentionActivityLogs > 0 {
		if result.ActivityLogs, err = e.store.PurgeActivityLogsBefore(ctx, now.Add(-e.config.RetentionActivityLogs)); err != nil {
			return nil, fmt.Errorf("failed to purge activity logs: %w", err)
		}
	}
	if e.config.RetentionSnapshots > 0 {
		if result.Snapshots, err = e.store.PurgeSnapshotsBefore(ctx, now.Add(-e.config.RetentionSnapshots)); err != nil {
			return nil, fmt.Errorf("failed to purge snapshots: %w", err)
		}
	}
	if e.config.RetentionNotifications > 0 {
		if result.Notifications, err = e.store.PurgeNotificationsBefore(ctx, now.Add(-e.config.RetentionNotifications)); err != nil {
			return nil, fmt.Errorf("failed to purge notifications: %w", err)
		}
	}

	if err := e.store.SetSetting(ctx, schema.SettingLastSyncedAt, now.UTC().Format(time.RFC3339)); err != nil {
		logger.WarnCtx(ctx, "failed to record last sync time", zap.Error(err))
	}

	return result, nil
}
