package executor

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"go.temporal.io/sdk/client"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/api/shared/constants"
	"github.com/brawldash/club-sync/internal/api/shared/dto"
	apierrors "github.com/brawldash/club-sync/internal/api/shared/errors"
	"github.com/brawldash/club-sync/internal/battle"
	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/providers/temporal"
	"github.com/brawldash/club-sync/internal/store"
	"github.com/brawldash/club-sync/internal/store/schema"
	"github.com/brawldash/club-sync/internal/workflows"
)

// Executor handles the business logic behind the REST handlers
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListMembers retrieves member snapshots, optionally current members only
	ListMembers(ctx context.Context, activeOnly bool) ([]dto.Member, error)
	// GetMember retrieves one member with history, tracking and last activity
	GetMember(ctx context.Context, rawTag string) (*dto.MemberDetail, error)
	// GetMemberDailyStats retrieves a member's per-day rollups for the window
	GetMemberDailyStats(ctx context.Context, rawTag string, days *int) ([]dto.DailyStat, error)
	// ListBattles retrieves battles newest first, optionally for one member
	ListBattles(ctx context.Context, rawTag string, limit, offset *int) (*dto.BattlePage, error)
	// GetLeaderboard aggregates daily rollups per current member over the window
	GetLeaderboard(ctx context.Context, days *int) ([]dto.LeaderboardEntry, error)
	// ListEvents retrieves the membership audit trail newest first
	ListEvents(ctx context.Context, limit, offset *int) (*dto.EventPage, error)
	// ListNotifications retrieves notifications newest first
	ListNotifications(ctx context.Context, unreadOnly bool, limit, offset *int) (*dto.NotificationPage, error)
	// MarkNotificationRead flags one notification as read
	MarkNotificationRead(ctx context.Context, id uint64) error
	// MarkAllNotificationsRead flags every unread notification as read
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
	// GetSettings retrieves the settings view with credentials masked
	GetSettings(ctx context.Context) (*dto.Settings, error)
	// UpdateSettings applies a partial settings write
	UpdateSettings(ctx context.Context, update dto.SettingsUpdate) (*dto.Settings, error)
	// TriggerSync starts a sync workflow run outside the periodic schedule
	TriggerSync(ctx context.Context) (*dto.SyncTriggerResult, error)
}

type executor struct {
	store                 store.Store
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
	clock                 adapter.Clock
}

// NewExecutor creates a new API executor instance
func NewExecutor(st store.Store, orchestrator temporal.TemporalOrchestrator, orchestratorTaskQueue string, clock adapter.Clock) Executor {
	return &executor{
		store:                 st,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
		clock:                 clock,
	}
}

// clampPage resolves optional limit/offset parameters against the defaults.
func clampPage(limit, offset *int) (int, int) {
	l := constants.DEFAULT_LIMIT
	if limit != nil && *limit > 0 {
		l = *limit
	}
	if l > constants.MAX_LIMIT {
		l = constants.MAX_LIMIT
	}
	o := 0
	if offset != nil && *offset > 0 {
		o = *offset
	}
	return l, o
}

// clampDays resolves an optional day-window parameter against the defaults.
func clampDays(days *int) int {
	d := constants.DEFAULT_STAT_DAYS
	if days != nil && *days > 0 {
		d = *days
	}
	if d > constants.MAX_STAT_DAYS {
		d = constants.MAX_STAT_DAYS
	}
	return d
}

func nextOffset(count, limit, offset int) *int {
	if count < limit {
		return nil
	}
	next := offset + limit
	return &next
}

func (e *executor) ListMembers(ctx context.Context, activeOnly bool) ([]dto.Member, error) {
	members, err := e.store.ListMembers(ctx, activeOnly)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to list members: %v", err))
	}

	result := make([]dto.Member, 0, len(members))
	for _, m := range members {
		result = append(result, dto.MemberFromSchema(m))
	}
	return result, nil
}

func (e *executor) GetMember(ctx context.Context, rawTag string) (*dto.MemberDetail, error) {
	tag := domain.NormalizeTag(rawTag)
	if !tag.Valid() {
		return nil, apierrors.NewValidationError("invalid player tag")
	}

	member, err := e.store.GetMember(ctx, tag)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to get member: %v", err))
	}
	if member == nil {
		return nil, apierrors.NewNotFoundError(fmt.Sprintf("member %s not found", tag))
	}

	detail := &dto.MemberDetail{Member: dto.MemberFromSchema(member)}

	history, err := e.store.GetMemberHistory(ctx, tag)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to get member history: %v", err))
	}
	detail.History = dto.MemberHistoryFromSchema(history)

	tracking, err := e.store.GetPlayerTracking(ctx, tag)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to get player tracking: %v", err))
	}
	detail.Tracking = dto.PlayerTrackingFromSchema(tracking)

	activity, err := e.store.GetLatestActivityLog(ctx, tag)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to get activity log: %v", err))
	}
	detail.LastActivity = dto.ActivityObservationFromSchema(activity)

	return detail, nil
}

func (e *executor) GetMemberDailyStats(ctx context.Context, rawTag string, days *int) ([]dto.DailyStat, error) {
	tag := domain.NormalizeTag(rawTag)
	if !tag.Valid() {
		return nil, apierrors.NewValidationError("invalid player tag")
	}

	window := clampDays(days)
	since := battle.Day(e.clock.Now()).AddDate(0, 0, -(window - 1))

	stats, err := e.store.ListDailyStats(ctx, tag, since)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to list daily stats: %v", err))
	}

	result := make([]dto.DailyStat, 0, len(stats))
	for _, s := range stats {
		result = append(result, dto.DailyStatFromSchema(s))
	}
	return result, nil
}

func (e *executor) ListBattles(ctx context.Context, rawTag string, limit, offset *int) (*dto.BattlePage, error) {
	var tag domain.Tag
	if strings.TrimSpace(rawTag) != "" {
		tag = domain.NormalizeTag(rawTag)
		if !tag.Valid() {
			return nil, apierrors.NewValidationError("invalid player tag")
		}
	}

	l, o := clampPage(limit, offset)
	battles, err := e.store.ListBattles(ctx, tag, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to list battles: %v", err))
	}

	page := &dto.BattlePage{
		Items:  make([]dto.Battle, 0, len(battles)),
		Limit:  l,
		Offset: o,
	}
	for _, b := range battles {
		page.Items = append(page.Items, dto.BattleFromSchema(b))
	}
	page.NextOffset = nextOffset(len(battles), l, o)
	return page, nil
}

func (e *executor) GetLeaderboard(ctx context.Context, days *int) ([]dto.LeaderboardEntry, error) {
	window := clampDays(days)
	since := battle.Day(e.clock.Now()).AddDate(0, 0, -(window - 1))

	members, err := e.store.ListMembers(ctx, true)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to list members: %v", err))
	}

	entries := make([]dto.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		stats, err := e.store.ListDailyStats(ctx, m.Tag, since)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to list daily stats: %v", err))
		}

		entry := dto.LeaderboardEntry{
			Tag:      m.Tag.String(),
			Name:     m.Name,
			Role:     m.Role,
			Trophies: m.Trophies,
		}
		for _, s := range stats {
			entry.Battles += s.Battles
			entry.Wins += s.Wins
			entry.Losses += s.Losses
			entry.StarPlayers += s.StarPlayers
			entry.TrophiesGained += s.TrophiesGained
		}
		if decided := entry.Wins + entry.Losses; decided > 0 {
			entry.WinRate = float64(entry.Wins) / float64(decided) * 100
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TrophiesGained != entries[j].TrophiesGained {
			return entries[i].TrophiesGained > entries[j].TrophiesGained
		}
		return entries[i].Trophies > entries[j].Trophies
	})
	return entries, nil
}

func (e *executor) ListEvents(ctx context.Context, limit, offset *int) (*dto.EventPage, error) {
	l, o := clampPage(limit, offset)
	events, err := e.store.ListClubEvents(ctx, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to list club events: %v", err))
	}

	page := &dto.EventPage{
		Items:  make([]dto.ClubEvent, 0, len(events)),
		Limit:  l,
		Offset: o,
	}
	for _, ev := range events {
		page.Items = append(page.Items, dto.ClubEventFromSchema(ev))
	}
	page.NextOffset = nextOffset(len(events), l, o)
	return page, nil
}

func (e *executor) ListNotifications(ctx context.Context, unreadOnly bool, limit, offset *int) (*dto.NotificationPage, error) {
	l, o := clampPage(limit, offset)
	notifications, err := e.store.ListNotifications(ctx, unreadOnly, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to list notifications: %v", err))
	}

	page := &dto.NotificationPage{
		Items:  make([]dto.Notification, 0, len(notifications)),
		Limit:  l,
		Offset: o,
	}
	for _, n := range notifications {
		page.Items = append(page.Items, dto.NotificationFromSchema(n))
	}
	page.NextOffset = nextOffset(len(notifications), l, o)
	return page, nil
}

func (e *executor) MarkNotificationRead(ctx context.Context, id uint64) error {
	if err := e.store.MarkNotificationRead(ctx, id); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("failed to mark notification read: %v", err))
	}
	return nil
}

func (e *executor) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	updated, err := e.store.MarkAllNotificationsRead(ctx)
	if err != nil {
		return 0, apierrors.NewDatabaseError(fmt.Sprintf("failed to mark notifications read: %v", err))
	}
	return updated, nil
}

func (e *executor) GetSettings(ctx context.Context) (*dto.Settings, error) {
	values, err := e.store.GetAllSettings(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to load settings: %v", err))
	}

	settings := &dto.Settings{
		ClubTag:                  domain.NormalizeTag(values[schema.SettingClubTag]).String(),
		APIKeyConfigured:         strings.TrimSpace(values[schema.SettingAPIKey]) != "",
		WebhookURL:               values[schema.SettingWebhookURL],
		NotificationsEnabled:     values[schema.SettingNotificationsEnabled] != "false",
		InactivityThresholdHours: 48,
		LastSyncedAt:             values[schema.SettingLastSyncedAt],
		LastInactiveAlertAt:      values[schema.SettingLastInactiveAlertAt],
	}
	if hours, err := strconv.Atoi(values[schema.SettingInactivityThreshold]); err == nil && hours > 0 {
		settings.InactivityThresholdHours = hours
	}
	if trophies, err := strconv.Atoi(values[schema.SettingRequiredTrophies]); err == nil {
		settings.RequiredTrophies = trophies
	}
	return settings, nil
}

func (e *executor) UpdateSettings(ctx context.Context, update dto.SettingsUpdate) (*dto.Settings, error) {
	writes := map[string]string{}

	if update.ClubTag != nil {
		tag := domain.NormalizeTag(*update.ClubTag)
		if !tag.Valid() {
			return nil, apierrors.NewValidationError("invalid club tag")
		}
		writes[schema.SettingClubTag] = tag.String()
	}
	if update.APIKey != nil {
		key := strings.TrimSpace(*update.APIKey)
		if key == "" {
			return nil, apierrors.NewValidationError("api_key must not be empty")
		}
		writes[schema.SettingAPIKey] = key
	}
	if update.WebhookURL != nil {
		raw := strings.TrimSpace(*update.WebhookURL)
		if raw != "" {
			u, err := url.Parse(raw)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return nil, apierrors.NewValidationError("webhook_url must be an absolute http(s) URL")
			}
		}
		// Empty string clears the webhook; the bridge then drops events.
		writes[schema.SettingWebhookURL] = raw
	}
	if update.NotificationsEnabled != nil {
		writes[schema.SettingNotificationsEnabled] = strconv.FormatBool(*update.NotificationsEnabled)
	}
	if update.InactivityThresholdHours != nil {
		if *update.InactivityThresholdHours <= 0 {
			return nil, apierrors.NewValidationError("inactivity_threshold_hours must be positive")
		}
		writes[schema.SettingInactivityThreshold] = strconv.Itoa(*update.InactivityThresholdHours)
	}

	if len(writes) == 0 {
		return nil, apierrors.NewValidationError("no settings provided")
	}

	for key, value := range writes {
		if err := e.store.SetSetting(ctx, key, value); err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("failed to update setting %s: %v", key, err))
		}
	}
	return e.GetSettings(ctx)
}

func (e *executor) TriggerSync(ctx context.Context) (*dto.SyncTriggerResult, error) {
	workflowID := fmt.Sprintf("club-sync-manual-%d", e.clock.Now().UTC().UnixMilli())
	run, err := e.orchestrator.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: e.orchestratorTaskQueue,
	}, workflows.SyncClubWorkflowName)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("failed to start sync workflow: %v", err))
	}

	return &dto.SyncTriggerResult{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}
