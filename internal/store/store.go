package store

import (
	"context"
	"time"

	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/store/schema"
)

// TagDay identifies one (tag, calendar day) daily rollup.
type TagDay struct {
	Tag domain.Tag
	Day time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertMember replaces the member snapshot row for its tag
	UpsertMember(ctx context.Context, member *schema.Member) error
	// GetMember retrieves a member by tag, nil when absent
	GetMember(ctx context.Context, tag domain.Tag) (*schema.Member, error)
	// ListMembers retrieves members, optionally restricted to current ones
	ListMembers(ctx context.Context, activeOnly bool) ([]*schema.Member, error)
	// MarkMemberInactive flags a departed member's snapshot row
	MarkMemberInactive(ctx context.Context, tag domain.Tag) error

	// GetMemberHistory retrieves the history row for a tag, nil when absent
	GetMemberHistory(ctx context.Context, tag domain.Tag) (*schema.MemberHistory, error)
	// ListCurrentMemberHistories retrieves histories flagged as current members
	ListCurrentMemberHistories(ctx context.Context) ([]*schema.MemberHistory, error)
	// CountMemberHistories returns the number of history rows ever created
	CountMemberHistories(ctx context.Context) (int64, error)
	// SaveMemberHistory creates or replaces a history row
	SaveMemberHistory(ctx context.Context, history *schema.MemberHistory) error

	// InsertActivityLog appends one activity observation
	InsertActivityLog(ctx context.Context, entry *schema.ActivityLogEntry) error
	// GetLatestActivityLog retrieves the most recent observation for a tag
	GetLatestActivityLog(ctx context.Context, tag domain.Tag) (*schema.ActivityLogEntry, error)
	// HasRecentActivity reports whether a nonzero-delta observation exists for
	// the tag since the given time
	HasRecentActivity(ctx context.Context, tag domain.Tag, since time.Time) (bool, error)
	// PurgeActivityLogsBefore deletes observations older than the cutoff
	PurgeActivityLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// UpsertBattles inserts battles, silently skipping (tag, battle_time)
	// duplicates; returns the number of rows actually inserted
	UpsertBattles(ctx context.Context, battles []*schema.Battle) (int64, error)
	// GetBattlesBetween retrieves one tag's battles in [from, to)
	GetBattlesBetween(ctx context.Context, tag domain.Tag, from, to time.Time) ([]*schema.Battle, error)
	// ListBattles retrieves recent battles across the club, newest first
	ListBattles(ctx context.Context, tag domain.Tag, limit, offset int) ([]*schema.Battle, error)
	// PurgeBattlesBefore deletes battles older than the cutoff
	PurgeBattlesBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// UpsertDailyStat overwrites the rollup row for its (tag, date)
	UpsertDailyStat(ctx context.Context, stat *schema.DailyStat) error
	// ListDailyStats retrieves a tag's rollups since the given day
	ListDailyStats(ctx context.Context, tag domain.Tag, since time.Time) ([]*schema.DailyStat, error)

	// GetLatestSnapshotsBefore retrieves the most recent snapshot set for a
	// tag captured strictly before the given day; empty when none exists
	GetLatestSnapshotsBefore(ctx context.Context, tag domain.Tag, day time.Time) ([]*schema.BrawlerSnapshot, error)
	// HasSnapshotHistoryBefore reports whether any snapshot exists for the tag
	// strictly before the given day
	HasSnapshotHistoryBefore(ctx context.Context, tag domain.Tag, day time.Time) (bool, error)
	// ReplaceDaySnapshots atomically replaces a tag's snapshot rows for a day
	ReplaceDaySnapshots(ctx context.Context, tag domain.Tag, day time.Time, snapshots []*schema.BrawlerSnapshot) error
	// PurgeSnapshotsBefore deletes snapshots captured before the cutoff day
	PurgeSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// GetPlayerTracking retrieves the accumulator row for a tag, nil when absent
	GetPlayerTracking(ctx context.Context, tag domain.Tag) (*schema.PlayerTracking, error)
	// AddTrackingDeltas increments a tag's accumulators, creating the row on
	// first use; zero deltas are never written
	AddTrackingDeltas(ctx context.Context, tag domain.Tag, powerUps, unlocks int, now time.Time) error

	// InsertClubEvents appends membership events to the audit trail
	InsertClubEvents(ctx context.Context, events []*schema.ClubEvent) error
	// HasRecentClubEvent reports whether a matching event exists since the
	// given time
	HasRecentClubEvent(ctx context.Context, eventType domain.EventType, tag domain.Tag, since time.Time) (bool, error)
	// ListClubEvents retrieves events newest first
	ListClubEvents(ctx context.Context, limit, offset int) ([]*schema.ClubEvent, error)

	// InsertNotificationIgnoreDup inserts a notification unless its dedupe key
	// already exists; reports whether a row was inserted
	InsertNotificationIgnoreDup(ctx context.Context, notification *schema.Notification) (bool, error)
	// HasRecentNotification reports whether a content-identical notification
	// exists since the given time
	HasRecentNotification(ctx context.Context, n *schema.Notification, since time.Time) (bool, error)
	// ListNotifications retrieves notifications newest first
	ListNotifications(ctx context.Context, unreadOnly bool, limit, offset int) ([]*schema.Notification, error)
	// MarkNotificationRead flags one notification as read
	MarkNotificationRead(ctx context.Context, id uint64) error
	// MarkAllNotificationsRead flags every unread notification as read
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
	// PurgeNotificationsBefore deletes notifications older than the cutoff
	PurgeNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// GetSetting retrieves one setting value; empty string when unset
	GetSetting(ctx context.Context, key string) (string, error)
	// SetSetting creates or updates one setting value
	SetSetting(ctx context.Context, key, value string) error
	// GetAllSettings retrieves the full settings map
	GetAllSettings(ctx context.Context) (map[string]string, error)
}
