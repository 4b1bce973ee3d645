package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// =============================================================================
// Members
// =============================================================================

// UpsertMember replaces the member snapshot row for its tag
func (s *pgStore) UpsertMember(ctx context.Context, member *schema.Member) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			UpdateAll: true,
		}).
		Create(member).Error
	if err != nil {
		return fmt.Errorf("failed to upsert member: %w", err)
	}
	return nil
}

// GetMember retrieves a member by tag, nil when absent
func (s *pgStore) GetMember(ctx context.Context, tag domain.Tag) (*schema.Member, error) {
	var member schema.Member
	err := s.db.WithContext(ctx).Where("tag = ?", tag).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &member, nil
}

// ListMembers retrieves members, optionally restricted to current ones
func (s *pgStore) ListMembers(ctx context.Context, activeOnly bool) ([]*schema.Member, error) {
	var members []*schema.Member
	query := s.db.WithContext(ctx).Order("trophies DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// MarkMemberInactive flags a departed member's snapshot row
func (s *pgStore) MarkMemberInactive(ctx context.Context, tag domain.Tag) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Member{}).
		Where("tag = ?", tag).
		Update("is_active", false).Error
	if err != nil {
		return fmt.Errorf("failed to mark member inactive: %w", err)
	}
	return nil
}

// =============================================================================
// Member histories
// =============================================================================

// GetMemberHistory retrieves the history row for a tag, nil when absent
func (s *pgStore) GetMemberHistory(ctx context.Context, tag domain.Tag) (*schema.MemberHistory, error) {
	var history schema.MemberHistory
	err := s.db.WithContext(ctx).Where("tag = ?", tag).First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member history: %w", err)
	}
	return &history, nil
}

// ListCurrentMemberHistories retrieves histories flagged as current members
func (s *pgStore) ListCurrentMemberHistories(ctx context.Context) ([]*schema.MemberHistory, error) {
	var histories []*schema.MemberHistory
	err := s.db.WithContext(ctx).
		Where("is_current_member = ?", true).
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list current member histories: %w", err)
	}
	return histories, nil
}

// CountMemberHistories returns the number of history rows ever created
func (s *pgStore) CountMemberHistories(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.MemberHistory{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count member histories: %w", err)
	}
	return count, nil
}

// SaveMemberHistory creates or replaces a history row
func (s *pgStore) SaveMemberHistory(ctx context.Context, history *schema.MemberHistory) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			UpdateAll: true,
		}).
		Create(history).Error
	if err != nil {
		return fmt.Errorf("failed to save member history: %w", err)
	}
	return nil
}

// =============================================================================
// Activity logs
// =============================================================================

// InsertActivityLog appends one activity observation
func (s *pgStore) InsertActivityLog(ctx context.Context, entry *schema.ActivityLogEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return nil
}

// GetLatestActivityLog retrieves the most recent observation for a tag
func (s *pgStore) GetLatestActivityLog(ctx context.Context, tag domain.Tag) (*schema.ActivityLogEntry, error) {
	var entry schema.ActivityLogEntry
	err := s.db.WithContext(ctx).
		Where("tag = ?", tag).
		Order("recorded_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest activity log: %w", err)
	}
	return &entry, nil
}

// HasRecentActivity reports whether a nonzero-delta observation exists for the
// tag since the given time
func (s *pgStore) HasRecentActivity(ctx context.Context, tag domain.Tag, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.ActivityLogEntry{}).
		Where("tag = ? AND trophy_delta <> 0 AND recorded_at >= ?", tag, since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check recent activity: %w", err)
	}
	return count > 0, nil
}

// PurgeActivityLogsBefore deletes observations older than the cutoff
func (s *pgStore) PurgeActivityLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("recorded_at < ?", cutoff).
		Delete(&schema.ActivityLogEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge activity logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Battles
// =============================================================================

// UpsertBattles inserts battles, silently skipping (tag, battle_time)
// duplicates; returns the number of rows actually inserted
func (s *pgStore) UpsertBattles(ctx context.Context, battles []*schema.Battle) (int64, error) {
	if len(battles) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}, {Name: "battle_time"}},
			DoNothing: true,
		}).
		Create(&battles)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to upsert battles: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// GetBattlesBetween retrieves one tag's battles in [from, to)
func (s *pgStore) GetBattlesBetween(ctx context.Context, tag domain.Tag, from, to time.Time) ([]*schema.Battle, error) {
	var battles []*schema.Battle
	err := s.db.WithContext(ctx).
		Where("tag = ? AND battle_time >= ? AND battle_time < ?", tag, from, to).
		Order("battle_time ASC").
		Find(&battles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get battles: %w", err)
	}
	return battles, nil
}

// ListBattles retrieves recent battles, newest first. An empty tag returns
// battles across the whole club.
func (s *pgStore) ListBattles(ctx context.Context, tag domain.Tag, limit, offset int) ([]*schema.Battle, error) {
	var battles []*schema.Battle
	query := s.db.WithContext(ctx).Order("battle_time DESC").Limit(limit).Offset(offset)
	if tag != "" {
		query = query.Where("tag = ?", tag)
	}
	if err := query.Find(&battles).Error; err != nil {
		return nil, fmt.Errorf("failed to list battles: %w", err)
	}
	return battles, nil
}

// PurgeBattlesBefore deletes battles older than the cutoff
func (s *pgStore) PurgeBattlesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("battle_time < ?", cutoff).
		Delete(&schema.Battle{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge battles: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Daily stats
// =============================================================================

// UpsertDailyStat overwrites the rollup row for its (tag, date)
func (s *pgStore) UpsertDailyStat(ctx context.Context, stat *schema.DailyStat) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tag"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"battles", "wins", "losses", "star_players",
				"trophies_gained", "trophies_lost", "updated_at",
			}),
		}).
		Create(stat).Error
	if err != nil {
		return fmt.Errorf("failed to upsert daily stat: %w", err)
	}
	return nil
}

// ListDailyStats retrieves a tag's rollups since the given day
func (s *pgStore) ListDailyStats(ctx context.Context, tag domain.Tag, since time.Time) ([]*schema.DailyStat, error) {
	var stats []*schema.DailyStat
	err := s.db.WithContext(ctx).
		Where("tag = ? AND date >= ?", tag, since).
		Order("date ASC").
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}
	return stats, nil
}

// =============================================================================
// Brawler snapshots
// =============================================================================

// GetLatestSnapshotsBefore retrieves the most recent snapshot set for a tag
// captured strictly before the given day; empty when none exists
func (s *pgStore) GetLatestSnapshotsBefore(ctx context.Context, tag domain.Tag, day time.Time) ([]*schema.BrawlerSnapshot, error) {
	var latestDay *time.Time
	err := s.db.WithContext(ctx).
		Model(&schema.BrawlerSnapshot{}).
		Where("tag = ? AND capture_day < ?", tag, day).
		Select("MAX(capture_day)").
		Scan(&latestDay).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find latest snapshot day: %w", err)
	}
	if latestDay == nil {
		return nil, nil
	}

	var snapshots []*schema.BrawlerSnapshot
	err = s.db.WithContext(ctx).
		Where("tag = ? AND capture_day = ?", tag, latestDay).
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}
	return snapshots, nil
}

// HasSnapshotHistoryBefore reports whether any snapshot exists for the tag
// strictly before the given day
func (s *pgStore) HasSnapshotHistoryBefore(ctx context.Context, tag domain.Tag, day time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.BrawlerSnapshot{}).
		Where("tag = ? AND capture_day < ?", tag, day).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check snapshot history: %w", err)
	}
	return count > 0, nil
}

// ReplaceDaySnapshots atomically replaces a tag's snapshot rows for a day.
// Delete and insert run in one transaction so a re-run mid-day cannot leave
// duplicate rows behind.
func (s *pgStore) ReplaceDaySnapshots(ctx context.Context, tag domain.Tag, day time.Time, snapshots []*schema.BrawlerSnapshot) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag = ? AND capture_day = ?", tag, day).
			Delete(&schema.BrawlerSnapshot{}).Error; err != nil {
			return err
		}
		if len(snapshots) == 0 {
			return nil
		}
		return tx.Create(&snapshots).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace day snapshots: %w", err)
	}
	return nil
}

// PurgeSnapshotsBefore deletes snapshots captured before the cutoff day
func (s *pgStore) PurgeSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("capture_day < ?", cutoff).
		Delete(&schema.BrawlerSnapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge snapshots: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Player tracking
// =============================================================================

// GetPlayerTracking retrieves the accumulator row for a tag, nil when absent
func (s *pgStore) GetPlayerTracking(ctx context.Context, tag domain.Tag) (*schema.PlayerTracking, error) {
	var tracking schema.PlayerTracking
	err := s.db.WithContext(ctx).Where("tag = ?", tag).First(&tracking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player tracking: %w", err)
	}
	return &tracking, nil
}

// AddTrackingDeltas increments a tag's accumulators, creating the row on
// first use. Counters only ever increase; callers must not pass negatives.
func (s *pgStore) AddTrackingDeltas(ctx context.Context, tag domain.Tag, powerUps, unlocks int, now time.Time) error {
	if powerUps == 0 && unlocks == 0 {
		return nil
	}

	tracking := schema.PlayerTracking{
		Tag:               tag,
		PowerUps:          powerUps,
		Unlocks:           unlocks,
		TrackingStartedAt: now,
		LastUpdated:       now,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tag"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"power_ups":    gorm.Expr("player_trackings.power_ups + ?", powerUps),
				"unlocks":      gorm.Expr("player_trackings.unlocks + ?", unlocks),
				"last_updated": now,
			}),
		}).
		Create(&tracking).Error
	if err != nil {
		return fmt.Errorf("failed to add tracking deltas: %w", err)
	}
	return nil
}

// =============================================================================
// Club events
// =============================================================================

// InsertClubEvents appends membership events to the audit trail
func (s *pgStore) InsertClubEvents(ctx context.Context, events []*schema.ClubEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&events).Error; err != nil {
		return fmt.Errorf("failed to insert club events: %w", err)
	}
	return nil
}

// HasRecentClubEvent reports whether a matching event exists since the given time
func (s *pgStore) HasRecentClubEvent(ctx context.Context, eventType domain.EventType, tag domain.Tag, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.ClubEvent{}).
		Where("event_type = ? AND tag = ? AND occurred_at >= ?", eventType, tag, since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check recent club event: %w", err)
	}
	return count > 0, nil
}

// ListClubEvents retrieves events newest first
func (s *pgStore) ListClubEvents(ctx context.Context, limit, offset int) ([]*schema.ClubEvent, error) {
	var events []*schema.ClubEvent
	err := s.db.WithContext(ctx).
		Order("occurred_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list club events: %w", err)
	}
	return events, nil
}

// =============================================================================
// Notifications
// =============================================================================

// InsertNotificationIgnoreDup inserts a notification unless its dedupe key
// already exists; reports whether a row was inserted
func (s *pgStore) InsertNotificationIgnoreDup(ctx context.Context, notification *schema.Notification) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedupe_key"}},
			DoNothing: true,
		}).
		Create(notification)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert notification: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// HasRecentNotification reports whether a content-identical notification
// exists since the given time
func (s *pgStore) HasRecentNotification(ctx context.Context, n *schema.Notification, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("type = ? AND tag = ? AND title = ? AND message = ? AND created_at >= ?",
			n.Type, n.Tag, n.Title, n.Message, since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check recent notification: %w", err)
	}
	return count > 0, nil
}

// ListNotifications retrieves notifications newest first
func (s *pgStore) ListNotifications(ctx context.Context, unreadOnly bool, limit, offset int) ([]*schema.Notification, error) {
	var notifications []*schema.Notification
	query := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flags one notification as read
func (s *pgStore) MarkNotificationRead(ctx context.Context, id uint64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllNotificationsRead flags every unread notification as read
func (s *pgStore) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("read = ?", false).
		Update("read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// PurgeNotificationsBefore deletes notifications older than the cutoff
func (s *pgStore) PurgeNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&schema.Notification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Settings
// =============================================================================

// GetSetting retrieves one setting value; empty string when unset
func (s *pgStore) GetSetting(ctx context.Context, key string) (string, error) {
	var setting schema.Setting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return setting.Value, nil
}

// SetSetting creates or updates one setting value
func (s *pgStore) SetSetting(ctx context.Context, key, value string) error {
	setting := schema.Setting{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}
	return nil
}

// GetAllSettings retrieves the full settings map
func (s *pgStore) GetAllSettings(ctx context.Context) (map[string]string, error) {
	var settings []schema.Setting
	if err := s.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}
