package notify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/store"
	"github.com/brawldash/club-sync/internal/store/schema"
)

// Deduplicator turns membership events and ad hoc alerts into notification
// rows, collapsing duplicates inside a run and suppressing repeats across
// recent runs. The storage-level dedupe key is the last line of defense
// against concurrent runs inserting the same row.
type Deduplicator struct {
	store         store.Store
	recencyWindow time.Duration
	inactiveEvery time.Duration
}

// NewDeduplicator creates a new notification deduplicator. recencyWindow
// suppresses content-identical notifications across runs; inactiveEvery
// throttles the aggregate inactive-members digest.
func NewDeduplicator(s store.Store, recencyWindow, inactiveEvery time.Duration) *Deduplicator {
	return &Deduplicator{
		store:         s,
		recencyWindow: recencyWindow,
		inactiveEvery: inactiveEvery,
	}
}

// DedupeKey derives the content hash used as the storage uniqueness key. The
// timestamp is truncated to the second so two writers producing the same
// content in the same instant collide.
func DedupeKey(eventType domain.EventType, tag domain.Tag, title, message string, at time.Time) string {
	payload := fmt.Sprintf("%s|%s|%s|%s|%d", eventType, tag, title, message, at.UTC().Truncate(time.Second).Unix())
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// Process inserts deduplicated notifications for one run's events. Returns
// the number of notification rows actually inserted.
func (d *Deduplicator) Process(ctx context.Context, events []domain.MembershipEvent, now time.Time) (int, error) {
	type contentKey struct {
		eventType domain.EventType
		tag       domain.Tag
		title     string
		message   string
	}

	// Intra-batch dedup: identical tuples produced within the same run
	// collapse to one.
	seen := make(map[contentKey]bool, len(events))
	inserted := 0
	for _, e := range events {
		key := contentKey{eventType: e.Type, tag: e.Tag, title: e.Title, message: e.Message}
		if seen[key] {
			continue
		}
		seen[key] = true

		n := &schema.Notification{
			Type:      e.Type,
			Title:     e.Title,
			Message:   e.Message,
			Tag:       e.Tag,
			Name:      e.Name,
			DedupeKey: DedupeKey(e.Type, e.Tag, e.Title, e.Message, now),
			CreatedAt: now,
		}

		ok, err := d.insert(ctx, n, now)
		if err != nil {
			// One failed insert does not abort the remaining events.
			logger.Error(err, zap.String("tag", e.Tag.String()), zap.String("type", string(e.Type)))
			continue
		}
		if ok {
			inserted++
		}
	}

	return inserted, nil
}

// NotifyInactive inserts the aggregate inactive-members digest, throttled to
// once per configured interval via the last-fired setting. When the digest
// fires it is returned so the caller can publish it like any other event; a
// nil event means the digest was skipped or throttled.
func (d *Deduplicator) NotifyInactive(ctx context.Context, inactiveCount int, now time.Time) (*domain.MembershipEvent, error) {
	if inactiveCount <= 0 {
		return nil, nil
	}

	lastRaw, err := d.store.GetSetting(ctx, schema.SettingLastInactiveAlertAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load last inactive alert time: %w", err)
	}
	if lastRaw != "" {
		last, err := time.Parse(time.RFC3339, lastRaw)
		if err == nil && now.Sub(last) < d.inactiveEvery {
			return nil, nil
		}
	}

	title := "Inactive members"
	message := fmt.Sprintf("%d members have shown no recent activity", inactiveCount)
	n := &schema.Notification{
		Type:      domain.EventTypeInactive,
		Title:     title,
		Message:   message,
		DedupeKey: DedupeKey(domain.EventTypeInactive, "", title, message, now),
		CreatedAt: now,
	}

	ok, err := d.insert(ctx, n, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	digest := &domain.MembershipEvent{
		Type:      domain.EventTypeInactive,
		Title:     title,
		Message:   message,
		Timestamp: now,
	}

	if err := d.store.SetSetting(ctx, schema.SettingLastInactiveAlertAt, now.UTC().Format(time.RFC3339)); err != nil {
		return digest, fmt.Errorf("failed to record inactive alert time: %w", err)
	}

	return digest, nil
}

// insert applies the cross-run recency check, then the storage-level
// conflict-ignoring insert.
func (d *Deduplicator) insert(ctx context.Context, n *schema.Notification, now time.Time) (bool, error) {
	if d.recencyWindow > 0 {
		recent, err := d.store.HasRecentNotification(ctx, n, now.Add(-d.recencyWindow))
		if err != nil {
			return false, fmt.Errorf("failed to check recent notifications: %w", err)
		}
		if recent {
			return false, nil
		}
	}

	ok, err := d.store.InsertNotificationIgnoreDup(ctx, n)
	if err != nil {
		return false, fmt.Errorf("failed to insert notification: %w", err)
	}
	return ok, nil
}
