package reconcile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/store"
	"github.com/brawldash/club-sync/internal/store/schema"
)

// Result summarizes one reconciliation pass.
type Result struct {
	Joins       int
	Leaves      int
	Promotions  int
	Demotions   int
	RoleChanges int
	NameChanges int
	FirstSync   bool
	Events      []domain.MembershipEvent
}

// Reconciler compares the fresh upstream roster against recorded membership
// state and produces the per-tag transitions and announcement events.
type Reconciler struct {
	store store.Store
}

// NewReconciler creates a new membership reconciler
func NewReconciler(s store.Store) *Reconciler {
	return &Reconciler{store: s}
}

// Reconcile runs the membership state machine for every tag in the roster
// plus every previously-current tag now absent from it. On the very first
// sync ever performed, join events are suppressed so the pre-existing roster
// does not spuriously announce itself.
func (r *Reconciler) Reconcile(ctx context.Context, roster *domain.ClubRoster, now time.Time) (*Result, error) {
	total, err := r.store.CountMemberHistories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count member histories: %w", err)
	}

	result := &Result{FirstSync: total == 0}

	currentHistories, err := r.store.ListCurrentMemberHistories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list current member histories: %w", err)
	}
	departedCandidates := make(map[domain.Tag]*schema.MemberHistory, len(currentHistories))
	for _, h := range currentHistories {
		departedCandidates[h.Tag] = h
	}

	for _, m := range roster.Members {
		delete(departedCandidates, m.Tag)

		if err := r.reconcileRostered(ctx, m, now, result); err != nil {
			// One member's bookkeeping failure does not abort the pass.
			logger.Error(err, zap.String("tag", m.Tag.String()))
		}
	}

	for _, h := range departedCandidates {
		if err := r.reconcileDeparted(ctx, h, now, result); err != nil {
			logger.Error(err, zap.String("tag", h.Tag.String()))
		}
	}

	return result, nil
}

// reconcileRostered handles a tag present in the fresh roster.
func (r *Reconciler) reconcileRostered(ctx context.Context, m domain.RosterMember, now time.Time, result *Result) error {
	history, err := r.store.GetMemberHistory(ctx, m.Tag)
	if err != nil {
		return fmt.Errorf("failed to load member history: %w", err)
	}

	switch {
	case history == nil:
		// Unknown -> New
		history = &schema.MemberHistory{
			Tag:             m.Tag,
			Name:            m.Name,
			FirstSeenAt:     now,
			LastSeenAt:      now,
			TimesJoined:     1,
			IsCurrentMember: true,
		}
		if !result.FirstSync {
			result.Joins++
			result.Events = append(result.Events, joinEvent(m, now))
		}

	case !history.IsCurrentMember:
		// Departed -> Returning
		history.TimesJoined++
		history.IsCurrentMember = true
		history.Name = m.Name
		history.LastSeenAt = now
		result.Joins++
		result.Events = append(result.Events, joinEvent(m, now))

	default:
		// Current -> Current
		history.Name = m.Name
		history.LastSeenAt = now
	}

	if err := r.store.SaveMemberHistory(ctx, history); err != nil {
		return fmt.Errorf("failed to save member history: %w", err)
	}

	return r.detectChanges(ctx, m, now, result)
}

// detectChanges compares the incoming name/role against the stored member row.
func (r *Reconciler) detectChanges(ctx context.Context, m domain.RosterMember, now time.Time, result *Result) error {
	stored, err := r.store.GetMember(ctx, m.Tag)
	if err != nil {
		return fmt.Errorf("failed to load member: %w", err)
	}
	if stored == nil {
		return nil
	}

	if stored.Name != m.Name && stored.Name != "" {
		result.NameChanges++
		result.Events = append(result.Events, domain.MembershipEvent{
			Type:      domain.EventTypeNameChange,
			Tag:       m.Tag,
			Name:      m.Name,
			Title:     "Name changed",
			Message:   fmt.Sprintf("%s is now known as %s", stored.Name, m.Name),
			Timestamp: now,
		})
	}

	switch domain.ClassifyRoleChange(stored.Role, m.Role) {
	case domain.RoleChangePromotion:
		result.Promotions++
		result.Events = append(result.Events, domain.MembershipEvent{
			Type:      domain.EventTypePromotion,
			Tag:       m.Tag,
			Name:      m.Name,
			Title:     "Member promoted",
			Message:   fmt.Sprintf("%s was promoted from %s to %s", m.Name, stored.Role, m.Role),
			Timestamp: now,
		})
	case domain.RoleChangeDemotion:
		result.Demotions++
		result.Events = append(result.Events, domain.MembershipEvent{
			Type:      domain.EventTypeDemotion,
			Tag:       m.Tag,
			Name:      m.Name,
			Title:     "Member demoted",
			Message:   fmt.Sprintf("%s was demoted from %s to %s", m.Name, stored.Role, m.Role),
			Timestamp: now,
		})
	case domain.RoleChangeLateral:
		result.RoleChanges++
		result.Events = append(result.Events, domain.MembershipEvent{
			Type:      domain.EventTypeRoleChange,
			Tag:       m.Tag,
			Name:      m.Name,
			Title:     "Role changed",
			Message:   fmt.Sprintf("%s's role changed from %s to %s", m.Name, stored.Role, m.Role),
			Timestamp: now,
		})
	}

	return nil
}

// reconcileDeparted handles a previously-current tag absent from the roster.
func (r *Reconciler) reconcileDeparted(ctx context.Context, history *schema.MemberHistory, now time.Time, result *Result) error {
	history.TimesLeft++
	history.IsCurrentMember = false
	leftAt := now
	history.LastLeftAt = &leftAt

	// Snapshot role/trophies at the moment of leaving for post-departure
	// display.
	stored, err := r.store.GetMember(ctx, history.Tag)
	if err != nil {
		return fmt.Errorf("failed to load member: %w", err)
	}
	name := history.Name
	if stored != nil {
		history.RoleAtLeave = stored.Role
		history.TrophiesAtLeave = stored.Trophies
		if stored.Name != "" {
			name = stored.Name
		}
	}

	if err := r.store.SaveMemberHistory(ctx, history); err != nil {
		return fmt.Errorf("failed to save member history: %w", err)
	}
	if err := r.store.MarkMemberInactive(ctx, history.Tag); err != nil {
		return fmt.Errorf("failed to mark member inactive: %w", err)
	}

	result.Leaves++
	result.Events = append(result.Events, domain.MembershipEvent{
		Type:      domain.EventTypeLeave,
		Tag:       history.Tag,
		Name:      name,
		Title:     "Member left",
		Message:   fmt.Sprintf("%s left the club", name),
		Timestamp: now,
	})

	return nil
}

// RecordActivity classifies one member's activity from the trophy delta since
// the prior observation and appends the observation to the activity log. A
// zero delta still counts as active while any nonzero-delta entry exists
// inside the sticky window.
func (r *Reconciler) RecordActivity(ctx context.Context, tag domain.Tag, trophies int, stickyWindow time.Duration, now time.Time) (domain.ActivityType, error) {
	prior, err := r.store.GetLatestActivityLog(ctx, tag)
	if err != nil {
		return "", fmt.Errorf("failed to load latest activity log: %w", err)
	}

	delta := 0
	if prior != nil {
		delta = trophies - prior.Trophies
	}
	activity := domain.ClassifyActivity(delta)

	if err := r.store.InsertActivityLog(ctx, &schema.ActivityLogEntry{
		Tag:          tag,
		Trophies:     trophies,
		TrophyDelta:  delta,
		ActivityType: activity,
		RecordedAt:   now,
	}); err != nil {
		return "", fmt.Errorf("failed to insert activity log: %w", err)
	}

	if activity == domain.ActivityInactive && stickyWindow > 0 {
		recent, err := r.store.HasRecentActivity(ctx, tag, now.Add(-stickyWindow))
		if err != nil {
			return "", fmt.Errorf("failed to check recent activity: %w", err)
		}
		if recent {
			return domain.ActivityActive, nil
		}
	}

	return activity, nil
}

func joinEvent(m domain.RosterMember, now time.Time) domain.MembershipEvent {
	return domain.MembershipEvent{
		Type:      domain.EventTypeJoin,
		Tag:       m.Tag,
		Name:      m.Name,
		Title:     "Member joined",
		Message:   fmt.Sprintf("%s joined the club", m.Name),
		Timestamp: now,
	}
}
