package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/reconcile"
)

// SyncClub runs one full reconciliation pass:
// settings -> roster -> membership reconcile -> member batches ->
// notifications -> retention purge.
//
// Reconciliation runs before the member batches on purpose: the batch activity
// overwrites each member row with the roster's current name and role, so role
// and name diffs have to be computed against the rows as the previous run left
// them.
//
// Member batches are isolated: a failed batch is logged and the run moves on
// to the next one. There is no cross-run lock; battle upserts and notification
// dedupe keys make overlapping runs converge to the same state.
func (w *workerCore) SyncClub(ctx workflow.Context) (*SyncSummary, error) {
	logger.InfoWf(ctx, "Starting club sync run")

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 2,
			InitialInterval: 5 * time.Second,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var settings *domain.SyncSettings
	if err := workflow.ExecuteActivity(ctx, w.executor.LoadSyncSettings).Get(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to load sync settings: %w", err)
	}

	var roster *domain.ClubRoster
	if err := workflow.ExecuteActivity(ctx, w.executor.FetchRoster, settings).Get(ctx, &roster); err != nil {
		return nil, fmt.Errorf("failed to fetch club roster: %w", err)
	}

	logger.InfoWf(ctx, "Fetched club roster",
		zap.String("clubTag", roster.Tag.String()),
		zap.Int("memberCount", len(roster.Members)))

	var recResult *reconcile.Result
	if err := workflow.ExecuteActivity(ctx, w.executor.ReconcileMembership, roster).Get(ctx, &recResult); err != nil {
		return nil, fmt.Errorf("failed to reconcile membership: %w", err)
	}

	summary := &SyncSummary{}
	summary.FirstSync = recResult.FirstSync
	summary.Joins = recResult.Joins
	summary.Leaves = recResult.Leaves
	summary.Promotions = recResult.Promotions
	summary.Demotions = recResult.Demotions
	summary.RoleChanges = recResult.RoleChanges
	summary.NameChanges = recResult.NameChanges

	members := roster.Members
	for start := 0; start < len(members); start += w.config.BatchSize {
		end := start + w.config.BatchSize
		if end > len(members) {
			end = len(members)
		}

		input := SyncBatchInput{
			APIKey:       settings.APIKey,
			Members:      members[start:end],
			StickyWindow: settings.InactivityThreshold,
		}

		var batchResult BatchResult
		err := workflow.ExecuteActivity(ctx, w.executor.SyncMemberBatch, input).Get(ctx, &batchResult)
		if err != nil {
			// One batch failing wholesale does not abort the run; the members
			// in it are picked up again on the next sync.
			logger.ErrorWf(ctx, fmt.Errorf("member batch failed: %w", err),
				zap.Int("batchStart", start),
				zap.Int("batchSize", end-start))
			summary.MembersFailed += end - start
		} else {
			summary.MembersSynced += batchResult.Synced
			summary.MembersFailed += batchResult.Failed
			summary.BattlesIngested += batchResult.BattlesIngested
			summary.InactiveMembers += batchResult.Inactive
		}

		if end < len(members) && w.config.BatchPause > 0 {
			if err := workflow.Sleep(ctx, w.config.BatchPause); err != nil {
				return nil, err
			}
		}
	}

	dispatchInput := DispatchInput{
		Events:               recResult.Events,
		InactiveCount:        summary.InactiveMembers,
		NotificationsEnabled: settings.NotificationsEnabled,
	}

	var dispatchResult DispatchResult
	err := workflow.ExecuteActivity(ctx, w.executor.DispatchNotifications, dispatchInput).Get(ctx, &dispatchResult)
	if err != nil {
		// Notification delivery is best-effort; the sync data is already
		// persisted at this point.
		logger.ErrorWf(ctx, fmt.Errorf("failed to dispatch notifications: %w", err))
	} else {
		summary.NotificationsInserted = dispatchResult.Inserted
		summary.EventsPublished = dispatchResult.Published
	}

	var purgeResult PurgeResult
	if err := workflow.ExecuteActivity(ctx, w.executor.PurgeExpired).Get(ctx, &purgeResult); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to purge expired data: %w", err))
	}

	logger.InfoWf(ctx, "Club sync run completed",
		zap.Int("membersSynced", summary.MembersSynced),
		zap.Int("membersFailed", summary.MembersFailed),
		zap.Int64("battlesIngested", summary.BattlesIngested),
		zap.Int("joins", summary.Joins),
		zap.Int("leaves", summary.Leaves),
		zap.Int("notificationsInserted", summary.NotificationsInserted))

	return summary, nil
}
