package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/store"
)

const (
	SWEEP_CYCLE_INTERVAL = 1 * time.Hour // Time to sleep between sweep cycles
)

// RetentionSweeperConfig holds configuration for the retention sweeper
type RetentionSweeperConfig struct {
	WorkerPoolSize int // Concurrent purge workers
	QueueSize      int // Pending purge task capacity

	// Per-table retention windows; zero disables that purge
	Battles       time.Duration
	ActivityLogs  time.Duration
	Snapshots     time.Duration
	Notifications time.Duration
}

// purgeTask is one named retention purge
type purgeTask struct {
	name      string
	retention time.Duration
	purge     func(ctx context.Context, cutoff time.Time) (int64, error)
}

// retentionSweeper implements the Sweeper interface for retention purging.
// The sync worker already purges after each run; the sweeper is the backstop
// that keeps tables bounded when syncing is paused or failing.
type retentionSweeper struct {
	config    *RetentionSweeperConfig
	store     store.Store
	pool      pond.Pool
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRetentionSweeper creates a new retention sweeper
func NewRetentionSweeper(
	config *RetentionSweeperConfig,
	st store.Store,
	clock adapter.Clock,
) Sweeper {
	return &retentionSweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *retentionSweeper) Name() string {
	return "retention-sweeper"
}

// Start begins the sweeper's main loop
func (s *retentionSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting retention sweeper",
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("battles", s.config.Battles),
		zap.Duration("activity_logs", s.config.ActivityLogs),
		zap.Duration("snapshots", s.config.Snapshots),
		zap.Duration("notifications", s.config.Notifications),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Retention sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Retention sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				logger.ErrorCtx(ctx, err)
			}
			if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
				s.cleanup()
				return nil
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *retentionSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *retentionSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping retention sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Retention sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Retention sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs every enabled purge once over the worker pool
func (s *retentionSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	logger.InfoCtx(ctx, "Starting sweep cycle")

	tasks := []purgeTask{
		{name: "battles", retention: s.config.Battles, purge: s.store.PurgeBattlesBefore},
		{name: "activity_logs", retention: s.config.ActivityLogs, purge: s.store.PurgeActivityLogsBefore},
		{name: "snapshots", retention: s.config.Snapshots, purge: s.store.PurgeSnapshotsBefore},
		{name: "notifications", retention: s.config.Notifications, purge: s.store.PurgeNotificationsBefore},
	}

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)

	var totalPurged atomic.Int64
	for _, task := range tasks {
		if task.retention <= 0 {
			continue
		}
		task := task
		cutoff := startTime.Add(-task.retention)
		s.pool.Submit(func() {
			purged, err := task.purge(ctx, cutoff)
			if err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to purge %s: %w", task.name, err))
				return
			}
			totalPurged.Add(purged)
			if purged > 0 {
				logger.InfoCtx(ctx, "Purged expired rows",
					zap.String("table", task.name),
					zap.Int64("rows", purged),
					zap.Time("cutoff", cutoff),
				)
			}
		})
	}

	s.pool.StopAndWait()

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int64("total_purged", totalPurged.Load()),
	)

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (s *retentionSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
