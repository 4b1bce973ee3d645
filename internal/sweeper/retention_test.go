package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/mocks"
)

var sweepNow = time.Date(2026, 2, 3, 4, 0, 0, 0, time.UTC)

func setupSweeper(t *testing.T, config *RetentionSweeperConfig) (*gomock.Controller, *mocks.MockStore, *mocks.MockClock, Sweeper) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	mockClock.EXPECT().Now().Return(sweepNow).AnyTimes()
	mockClock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	// The cycle interval never elapses in tests; shutdown interrupts the sleep.
	mockClock.EXPECT().After(gomock.Any()).Return(make(chan time.Time)).AnyTimes()

	return ctrl, mockStore, mockClock, NewRetentionSweeper(config, mockStore, mockClock)
}

// startAndAwait runs the sweeper until `cycleDone` receives `signals` times,
// then stops it.
func startAndAwait(t *testing.T, s Sweeper, cycleDone chan string, signals int) {
	startErr := make(chan error, 1)
	go func() { startErr <- s.Start(context.Background()) }()

	for i := 0; i < signals; i++ {
		select {
		case <-cycleDone:
		case <-time.After(5 * time.Second):
			t.Fatal("purge was never executed")
		}
	}

	require.NoError(t, s.Stop(context.Background()))
	select {
	case err := <-startErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestRetentionSweeper_RunsAllPurges(t *testing.T) {
	config := &RetentionSweeperConfig{
		WorkerPoolSize: 4,
		QueueSize:      16,
		Battles:        720 * time.Hour,
		ActivityLogs:   720 * time.Hour,
		Snapshots:      2160 * time.Hour,
		Notifications:  720 * time.Hour,
	}
	ctrl, mockStore, _, s := setupSweeper(t, config)
	defer ctrl.Finish()

	done := make(chan string, 4)
	signal := func(name string, rows int64) func(context.Context, time.Time) (int64, error) {
		return func(_ context.Context, cutoff time.Time) (int64, error) {
			done <- name
			return rows, nil
		}
	}

	mockStore.EXPECT().PurgeBattlesBefore(gomock.Any(), sweepNow.Add(-720*time.Hour)).
		DoAndReturn(signal("battles", 12))
	mockStore.EXPECT().PurgeActivityLogsBefore(gomock.Any(), sweepNow.Add(-720*time.Hour)).
		DoAndReturn(signal("activity_logs", 3))
	mockStore.EXPECT().PurgeSnapshotsBefore(gomock.Any(), sweepNow.Add(-2160*time.Hour)).
		DoAndReturn(signal("snapshots", 40))
	mockStore.EXPECT().PurgeNotificationsBefore(gomock.Any(), sweepNow.Add(-720*time.Hour)).
		DoAndReturn(signal("notifications", 0))

	startAndAwait(t, s, done, 4)
}

func TestRetentionSweeper_ZeroRetentionSkipsPurge(t *testing.T) {
	config := &RetentionSweeperConfig{
		WorkerPoolSize: 2,
		QueueSize:      8,
		Battles:        24 * time.Hour,
	}
	ctrl, mockStore, _, s := setupSweeper(t, config)
	defer ctrl.Finish()

	done := make(chan string, 1)
	mockStore.EXPECT().PurgeBattlesBefore(gomock.Any(), sweepNow.Add(-24*time.Hour)).
		DoAndReturn(func(_ context.Context, _ time.Time) (int64, error) {
			done <- "battles"
			return 1, nil
		})

	startAndAwait(t, s, done, 1)
}

func TestRetentionSweeper_PurgeErrorDoesNotAbortCycle(t *testing.T) {
	config := &RetentionSweeperConfig{
		WorkerPoolSize: 2,
		QueueSize:      8,
		Battles:        24 * time.Hour,
		Notifications:  24 * time.Hour,
	}
	ctrl, mockStore, _, s := setupSweeper(t, config)
	defer ctrl.Finish()

	done := make(chan string, 2)
	mockStore.EXPECT().PurgeBattlesBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time) (int64, error) {
			done <- "battles"
			return 0, errors.New("deadlock detected")
		})
	mockStore.EXPECT().PurgeNotificationsBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time) (int64, error) {
			done <- "notifications"
			return 5, nil
		})

	startAndAwait(t, s, done, 2)
}

func TestRetentionSweeper_Name(t *testing.T) {
	_, _, _, s := setupSweeper(t, &RetentionSweeperConfig{WorkerPoolSize: 1, QueueSize: 1})
	assert.Equal(t, "retention-sweeper", s.Name())
}

func TestRetentionSweeper_StopBeforeStartIsNoop(t *testing.T) {
	_, _, _, s := setupSweeper(t, &RetentionSweeperConfig{WorkerPoolSize: 1, QueueSize: 1})
	assert.NoError(t, s.Stop(context.Background()))
}
