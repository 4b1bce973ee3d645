package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"
)

// SyncClubWorkflowName is the registered name of the SyncClub workflow, used
// by clients that start it by name.
const SyncClubWorkflowName = "SyncClub"

// SyncWorker defines the workflow surface of the sync worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/sync_worker.go -package=mocks -mock_names=SyncWorker=MockSyncWorker
type SyncWorker interface {
	// SyncClub runs one full reconciliation pass for the configured club
	SyncClub(ctx workflow.Context) (*SyncSummary, error)
}

// SyncWorkerConfig holds workflow-level tunables
type SyncWorkerConfig struct {
	// BatchSize is the number of members synced per batch activity
	BatchSize int
	// BatchPause is the fixed delay between member batches
	BatchPause time.Duration
}

// SyncSummary is the caller-visible outcome of one sync run
type SyncSummary struct {
	FirstSync             bool  `json:"first_sync"`
	MembersSynced         int   `json:"members_synced"`
	MembersFailed         int   `json:"members_failed"`
	BattlesIngested       int64 `json:"battles_ingested"`
	InactiveMembers       int   `json:"inactive_members"`
	Joins                 int   `json:"joins"`
	Leaves                int   `json:"leaves"`
	Promotions            int   `json:"promotions"`
	Demotions             int   `json:"demotions"`
	RoleChanges           int   `json:"role_changes"`
	NameChanges           int   `json:"name_changes"`
	NotificationsInserted int   `json:"notifications_inserted"`
	EventsPublished       int   `json:"events_published"`
}

// workerCore is the concrete implementation of SyncWorker
type workerCore struct {
	config   SyncWorkerConfig
	executor Executor
}

// NewSyncWorker creates a new sync worker instance
func NewSyncWorker(executor Executor, config SyncWorkerConfig) SyncWorker {
	if config.BatchSize <= 0 {
		config.BatchSize = 3
	}
	return &workerCore{
		config:   config,
		executor: executor,
	}
}
