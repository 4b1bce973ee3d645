package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	sdkinterceptor "go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/battle"
	"github.com/brawldash/club-sync/internal/config"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/notify"
	"github.com/brawldash/club-sync/internal/providers/jetstream"
	temporal "github.com/brawldash/club-sync/internal/providers/temporal"
	"github.com/brawldash/club-sync/internal/providers/vendors/brawlstars"
	"github.com/brawldash/club-sync/internal/reconcile"
	"github.com/brawldash/club-sync/internal/store"
	"github.com/brawldash/club-sync/internal/tracker"
	"github.com/brawldash/club-sync/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSyncWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sync-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting sync worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.BrawlStars.HTTPTimeout)

	// The API key lives in settings so the client is built per run
	clientFactory := func(apiKey string) brawlstars.Client {
		return brawlstars.NewClient(httpClient, jsonAdapter, cfg.BrawlStars.BaseURL, apiKey, cfg.BrawlStars.RequestsPerSecond)
	}

	// Connect to NATS JetStream for club event publishing
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize executor for activities
	executor := workflows.NewExecutor(
		dataStore,
		clientFactory,
		battle.NewNormalizer(jsonAdapter),
		reconcile.NewReconciler(dataStore),
		tracker.NewTracker(dataStore),
		notify.NewDeduplicator(dataStore, cfg.Sync.NotificationWindow, cfg.Sync.InactiveAlertEvery),
		publisher,
		clockAdapter,
		workflows.ExecutorConfig{
			StickyWindow:           cfg.Sync.StickyWindow,
			NotificationWindow:     cfg.Sync.NotificationWindow,
			FetchConcurrency:       cfg.Sync.Worker.WorkerPoolSize,
			FetchQueueSize:         cfg.Sync.Worker.WorkerQueueSize,
			RetentionBattles:       cfg.Retention.Battles,
			RetentionActivityLogs:  cfg.Retention.ActivityLogs,
			RetentionSnapshots:     cfg.Retention.Snapshots,
			RetentionNotifications: cfg.Retention.Notifications,
		},
	)

	syncWorker := workflows.NewSyncWorker(executor, workflows.SyncWorkerConfig{
		BatchSize:  cfg.Sync.BatchSize,
		BatchPause: cfg.Sync.BatchPause,
	})

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.SyncTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			Interceptors: []sdkinterceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("task_queue", cfg.Temporal.SyncTaskQueue))

	// Register workflows
	temporalWorker.RegisterWorkflow(syncWorker.SyncClub)

	// Register activities
	temporalWorker.RegisterActivity(executor.LoadSyncSettings)
	temporalWorker.RegisterActivity(executor.FetchRoster)
	temporalWorker.RegisterActivity(executor.SyncMemberBatch)
	temporalWorker.RegisterActivity(executor.ReconcileMembership)
	temporalWorker.RegisterActivity(executor.DispatchNotifications)
	temporalWorker.RegisterActivity(executor.PurgeExpired)
	logger.InfoCtx(ctx, "Registered workflows and activities")

	// Start worker
	err = temporalWorker.Start()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Keep a cron schedule running so syncs happen without an external
	// trigger. Starting it again after a restart is a no-op while the
	// previous cron workflow is still scheduled.
	if cfg.Sync.Cron != "" {
		_, err = temporalClient.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
			ID:           "club-sync-cron",
			TaskQueue:    cfg.Temporal.SyncTaskQueue,
			CronSchedule: cfg.Sync.Cron,
		}, workflows.SyncClubWorkflowName)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to start sync cron workflow", zap.Error(err), zap.String("cron", cfg.Sync.Cron))
		} else {
			logger.InfoCtx(ctx, "Sync cron workflow scheduled", zap.String("cron", cfg.Sync.Cron))
		}
	}

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
