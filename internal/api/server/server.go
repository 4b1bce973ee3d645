package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/api/middleware"
	"github.com/brawldash/club-sync/internal/api/rest"
	"github.com/brawldash/club-sync/internal/api/shared/executor"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/providers/temporal"
	"github.com/brawldash/club-sync/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// OrchestratorTaskQueue is the task queue manual sync triggers are sent to
	OrchestratorTaskQueue string

	Auth middleware.AuthConfig
}

// Server is the API server for the club dashboard
type Server struct {
	config       Config
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	clock        adapter.Clock
	httpServer   *http.Server
}

// New creates a new API server instance
func New(config Config, st store.Store, orchestrator temporal.TemporalOrchestrator, clock adapter.Clock) *Server {
	return &Server{
		config:       config,
		store:        st,
		orchestrator: orchestrator,
		clock:        clock,
	}
}

// Start starts the API server and blocks until it stops serving
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	exec := executor.NewExecutor(s.store, s.orchestrator, s.config.OrchestratorTaskQueue, s.clock)
	handler := rest.NewHandler(s.config.Debug, exec)
	rest.SetupRoutes(router, handler, s.config.Auth)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("starting API server", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
