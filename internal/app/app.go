package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nhle/smarttask/internal/ai"
	"github.com/nhle/smarttask/internal/auth"
	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/server"
	"github.com/nhle/smarttask/internal/store"
)

const shutdownTimeout = 10 * time.Second

// App owns the long-lived components of the backend.
type App struct {
	cfg       *model.AppConfig
	logger    *zap.Logger
	store     *store.SQLiteStore
	auth      *auth.Service
	assistant *ai.Assistant
	server    *server.Server
}

// New opens the database and wires the store, auth service, suggestion
// pipeline and HTTP server from cfg.
func New(ctx context.Context, cfg *model.AppConfig, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	authService, err := auth.NewService(st, cfg.Auth, logger.Named("auth"))
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating auth service: %w", err)
	}

	assistant, err := NewAssistant(ctx, cfg.AI, logger)
	if err != nil {
		st.Close()
		return nil, err
	}

	if !gin.IsDebugging() {
		gin.SetMode(gin.ReleaseMode)
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		auth:      authService,
		assistant: assistant,
		server:    server.New(st, authService, assistant, cfg.Server, logger.Named("http")),
	}, nil
}

// NewAssistant builds the suggestion pipeline from cfg. A missing cloud
// API key is logged, not rejected: the pipeline then fails only when the
// local model is unusable.
func NewAssistant(ctx context.Context, cfg model.AIConfig, logger *zap.Logger) (*ai.Assistant, error) {
	cloud, err := ai.NewCloudClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating cloud client: %w", err)
	}
	if !cloud.Configured() {
		logger.Warn("cloud fallback is not configured; set ai.cloud_api_key or GEMINI_API_KEY")
	}

	local := ai.NewLocalClient(cfg, logger.Named("local"))
	return ai.New(local, cloud, logger.Named("ai")), nil
}

// Handler returns the HTTP handler of the API.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

// Run creates the configured admin account if needed, then serves HTTP
// until ctx is cancelled and shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	if err := a.auth.EnsureAdmin(ctx, a.cfg.Auth.AdminEmail, a.cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("ensuring admin account: %w", err)
	}

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.Handler(),
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("local_model", a.cfg.AI.LocalURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the database.
func (a *App) Close() error {
	return a.store.Close()
}
