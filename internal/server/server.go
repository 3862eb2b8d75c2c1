package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nhle/smarttask/internal/ai"
	"github.com/nhle/smarttask/internal/auth"
	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/store"
)

// Suggester runs the suggestion pipeline for one request.
type Suggester interface {
	Suggest(ctx context.Context, req model.SuggestRequest) (*ai.Suggestion, error)
}

// Server is the SmartTask HTTP API.
type Server struct {
	store     store.Store
	auth      *auth.Service
	assistant Suggester
	cfg       model.ServerConfig
	logger    *zap.Logger
	router    *gin.Engine
}

// New creates the server and registers all routes.
func New(
	st store.Store,
	authService *auth.Service,
	assistant Suggester,
	cfg model.ServerConfig,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), corsMiddleware(cfg.FrontendOrigin))

	s := &Server{
		store:     st,
		auth:      authService,
		assistant: assistant,
		cfg:       cfg,
		logger:    logger,
		router:    router,
	}

	router.GET("/", s.handleIndex)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", s.handleSignup)
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/logout", s.handleLogout)
		authGroup.POST("/forgot-password", s.handleForgotPassword)
		authGroup.POST("/reset-password", s.handleResetPassword)
		authGroup.GET("/me", authService.RequireAuth(), s.handleGetMe)
		authGroup.PUT("/me", authService.RequireAuth(), s.handleUpdateMe)
	}

	tasks := api.Group("/tasks", authService.RequireAuth())
	{
		tasks.POST("", s.handleCreateTask)
		tasks.GET("", s.handleListTasks)
		tasks.PUT("/:id", s.handleUpdateTask)
		tasks.DELETE("/:id", s.handleDeleteTask)
	}

	habits := api.Group("/habits", authService.RequireAuth())
	{
		habits.POST("", s.handleCreateHabit)
		habits.GET("", s.handleListHabits)
		habits.PUT("/:id", s.handleUpdateHabit)
		habits.DELETE("/:id", s.handleDeleteHabit)
	}

	journal := api.Group("/journal", authService.RequireAuth())
	{
		journal.POST("", s.handleCreateJournalEntry)
		journal.GET("", s.handleListJournalEntries)
		journal.GET("/:id", s.handleGetJournalEntry)
		journal.DELETE("/:id", s.handleDeleteJournalEntry)
	}

	api.POST("/ai/suggest", s.handleSuggest)

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	c.String(http.StatusOK, "SmartTask backend running")
}
