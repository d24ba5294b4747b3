package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"skireis/internal/auth"
	"skireis/internal/config"
	"skireis/internal/location"
	"skireis/internal/markers"
	"skireis/internal/projection"
	"skireis/internal/roster"
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	cfg           *config.Config
	store         *roster.Store
	markerService markers.Service
	authService   *auth.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	resolver, err := location.NewResolver()
	if err != nil {
		return nil, err
	}

	projector, err := projection.NewProjector(
		projection.Bounds{
			North: cfg.Map.North,
			South: cfg.Map.South,
			East:  cfg.Map.East,
			West:  cfg.Map.West,
		},
		projection.Viewport{Width: cfg.Map.Width, Height: cfg.Map.Height},
	)
	if err != nil {
		return nil, err
	}

	passwordHash := cfg.Auth.PasswordHash
	if passwordHash == "" {
		passwordHash, err = auth.HashPassword(cfg.Auth.Password)
		if err != nil {
			return nil, err
		}
	}

	store := roster.NewStore()
	if cfg.App.SeedDemoData {
		store.SeedDemo()
		logger.Info("seeded demo roster", "participants", store.Len())
	}

	app := &App{
		router:        router,
		logger:        logger,
		cfg:           cfg,
		store:         store,
		markerService: markers.NewService(store, resolver, projector, logger),
		authService:   auth.NewService(cfg.Auth.Username, passwordHash, cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTL)*time.Hour),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
