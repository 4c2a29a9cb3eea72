package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/config"
	"github.com/majlis-kantho/core/internal/middleware"
	"github.com/majlis-kantho/core/internal/modules/gateway"
	"github.com/majlis-kantho/core/internal/pkg/jwt"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	kvs    kv.Store
	hub    *gateway.Hub
	logger *zap.Logger
	cancel context.CancelFunc
}

// New initializes the application: config, snapshot store, routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if cfg.JWTSecret != "" {
		jwt.SetSecret(cfg.JWTSecret)
	}

	kvs, err := kv.Open(kv.Options{
		Driver:   cfg.Store.Driver,
		Path:     cfg.Store.Path,
		RedisURL: cfg.Store.RedisURL,
	})
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	hub := gateway.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	app := &App{cfg: cfg, router: router, kvs: kvs, hub: hub, logger: logger, cancel: cancel}
	if err := app.registerRoutes(); err != nil {
		cancel()
		kvs.Close()
		return nil, err
	}
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops background goroutines and closes the store.
func (a *App) Shutdown() {
	a.cancel()
	if err := a.kvs.Close(); err != nil {
		a.logger.Error("close store", zap.Error(err))
	}
}
