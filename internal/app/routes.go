package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/middleware"
	"github.com/majlis-kantho/core/internal/modules/ad"
	"github.com/majlis-kantho/core/internal/modules/aggregate"
	"github.com/majlis-kantho/core/internal/modules/ai"
	"github.com/majlis-kantho/core/internal/modules/auth"
	"github.com/majlis-kantho/core/internal/modules/backup"
	"github.com/majlis-kantho/core/internal/modules/comment"
	"github.com/majlis-kantho/core/internal/modules/language"
	"github.com/majlis-kantho/core/internal/modules/news"
	"github.com/majlis-kantho/core/internal/modules/poll"
	"github.com/majlis-kantho/core/internal/modules/search"
	"github.com/majlis-kantho/core/internal/modules/settings"
	"github.com/majlis-kantho/core/internal/modules/user"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

const apiPrefix = "/api/v1"

var processStart = time.Now()

func (a *App) registerRoutes() error {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Services share one snapshot store; construction order follows the
	// dependency direction.
	settingsSvc, err := settings.NewService(a.kvs, a.hub, a.logger)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	userSvc, err := user.NewService(a.kvs, a.logger)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	newsSvc, err := news.NewService(a.kvs, a.hub, a.logger)
	if err != nil {
		return fmt.Errorf("news: %w", err)
	}
	commentSvc, err := comment.NewService(a.kvs, a.hub, a.logger)
	if err != nil {
		return fmt.Errorf("comments: %w", err)
	}
	adSvc, err := ad.NewService(a.kvs, a.hub, a.logger)
	if err != nil {
		return fmt.Errorf("ads: %w", err)
	}
	pollSvc, err := poll.NewService(a.kvs, a.hub, a.logger)
	if err != nil {
		return fmt.Errorf("polls: %w", err)
	}
	langSvc, err := language.NewService(a.kvs, a.logger)
	if err != nil {
		return fmt.Errorf("language: %w", err)
	}

	authSvc := auth.NewService(userSvc, a.kvs, a.logger)
	searchSvc := search.NewService(newsSvc)
	aggregateSvc := aggregate.NewService(settingsSvc, newsSvc, pollSvc, adSvc)
	aiSvc := ai.NewService(&a.cfg.AI, settingsSvc, a.kvs, a.logger)
	backupSvc := backup.NewService(a.kvs, a.cfg.S3, a.logger)

	authMW := middleware.Auth(a.kvs, userSvc.Exists)

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(a.kvs, userSvc.Exists))

	api.GET("", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    "majlis-kantho-core",
			"version": "1.0.0",
			"uptime":  time.Since(processStart).Round(time.Second).String(),
		})
	})
	api.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)
	user.NewHandler(userSvc).RegisterRoutes(api, authMW)
	news.NewHandler(newsSvc, commentSvc.ByArticle).RegisterRoutes(api, authMW)
	comment.NewHandler(commentSvc).RegisterRoutes(api, authMW)
	ad.NewHandler(adSvc).RegisterRoutes(api, authMW)
	poll.NewHandler(pollSvc, a.kvs).RegisterRoutes(api, authMW)
	settings.NewHandler(settingsSvc).RegisterRoutes(api, authMW)
	language.NewHandler(langSvc).RegisterRoutes(api, authMW)
	search.NewHandler(searchSvc).RegisterRoutes(api)
	aggregate.NewHandler(aggregateSvc).RegisterRoutes(api)
	ai.NewHandler(aiSvc, newsSvc).RegisterRoutes(api)
	backup.NewHandler(backupSvc).RegisterRoutes(api, authMW)

	a.hub.RegisterRoutes(api)
	return nil
}
