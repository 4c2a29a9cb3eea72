package ai

import (
	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/modules/news"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

type Handler struct {
	svc  *Service
	news *news.Service
}

func NewHandler(svc *Service, newsSvc *news.Service) *Handler {
	return &Handler{svc: svc, news: newsSvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/news/:id/summary", h.summary)
	rg.GET("/ai/trending-topics", h.trendingTopics)
}

func (h *Handler) summary(c *gin.Context) {
	article, ok := h.news.GetByID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, h.svc.Summarize(c.Request.Context(), article))
}

func (h *Handler) trendingTopics(c *gin.Context) {
	topics := h.svc.TrendingTopics(c.Request.Context(), h.news.Latest(20))
	response.OK(c, gin.H{"topics": topics})
}
