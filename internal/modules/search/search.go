// Package search provides the public full-text lookup over published
// articles. Matching is case-insensitive substring search over title,
// excerpt, body, category and tags; with snapshots this small an index
// would be overhead.
package search

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/news"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

type Service struct {
	news *news.Service
}

func NewService(newsSvc *news.Service) *Service {
	return &Service{news: newsSvc}
}

// Query returns articles matching the term, newest first. An empty or
// blank term returns the full list.
func (s *Service) Query(term string) []models.ArticleModel {
	term = strings.ToLower(strings.TrimSpace(term))
	items := s.news.List()
	if term == "" {
		return items
	}
	out := make([]models.ArticleModel, 0, len(items))
	for _, a := range items {
		if matches(a, term) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a models.ArticleModel, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Excerpt), term) ||
		strings.Contains(strings.ToLower(a.Text), term) ||
		strings.Contains(strings.ToLower(a.Category), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.search)
}

func (h *Handler) search(c *gin.Context) {
	response.OK(c, h.svc.Query(c.Query("q")))
}
