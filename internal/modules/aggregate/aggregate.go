// Package aggregate assembles the single-call home payload so the public
// frontend renders the landing page from one round trip.
package aggregate

import (
	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/ad"
	"github.com/majlis-kantho/core/internal/modules/news"
	"github.com/majlis-kantho/core/internal/modules/poll"
	"github.com/majlis-kantho/core/internal/modules/settings"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

const latestCount = 12

type HomePayload struct {
	Settings models.SettingsModel        `json:"settings"`
	Featured *models.ArticleModel        `json:"featured"`
	Breaking []models.ArticleModel       `json:"breaking"`
	Trending []models.ArticleModel       `json:"trending"`
	Latest   []models.ArticleModel       `json:"latest"`
	Poll     *models.PollModel           `json:"poll"`
	Ads      map[string][]models.AdModel `json:"ads"`
}

type Service struct {
	settings *settings.Service
	news     *news.Service
	polls    *poll.Service
	ads      *ad.Service
}

func NewService(st *settings.Service, newsSvc *news.Service, pollSvc *poll.Service, adSvc *ad.Service) *Service {
	return &Service{settings: st, news: newsSvc, polls: pollSvc, ads: adSvc}
}

// Home composes the landing page snapshot. The breaking ticker length
// follows the configured cap.
func (s *Service) Home() HomePayload {
	cfg := s.settings.Get()
	payload := HomePayload{
		Settings: cfg,
		Breaking: s.news.Breaking(cfg.BreakingNewsCount),
		Trending: s.news.Trending(),
		Latest:   s.news.Latest(latestCount),
		Ads:      make(map[string][]models.AdModel, len(models.AdPositions)),
	}
	payload.Featured = s.news.Featured()
	payload.Poll = s.polls.ActivePoll()
	for _, pos := range models.AdPositions {
		payload.Ads[string(pos)] = s.ads.ByPosition(pos)
	}
	return payload
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.home)
}

func (h *Handler) home(c *gin.Context) {
	response.OK(c, h.svc.Home())
}
