package settings

import (
	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/settings", h.get)
	rg.PATCH("/settings", authMW, h.patch)
	rg.PUT("/settings", authMW, h.patch)
}

func (h *Handler) get(c *gin.Context) {
	response.OK(c, h.svc.Get())
}

func (h *Handler) patch(c *gin.Context) {
	var dto PatchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.BreakingNewsCount != nil && *dto.BreakingNewsCount < 0 {
		response.UnprocessableEntity(c, "breaking_news_count must not be negative")
		return
	}
	response.OK(c, h.svc.Patch(&dto))
}
