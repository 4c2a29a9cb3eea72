package ad

import (
	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	ads := rg.Group("/ads")
	ads.GET("", h.list)

	authed := ads.Group("", authMW)
	authed.GET("/all", h.listAll)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.PATCH("/:id/toggle", h.toggle)
	authed.DELETE("/:id", h.delete)
}

// list serves the public rendering query: active ads for one position.
func (h *Handler) list(c *gin.Context) {
	position := models.AdPosition(c.Query("position"))
	if !position.Valid() {
		response.BadRequest(c, "unknown position")
		return
	}
	response.OK(c, h.svc.ByPosition(position))
}

func (h *Handler) listAll(c *gin.Context) {
	response.OK(c, h.svc.List())
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateAdDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !dto.Position.Valid() {
		response.BadRequest(c, "unknown position")
		return
	}
	response.Created(c, h.svc.Create(&dto))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateAdDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Position != nil && !dto.Position.Valid() {
		response.BadRequest(c, "unknown position")
		return
	}
	ad, ok := h.svc.Update(c.Param("id"), &dto)
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, ad)
}

func (h *Handler) toggle(c *gin.Context) {
	ad, ok := h.svc.ToggleActive(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, ad)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
