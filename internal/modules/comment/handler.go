package comment

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
	comments := rg.Group("/comments")
	comments.GET("/article/:id", h.byArticle)
	comments.POST("", h.create)

	authed := comments.Group("", authMW)
	authed.GET("", h.list)
	authed.PATCH("/:id/status", h.setStatus)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) byArticle(c *gin.Context) {
	response.OK(c, h.svc.ByArticle(c.Param("id")))
}

func (h *Handler) list(c *gin.Context) {
	status := models.CommentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		response.BadRequest(c, "unknown status")
		return
	}
	response.OK(c, h.svc.List(status))
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, h.svc.Add(&dto))
}

func (h *Handler) setStatus(c *gin.Context) {
	var dto SetStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !dto.Status.Valid() {
		response.BadRequest(c, "unknown status")
		return
	}
	comment, ok := h.svc.SetStatus(c.Param("id"), dto.Status)
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, comment)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
