package news

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/render"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	comments func(articleID string) []models.CommentModel
}

// NewHandler builds the news handler. commentsFor supplies the approved
// comments shown on the article detail payload and may be nil.
func NewHandler(svc *Service, commentsFor func(articleID string) []models.CommentModel) *Handler {
	return &Handler{svc: svc, comments: commentsFor}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	articles := rg.Group("/news")
	articles.GET("", h.list)
	articles.GET("/latest", h.latest)
	articles.GET("/breaking", h.breaking)
	articles.GET("/trending", h.trending)
	articles.GET("/:id", h.get)

	authed := articles.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		response.OK(c, h.svc.ByCategory(category))
		return
	}
	response.OK(c, h.svc.List())
}

func (h *Handler) latest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	response.OK(c, h.svc.Latest(limit))
}

func (h *Handler) breaking(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	response.OK(c, h.svc.Breaking(limit))
}

func (h *Handler) trending(c *gin.Context) {
	response.OK(c, h.svc.Trending())
}

func (h *Handler) get(c *gin.Context) {
	article, ok := h.svc.GetByID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	payload := gin.H{
		"article":   article,
		"text_html": render.ToHTML(article.Text),
	}
	if h.comments != nil {
		payload["comments"] = h.comments(article.ID)
	}
	response.OK(c, payload)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, h.svc.Create(&dto))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	article, ok := h.svc.Update(c.Param("id"), &dto)
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, article)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
