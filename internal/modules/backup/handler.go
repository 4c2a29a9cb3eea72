package backup

import (
	"errors"

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
	backup := rg.Group("/backup", authMW)
	{
		backup.GET("/export", h.export)
		backup.POST("/upload", h.upload)
	}
}

func (h *Handler) export(c *gin.Context) {
	archive, err := h.svc.Export(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=portal-backup.json")
	response.OK(c, archive)
}

func (h *Handler) upload(c *gin.Context) {
	key, err := h.svc.Upload(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrOffsiteDisabled) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"object_key": key})
}
